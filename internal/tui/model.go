package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/groove/internal/dateutil"
	"github.com/julianstephens/groove/internal/engine"
	"github.com/julianstephens/groove/internal/models"
	"github.com/julianstephens/groove/internal/stats"
	"github.com/julianstephens/groove/internal/storage"
	"github.com/julianstephens/groove/internal/tui/components/habitlist"
	"github.com/julianstephens/groove/internal/tui/components/journal"
	"github.com/julianstephens/groove/internal/tui/components/today"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateHabits
	StateJournal
	StateAddHabit
	StateWriteJournal
	StateConfirmArchive
	StateConfirmDelete
	StateStats
)

// tabCount is the number of top-level tabs cycled with tab/shift+tab.
const tabCount = 3

type Model struct {
	store  storage.Provider
	engine *engine.Engine

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	todayModel   today.Model
	habitsModel  habitlist.Model
	journalModel journal.Model

	form        *huh.Form
	habitForm   *HabitFormModel
	journalForm *JournalFormModel

	statsHabit   models.Habit
	statsSummary stats.Summary

	habitToArchiveID string
	habitToDeleteID  string

	errMsg   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, eng *engine.Engine) Model {
	todayDay := eng.Today()

	var errMsg string
	due, err := eng.DueHabitsFor(todayDay)
	if err != nil {
		errMsg = err.Error()
	}
	habits, err := eng.ListHabits(true, true)
	if err != nil && errMsg == "" {
		errMsg = err.Error()
	}
	entries := recentJournal(eng, todayDay)

	return Model{
		store:        store,
		engine:       eng,
		state:        StateToday,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		todayModel:   today.New(due, todayDay, 0, 0),
		habitsModel:  habitlist.New(habits, 0, 0),
		journalModel: journal.New(entries, todayDay, 0, 0),
		errMsg:       errMsg,
	}
}

func recentJournal(eng *engine.Engine, todayDay string) []models.JournalEntry {
	end, err := dateutil.ParseDay(todayDay)
	if err != nil {
		return nil
	}
	start := dateutil.FormatDay(dateutil.AddDays(end, -29))
	entries, _ := eng.ListJournal(start, todayDay)
	return entries
}

// refresh reloads every component from the store.
func (m *Model) refresh() {
	todayDay := m.engine.Today()

	if due, err := m.engine.DueHabitsFor(todayDay); err == nil {
		m.todayModel.SetDue(due)
	} else {
		m.errMsg = err.Error()
	}

	if habits, err := m.engine.ListHabits(true, true); err == nil {
		m.habitsModel.SetHabits(habits)
	}

	m.journalModel.SetEntries(recentJournal(m.engine, todayDay))
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateStats {
		keys = []key.Binding{m.keys.Back, m.keys.Quit}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Back},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
