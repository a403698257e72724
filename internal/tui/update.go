package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/groove/internal/dateutil"
	"github.com/julianstephens/groove/internal/models"
	"github.com/julianstephens/groove/internal/tui/components/habitlist"
	"github.com/julianstephens/groove/internal/tui/components/journal"
	"github.com/julianstephens/groove/internal/tui/components/today"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		m.todayModel.SetSize(msg.Width-h, msg.Height-v-2)
		m.habitsModel.SetSize(msg.Width-h, msg.Height-v-2)
		m.journalModel.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case today.MarkMsg:
		if _, err := m.engine.MarkHabitDone(msg.HabitID, m.todayModel.Day()); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		m.refresh()
		return m, nil

	case today.UnmarkMsg:
		if _, err := m.engine.UnmarkHabitDone(msg.HabitID, m.todayModel.Day()); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		m.refresh()
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Frequency: models.FrequencyDaily, Target: "1"}
		m.form = NewHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ArchiveHabitMsg:
		m.habitToArchiveID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmArchive
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case habitlist.RestoreHabitMsg:
		if err := m.store.RestoreHabit(msg.ID); err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		m.refresh()
		return m, nil

	case habitlist.ShowStatsMsg:
		return m.showStats(msg.Habit)

	case journal.WriteEntryMsg:
		fm := &JournalFormModel{Day: msg.Day}
		if existing, err := m.engine.GetJournal(msg.Day); err == nil {
			fm.Content = existing.Content
			fm.Mood = existing.Mood
		}
		m.journalForm = fm
		m.form = NewJournalForm(fm)
		m.previousState = m.state
		m.state = StateWriteJournal
		return m, m.form.Init()
	}

	switch m.state {
	case StateAddHabit, StateWriteJournal:
		return m.updateForm(msg)
	case StateConfirmArchive, StateConfirmDelete:
		return m.updateConfirm(msg)
	case StateStats:
		return m.updateStats(msg)
	default:
		return m.updateTabs(msg)
	}
}

func (m Model) updateTabs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.ShiftTab):
			m.state = (m.state + tabCount - 1) % tabCount
			return m, nil
		case key.Matches(keyMsg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.todayModel, cmd = m.todayModel.Update(msg)
	case StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Back) {
		return m.closeForm()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if m.state == StateAddHabit {
			m.submitHabitForm()
		} else {
			m.submitJournalForm()
		}
		return m.closeForm()
	case huh.StateAborted:
		return m.closeForm()
	}
	return m, cmd
}

func (m Model) closeForm() (tea.Model, tea.Cmd) {
	m.form = nil
	m.habitForm = nil
	m.journalForm = nil
	m.state = m.previousState
	m.refresh()
	return m, nil
}

func (m *Model) submitHabitForm() {
	fm := m.habitForm

	days, err := parseDayNames(fm.Days)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	target := 1
	if strings.TrimSpace(fm.Target) != "" {
		target, err = strconv.Atoi(strings.TrimSpace(fm.Target))
		if err != nil {
			m.errMsg = "target must be a number"
			return
		}
	}

	input := models.HabitInput{
		Name:         strings.TrimSpace(fm.Name),
		Category:     strings.TrimSpace(fm.Category),
		Frequency:    fm.Frequency,
		SelectedDays: days,
		SpecificDate: strings.TrimSpace(fm.Date),
		TargetCount:  target,
	}

	if _, err := m.engine.CreateHabit(input); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

func (m *Model) submitJournalForm() {
	fm := m.journalForm
	if strings.TrimSpace(fm.Content) == "" {
		return
	}

	entry := models.JournalEntry{
		Day:     fm.Day,
		Content: fm.Content,
		Mood:    fm.Mood,
	}
	if err := m.engine.WriteJournal(entry); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		var err error
		if m.state == StateConfirmArchive {
			err = m.store.ArchiveHabit(m.habitToArchiveID)
		} else {
			err = m.store.DeleteHabit(m.habitToDeleteID)
		}
		if err != nil {
			m.errMsg = err.Error()
		} else {
			m.errMsg = ""
		}
		fallthrough
	case "n", "N", "esc":
		m.habitToArchiveID = ""
		m.habitToDeleteID = ""
		m.state = m.previousState
		m.refresh()
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) showStats(habit models.Habit) (tea.Model, tea.Cmd) {
	asOf := m.engine.Today()
	end, err := dateutil.ParseDay(asOf)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}
	start := dateutil.FormatDay(dateutil.AddDays(end, -29))

	summary, err := m.engine.Stats(habit.ID, start, asOf)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.statsHabit = habit
	m.statsSummary = summary
	m.previousState = m.state
	m.state = StateStats
	return m, nil
}

func (m Model) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.Enter):
		m.state = m.previousState
		return m, nil
	}
	return m, nil
}
