// Package habitlist renders the full habit roster with lifecycle actions.
package habitlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/groove/internal/models"
)

type AddHabitMsg struct{}

type ArchiveHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type RestoreHabitMsg struct {
	ID string
}

type ShowStatsMsg struct {
	Habit models.Habit
}

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	if i.Habit.DeletedAt != nil {
		return "👻 " + i.Habit.Name + " (deleted)"
	}
	if i.Habit.ArchivedAt != nil {
		return i.Habit.Name + " (archived)"
	}
	return i.Habit.Name
}

func (i Item) Description() string {
	var parts []string
	parts = append(parts, string(i.Habit.Frequency))
	if i.Habit.Target() > 1 {
		parts = append(parts, fmt.Sprintf("target %d/day", i.Habit.Target()))
	}
	if i.Habit.Category != "" {
		parts = append(parts, "#"+i.Habit.Category)
	}
	if i.Habit.DeletedAt != nil {
		parts = append(parts, "can restore with 'r'")
	}
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add     key.Binding
	Archive key.Binding
	Delete  key.Binding
	Restore key.Binding
	Stats   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		Stats: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stats"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, width, height int) Model {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Archive, keys.Delete, keys.Restore, keys.Stats}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Archive, keys.Delete, keys.Restore, keys.Stats}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetHabits(habits []models.Habit) {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Archive):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Habit.DeletedAt == nil && i.Habit.ArchivedAt == nil {
					return m, func() tea.Msg { return ArchiveHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Habit.DeletedAt == nil {
					return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Habit.DeletedAt != nil {
					return m, func() tea.Msg { return RestoreHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Stats):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ShowStatsMsg{Habit: i.Habit} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
