// Package today renders the due-habit checklist for a single day.
package today

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/groove/internal/engine"
)

type MarkMsg struct {
	HabitID string
}

type UnmarkMsg struct {
	HabitID string
}

type Item struct {
	Due engine.DueHabit
}

func (i Item) Title() string {
	box := "[ ]"
	if i.Due.Satisfied {
		box = "[x]"
	}
	return fmt.Sprintf("%s %s", box, i.Due.Habit.Name)
}

func (i Item) Description() string {
	desc := string(i.Due.Habit.Frequency)
	if i.Due.Habit.Target() > 1 {
		desc += fmt.Sprintf(" | %d/%d today", i.Due.Count, i.Due.Habit.Target())
	}
	if i.Due.Habit.Category != "" {
		desc += " | #" + i.Due.Habit.Category
	}
	return desc
}

func (i Item) FilterValue() string { return i.Due.Habit.Name }

type KeyMap struct {
	Mark   key.Binding
	Unmark key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mark: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "mark done"),
		),
		Unmark: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unmark"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
	day  string
}

func New(due []engine.DueHabit, day string, width, height int) Model {
	items := make([]list.Item, len(due))
	for i, d := range due {
		items[i] = Item{Due: d}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Today"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Mark, keys.Unmark}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Mark, keys.Unmark}
	}

	return Model{list: l, keys: keys, day: day}
}

func (m *Model) SetDue(due []engine.DueHabit) {
	items := make([]list.Item, len(due))
	for i, d := range due {
		items[i] = Item{Due: d}
	}
	m.list.SetItems(items)
}

func (m Model) Day() string { return m.day }

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
		case key.Matches(msg, m.keys.Mark):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return MarkMsg{HabitID: i.Due.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Unmark):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Due.Count > 0 {
					return m, func() tea.Msg { return UnmarkMsg{HabitID: i.Due.Habit.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing due today. Enjoy the slack."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
