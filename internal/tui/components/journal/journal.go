// Package journal renders recent journal entries.
package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/groove/internal/models"
)

type WriteEntryMsg struct {
	Day string
}

type Item struct {
	Entry models.JournalEntry
}

func (i Item) Title() string {
	title := i.Entry.Day
	if i.Entry.Mood != "" {
		title += fmt.Sprintf(" %s %s", moodIcon(i.Entry.Mood), i.Entry.Mood)
	}
	return title
}

func (i Item) Description() string {
	content := strings.ReplaceAll(i.Entry.Content, "\n", " ")
	if len(content) > 64 {
		content = content[:61] + "..."
	}
	return content
}

func (i Item) FilterValue() string { return i.Entry.Day + " " + i.Entry.Content }

func moodIcon(m models.Mood) string {
	switch m {
	case models.MoodGreat:
		return "😄"
	case models.MoodHappy:
		return "🙂"
	case models.MoodOkay:
		return "😐"
	case models.MoodSad:
		return "😞"
	case models.MoodStressed:
		return "😫"
	default:
		return ""
	}
}

type KeyMap struct {
	Write key.Binding
	Edit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Write: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "write today"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit entry"),
		),
	}
}

type Model struct {
	list  list.Model
	keys  KeyMap
	today string
}

func New(entries []models.JournalEntry, today string, width, height int) Model {
	items := make([]list.Item, len(entries))
	// Newest first.
	for i := range entries {
		items[i] = Item{Entry: entries[len(entries)-1-i]}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Write, keys.Edit}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Write, keys.Edit}
	}

	return Model{list: l, keys: keys, today: today}
}

func (m *Model) SetEntries(entries []models.JournalEntry) {
	items := make([]list.Item, len(entries))
	for i := range entries {
		items[i] = Item{Entry: entries[len(entries)-1-i]}
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
		case key.Matches(msg, m.keys.Write):
			return m, func() tea.Msg { return WriteEntryMsg{Day: m.today} }
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return WriteEntryMsg{Day: i.Entry.Day} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No journal entries yet.\n  Press 'a' to write one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
