package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var tabNames = []string{"Today", "Habits", "Journal"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddHabit, StateWriteJournal:
		return docStyle.Render(m.form.View())
	case StateConfirmArchive:
		return m.confirmView("Archive this habit? It will stop appearing in daily views.")
	case StateConfirmDelete:
		return m.confirmView("Delete this habit? It can be restored later.")
	case StateStats:
		return docStyle.Render(m.statsView())
	}

	var b strings.Builder
	b.WriteString(m.tabBar())
	b.WriteString("\n\n")

	switch m.state {
	case StateToday:
		b.WriteString(m.todayModel.View())
	case StateHabits:
		b.WriteString(m.habitsModel.View())
	case StateJournal:
		b.WriteString(m.journalModel.View())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m))
	return docStyle.Render(b.String())
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if SessionState(i) == m.state {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) confirmView(prompt string) string {
	body := dangerStyle.Render(prompt) + "\n\n(y/N)"
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m Model) statsView() string {
	var b strings.Builder
	b.WriteString(statValueStyle.Render(m.statsHabit.Name))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
	}{
		{"Due days (30d)", fmt.Sprintf("%d", m.statsSummary.TotalDue)},
		{"Completed", fmt.Sprintf("%d", m.statsSummary.TotalSatisfied)},
		{"Completion rate", fmt.Sprintf("%d%%", m.statsSummary.Rate)},
		{"Current streak", fmt.Sprintf("%d", m.statsSummary.CurrentStreak)},
		{"Longest streak", fmt.Sprintf("%d", m.statsSummary.LongestStreak)},
	}
	for _, row := range rows {
		b.WriteString(statLabelStyle.Render(row.label))
		b.WriteString(statValueStyle.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString("\nesc to go back")
	return b.String()
}
