package rewards

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindlink/mindlink/internal/streak"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	unlockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type Model struct {
	badges []streak.Badge
	streak int
	total  int
	width  int
	height int
}

func New() Model {
	return Model{}
}

// SetStatus recomputes the badge set for the current streak and ledger size.
func (m *Model) SetStatus(streakDays, totalCheckIns int) {
	m.streak = streakDays
	m.total = totalCheckIns
	m.badges = streak.Badges(streakDays, totalCheckIns)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	rows := []string{
		titleStyle.Render("Badges"),
		lockedStyle.Render(fmt.Sprintf("  Streak %d day(s) · %d total check-in(s)", m.streak, m.total)),
		"",
	}
	for _, b := range m.badges {
		if b.Unlocked {
			rows = append(rows, unlockedStyle.Render("  ★ "+b.Label))
		} else {
			rows = append(rows, lockedStyle.Render("  ☆ "+b.Label+" (locked)"))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
