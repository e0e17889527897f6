package settings

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindlink/mindlink/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 2)
)

type Model struct {
	profile models.Profile
	width   int
	height  int
}

func New(profile models.Profile) Model {
	return Model{profile: profile}
}

func (m *Model) SetProfile(profile models.Profile) {
	m.profile = profile
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	reminders := "off"
	if m.profile.Notifications {
		reminders = "on"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Settings"),
		fmt.Sprintf("  %s %s", labelStyle.Render("Anonymous handle:"), valueStyle.Render(m.profile.AnonymousHandle)),
		fmt.Sprintf("  %s %s", labelStyle.Render("Daily reminders: "), valueStyle.Render(reminders)),
		hintStyle.Render("e edit · R reset all data"),
	)
}
