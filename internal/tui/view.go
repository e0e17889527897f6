package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mindlink/mindlink/internal/assessment"
	"github.com/mindlink/mindlink/internal/breathing"
	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case constants.StateCheckinForm, constants.StatePostForm, constants.StateEditSettings:
		return m.form.View()
	case constants.StateAssessment:
		return m.viewAssessment()
	case constants.StateBreathing:
		return m.viewBreathing()
	case constants.StateConfirmReset:
		return m.viewConfirmReset()
	case constants.StateResourceView:
		return m.viewResourceView()
	}

	var content string
	switch m.state {
	case constants.StateDashboard:
		content = m.dashboardModel.View()
	case constants.StateResources:
		content = docStyle.Render(m.resourcesModel.View())
	case constants.StateCommunity:
		content = docStyle.Render(m.communityModel.View())
	case constants.StateRewards:
		content = m.rewardsModel.View()
	case constants.StateMissions:
		content = docStyle.Render(m.missionsModel.View())
	case constants.StateSettings:
		content = m.settingsModel.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Resources", "Community", "Rewards", "Missions", "Settings"} {
		if m.state == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewAssessment() string {
	var body string

	switch m.session.Step() {
	case assessment.StepSelection:
		lines := []string{"Choose an assessment:", ""}
		for i, def := range assessment.All() {
			lines = append(lines, fmt.Sprintf("[%d] %s", i+1, def.Title))
			lines = append(lines, mutedStyle.Render("    "+def.Description))
		}
		lines = append(lines, "", mutedStyle.Render("[esc] cancel"))
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)

	case assessment.StepQuestions:
		def := m.session.Definition()
		lines := []string{
			mutedStyle.Render(fmt.Sprintf("%s · question %d of %d", def.Title, m.session.CurrentIndex()+1, len(def.Questions))),
			"",
			m.session.Question(),
			"",
		}
		for _, o := range assessment.Options() {
			line := fmt.Sprintf("[%d] %s", o.Score+1, o.Label)
			if m.session.CurrentAnswer() == o.Score {
				line = activeTabStyle.Render(line)
			}
			lines = append(lines, line)
		}
		lines = append(lines, "", mutedStyle.Render("[esc] close (discards answers)"))
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)

	case assessment.StepResult:
		def := m.session.Definition()
		total, band, highRisk := m.session.Result()
		lines := []string{
			def.Title,
			"",
			fmt.Sprintf("Score: %d of %d", total, 3*len(def.Questions)),
			toneStyle(band.Tone).Render("Result: " + band.Label),
		}
		if highRisk {
			lines = append(lines, "",
				"Your score suggests you may be going through a difficult time.",
				"Consider reaching out to a counselor or someone you trust.")
		}
		lines = append(lines, "", mutedStyle.Render("This screening is not a diagnosis."),
			"", mutedStyle.Render("[r] retake · [enter] close"))
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewBreathing() string {
	phase := breathing.Phase(m.breathLeft)

	var clock string
	if phase == breathing.PhaseFinished {
		clock = mutedStyle.Render("[esc] back")
	} else {
		clock = mutedStyle.Render(breathing.Clock(m.breathLeft) + " · [esc] stop")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		activeTabStyle.Render(" "+phase+" "),
		"",
		clock,
	)
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center, body)
}

func (m Model) viewConfirmReset() string {
	lines := []string{
		dangerStyle.Render("Clear all local data?"),
		mutedStyle.Render("Check-ins, posts, missions, and settings will be lost."),
		"",
		"[y] Yes",
		"[n] No",
	}
	if m.resetErr != nil {
		lines = append(lines, "", dangerStyle.Render("Reset failed: "+m.resetErr.Error()))
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

func (m Model) viewResourceView() string {
	r := m.activeResource
	lines := []string{
		activeTabStyle.Render(" " + r.Title + " "),
		mutedStyle.Render(fmt.Sprintf("%s · %s", r.Kind, r.Length)),
		"",
	}
	if r.Kind == models.ResourceArticle {
		lines = append(lines, lipgloss.NewStyle().Width(60).Render(r.Content))
	} else {
		lines = append(lines, "Watch at: "+r.URL)
	}
	lines = append(lines, "", mutedStyle.Render("[esc] back"))
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...),
	)
}

func toneStyle(tone string) lipgloss.Style {
	colors := map[string]string{
		"green":  "42",
		"yellow": "220",
		"orange": "208",
		"red":    "196",
	}
	c, ok := colors[tone]
	if !ok {
		c = "252"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
}
