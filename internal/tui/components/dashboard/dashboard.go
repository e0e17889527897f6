package dashboard

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mindlink/mindlink/internal/models"
	"github.com/mindlink/mindlink/internal/reveal"
)

var (
	greetingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	cardStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(48)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(1, 2)
)

// TickMsg paces the greeting reveal.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(reveal.Interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type Model struct {
	handle      string
	greeting    *reveal.Reveal
	today       string
	todayRecord *models.MoodRecord
	streak      int
	total       int
	width       int
	height      int
}

func greetingFor(handle string) *reveal.Reveal {
	return reveal.New(fmt.Sprintf("Welcome back, %s. How are you feeling today?", handle))
}

func New(handle string) Model {
	return Model{handle: handle, greeting: greetingFor(handle)}
}

// SetGreeting restarts the typed greeting, e.g. after a handle change.
func (m *Model) SetGreeting(handle string) tea.Cmd {
	m.handle = handle
	m.greeting = greetingFor(handle)
	return tick()
}

// SetStatus refreshes the check-in summary. Becoming un-checked-in again
// (a new day, a data reset) restarts the greeting from empty.
func (m *Model) SetStatus(records []models.MoodRecord, today string, streak int) {
	wasCheckedIn := m.todayRecord != nil

	m.today = today
	m.streak = streak
	m.total = len(records)
	m.todayRecord = nil
	for i := range records {
		if records[i].Date == today {
			m.todayRecord = &records[i]
			break
		}
	}

	if wasCheckedIn && m.todayRecord == nil {
		m.greeting.Reset()
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		// The typed prompt only runs while today is still open; checking in
		// stops it for good.
		if m.todayRecord == nil && m.greeting.Tick() {
			return m, tick()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var greeting, status string
	if m.todayRecord != nil {
		greeting = fmt.Sprintf("Welcome back, %s.", m.handle)
		bar := strings.Repeat("▇", m.todayRecord.Score) + strings.Repeat("·", 9-m.todayRecord.Score)
		status = fmt.Sprintf("Today: checked in\nMood %d/9  %s", m.todayRecord.Score, bar)
	} else {
		greeting = m.greeting.Visible()
		status = "Today: not checked in yet\nPress 'c' to check in."
	}

	card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		status,
		"",
		fmt.Sprintf("Streak: %d day(s) · %d total check-in(s)", m.streak, m.total),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		greetingStyle.Render(greeting),
		card,
		hintStyle.Render("c check in · a assessment · b breathing"),
	)
}
