package missions

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindlink/mindlink/internal/models"
)

type CompleteMissionMsg struct {
	ID string
}

type Item struct {
	Mission models.Mission
	Done    bool
}

func (i Item) Title() string {
	if i.Done {
		return "✓ " + i.Mission.Text
	}
	return "○ " + i.Mission.Text
}

func (i Item) Description() string {
	if i.Done {
		return "completed"
	}
	return "not completed yet"
}

func (i Item) FilterValue() string { return i.Mission.Text }

type KeyMap struct {
	Complete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Complete: key.NewBinding(
			key.WithKeys("m", "enter"),
			key.WithHelp("m", "mark done"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(missions []models.Mission, completed []string, width, height int) Model {
	l := list.New(missionItems(missions, completed), list.NewDefaultDelegate(), width, height)
	l.Title = "Missions"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Complete}
	}

	return Model{list: l, keys: keys}
}

func missionItems(missions []models.Mission, completed []string) []list.Item {
	done := make(map[string]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	items := make([]list.Item, len(missions))
	for i, m := range missions {
		items[i] = Item{Mission: m, Done: done[m.ID]}
	}
	return items
}

func (m *Model) SetMissions(missions []models.Mission, completed []string) {
	m.list.SetItems(missionItems(missions, completed))
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
		if key.Matches(msg, m.keys.Complete) {
			if i, ok := m.list.SelectedItem().(Item); ok && !i.Done {
				return m, func() tea.Msg { return CompleteMissionMsg{ID: i.Mission.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
