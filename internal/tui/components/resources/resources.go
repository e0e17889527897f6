package resources

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindlink/mindlink/internal/models"
)

type OpenResourceMsg struct {
	ID string
}

type Item struct {
	Resource models.Resource
}

func (i Item) Title() string {
	return i.Resource.Title
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s", i.Resource.Kind, i.Resource.Length)
}

func (i Item) FilterValue() string { return i.Resource.Title }

type KeyMap struct {
	Open key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(resources []models.Resource, width, height int) Model {
	items := make([]list.Item, len(resources))
	for i, r := range resources {
		items[i] = Item{Resource: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Resource Hub"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}

	return Model{list: l, keys: keys}
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
		if key.Matches(msg, m.keys.Open) {
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return OpenResourceMsg{ID: i.Resource.ID} }
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
