package community

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mindlink/mindlink/internal/models"
)

type NewPostMsg struct{}

type UpvoteMsg struct {
	ID string
}

type Item struct {
	Post models.Post
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s", i.Post.Handle, i.Post.Text)
}

func (i Item) Description() string {
	return fmt.Sprintf("▲ %d", i.Post.Up)
}

func (i Item) FilterValue() string { return i.Post.Text }

type KeyMap struct {
	Post   key.Binding
	Upvote key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Post: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "new post"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("u", "enter"),
			key.WithHelp("u", "upvote"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(posts []models.Post, width, height int) Model {
	l := list.New(postItems(posts), list.NewDefaultDelegate(), width, height)
	l.Title = "Community"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Post, keys.Upvote}
	}

	return Model{list: l, keys: keys}
}

func postItems(posts []models.Post) []list.Item {
	items := make([]list.Item, len(posts))
	for i, p := range posts {
		items[i] = Item{Post: p}
	}
	return items
}

func (m *Model) SetPosts(posts []models.Post) {
	m.list.SetItems(postItems(posts))
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
		case key.Matches(msg, m.keys.Post):
			return m, func() tea.Msg { return NewPostMsg{} }
		case key.Matches(msg, m.keys.Upvote):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return UpvoteMsg{ID: i.Post.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No posts yet.\n  Press 'p' to share something."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
