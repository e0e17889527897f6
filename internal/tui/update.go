package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mindlink/mindlink/internal/assessment"
	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/forum"
	"github.com/mindlink/mindlink/internal/handle"
	missionsvc "github.com/mindlink/mindlink/internal/missions"
	"github.com/mindlink/mindlink/internal/models"
	"github.com/mindlink/mindlink/internal/storage"
	"github.com/mindlink/mindlink/internal/tui/components/community"
	"github.com/mindlink/mindlink/internal/tui/components/dashboard"
	"github.com/mindlink/mindlink/internal/tui/components/missions"
	"github.com/mindlink/mindlink/internal/tui/components/resources"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The greeting keeps revealing even while a modal is open.
	if tick, ok := msg.(dashboard.TickMsg); ok {
		var cmd tea.Cmd
		m.dashboardModel, cmd = m.dashboardModel.Update(tick)
		return m, cmd
	}

	switch m.state {
	case constants.StateCheckinForm:
		return m.updateCheckinForm(msg)
	case constants.StatePostForm:
		return m.updatePostForm(msg)
	case constants.StateEditSettings:
		return m.updateSettingsForm(msg)
	case constants.StateAssessment:
		return m.updateAssessment(msg)
	case constants.StateBreathing:
		return m.updateBreathing(msg)
	case constants.StateConfirmReset:
		return m.updateConfirmReset(msg)
	case constants.StateResourceView:
		return m.updateResourceView(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		contentHeight := msg.Height - 6
		m.dashboardModel.SetSize(msg.Width, contentHeight)
		m.resourcesModel.SetSize(msg.Width-4, contentHeight)
		m.communityModel.SetSize(msg.Width-4, contentHeight)
		m.rewardsModel.SetSize(msg.Width, contentHeight)
		m.missionsModel.SetSize(msg.Width-4, contentHeight)
		m.settingsModel.SetSize(msg.Width, contentHeight)

	case resources.OpenResourceMsg:
		if r, ok := models.FindResource(msg.ID); ok {
			m.activeResource = r
			m.previousState = m.state
			m.state = constants.StateResourceView
		}
		return m, nil

	case community.NewPostMsg:
		m.startPostForm()
		return m, nil

	case community.UpvoteMsg:
		if err := forum.New(m.store).Upvote(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case missions.CompleteMissionMsg:
		if err := missionsvc.New(m.store).Complete(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		switch m.state {
		case constants.StateDashboard:
			switch {
			case key.Matches(msg, m.keys.CheckIn):
				m.startCheckinForm()
				return m, nil
			case key.Matches(msg, m.keys.Assess):
				m.startAssessment()
				return m, nil
			case key.Matches(msg, m.keys.Breathe):
				return m, m.startBreathing()
			}

		case constants.StateSettings:
			switch {
			case key.Matches(msg, m.keys.Edit):
				m.startSettingsForm()
				return m, nil
			case key.Matches(msg, m.keys.Reset):
				m.previousState = m.state
				m.state = constants.StateConfirmReset
				return m, nil
			}
		}
	}

	// Route everything else to the focused tab.
	var cmd tea.Cmd
	switch m.state {
	case constants.StateResources:
		m.resourcesModel, cmd = m.resourcesModel.Update(msg)
	case constants.StateCommunity:
		m.communityModel, cmd = m.communityModel.Update(msg)
	case constants.StateMissions:
		m.missionsModel, cmd = m.missionsModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updateCheckinForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitCheckin()
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updatePostForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := forum.New(m.store).Post(m.postInput); err == nil {
			m.refresh()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateSettingsForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		profile := m.store.Profile()
		if handle.Valid(m.settingsForm.Handle) {
			profile.AnonymousHandle = m.settingsForm.Handle
		}
		profile.Notifications = m.settingsForm.Notifications
		if err := m.store.SaveProfile(profile); err == nil {
			m.refresh()
			cmds := []tea.Cmd{cmd, m.dashboardModel.SetGreeting(profile.AnonymousHandle)}
			m.state = m.previousState
			return m, tea.Batch(cmds...)
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, cmd
}

func (m Model) updateAssessment(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if m.session != nil && m.session.Step() == assessment.StepQuestions && m.session.CurrentIndex() == msg.index {
			m.session.Advance()
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			// Closing discards the attempt entirely.
			m.session = nil
			m.state = m.previousState
			return m, nil
		}

		switch m.session.Step() {
		case assessment.StepSelection:
			switch msg.String() {
			case "1":
				m.session.Start("gad7")
			case "2":
				m.session.Start("phq9")
			}

		case assessment.StepQuestions:
			switch msg.String() {
			case "1", "2", "3", "4":
				score := int(msg.String()[0] - '1')
				if err := m.session.Answer(score); err == nil {
					index := m.session.CurrentIndex()
					return m, tea.Tick(answerDelay, func(time.Time) tea.Msg {
						return advanceMsg{index: index}
					})
				}
			}

		case assessment.StepResult:
			switch msg.String() {
			case "r":
				m.session.Restart()
			case "enter":
				m.session = nil
				m.state = m.previousState
			}
		}
	}
	return m, nil
}

func (m Model) updateBreathing(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case breathTickMsg:
		if m.breathLeft > 0 {
			m.breathLeft--
			if m.breathLeft > 0 {
				return m, breathTick()
			}
			// Let the finish message sit for a moment, then close on its own.
			return m, tea.Tick(breathDonePause, func(time.Time) tea.Msg {
				return breathDoneMsg{}
			})
		}
		return m, nil

	case breathDoneMsg:
		m.state = m.previousState
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			m.state = m.previousState
			return m, nil
		}
	}
	return m, nil
}

func (m Model) updateResourceView(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "enter", "q":
			m.state = m.previousState
		}
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y":
			profile, err := storage.ResetToDefaults(m.store)
			if err != nil {
				// Stay on the confirm screen so the failure is visible.
				m.resetErr = err
				return m, nil
			}
			m.resetErr = nil
			m.refresh()
			m.state = m.previousState
			return m, m.dashboardModel.SetGreeting(profile.AnonymousHandle)
		case "n", "esc":
			m.resetErr = nil
			m.state = m.previousState
		}
	}
	return m, nil
}
