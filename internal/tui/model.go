package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mindlink/mindlink/internal/assessment"
	"github.com/mindlink/mindlink/internal/breathing"
	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/ledger"
	"github.com/mindlink/mindlink/internal/models"
	"github.com/mindlink/mindlink/internal/storage"
	"github.com/mindlink/mindlink/internal/streak"
	"github.com/mindlink/mindlink/internal/tui/components/community"
	"github.com/mindlink/mindlink/internal/tui/components/dashboard"
	"github.com/mindlink/mindlink/internal/tui/components/missions"
	"github.com/mindlink/mindlink/internal/tui/components/resources"
	"github.com/mindlink/mindlink/internal/tui/components/rewards"
	"github.com/mindlink/mindlink/internal/tui/components/settings"
	"github.com/mindlink/mindlink/internal/utils"
)

// tabCount is how many top-level tabs the tab key cycles through.
const tabCount = 6

// answerDelay is the pause between recording an answer and showing the next
// question, so the selection stays visible for a beat.
const answerDelay = 250 * time.Millisecond

// advanceMsg moves the assessment forward after the answer delay. It carries
// the question index it was scheduled for so a re-answer cannot double-step.
type advanceMsg struct {
	index int
}

// breathTickMsg drives the one-second breathing countdown.
type breathTickMsg time.Time

func breathTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return breathTickMsg(t)
	})
}

// breathDonePause is how long the finish message stays up before the modal
// closes on its own.
const breathDonePause = 3 * time.Second

// breathDoneMsg closes the breathing modal after the finish pause.
type breathDoneMsg struct{}

type SettingsFormModel struct {
	Handle        string
	Notifications bool
}

type Model struct {
	store         storage.Provider
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	dashboardModel dashboard.Model
	resourcesModel resources.Model
	communityModel community.Model
	rewardsModel   rewards.Model
	missionsModel  missions.Model
	settingsModel  settings.Model

	form         *huh.Form
	noteInput    string
	postInput    string
	settingsForm *SettingsFormModel

	session        *assessment.Session
	breathLeft     int
	activeResource models.Resource
	resetErr       error

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider) Model {
	profile := store.Profile()
	today := utils.Today()
	records := store.Moods()
	cur := streak.Compute(records, today, constants.StreakWindowDays)

	dm := dashboard.New(profile.AnonymousHandle)
	dm.SetStatus(records, today, cur)

	rm := rewards.New()
	rm.SetStatus(cur, len(records))

	return Model{
		store:          store,
		state:          constants.StateDashboard,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		dashboardModel: dm,
		resourcesModel: resources.New(models.Resources(), 0, 0),
		communityModel: community.New(store.Posts(), 0, 0),
		rewardsModel:   rm,
		missionsModel:  missions.New(models.Missions(), store.Missions(), 0, 0),
		settingsModel:  settings.New(profile),
	}
}

func (m Model) Init() tea.Cmd {
	return m.dashboardModel.Init()
}

// refresh re-reads the store into every component after a mutation.
func (m *Model) refresh() {
	today := utils.Today()
	records := m.store.Moods()
	cur := streak.Compute(records, today, constants.StreakWindowDays)

	m.dashboardModel.SetStatus(records, today, cur)
	m.rewardsModel.SetStatus(cur, len(records))
	m.communityModel.SetPosts(m.store.Posts())
	m.missionsModel.SetMissions(models.Missions(), m.store.Missions())
	m.settingsModel.SetProfile(m.store.Profile())
}

func (m *Model) startCheckinForm() {
	m.noteInput = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Daily check-in").
				Description("How are you feeling today?").
				Value(&m.noteInput),
		),
	).WithTheme(huh.ThemeDracula())
	m.previousState = m.state
	m.state = constants.StateCheckinForm
}

func (m *Model) startPostForm() {
	m.postInput = ""
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("New post").
				Description("Share something with the community.").
				Value(&m.postInput),
		),
	).WithTheme(huh.ThemeDracula())
	m.previousState = m.state
	m.state = constants.StatePostForm
}

func (m *Model) startSettingsForm() {
	profile := m.store.Profile()
	m.settingsForm = &SettingsFormModel{
		Handle:        profile.AnonymousHandle,
		Notifications: profile.Notifications,
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Anonymous handle").
				Value(&m.settingsForm.Handle),
			huh.NewConfirm().
				Title("Daily reminders").
				Affirmative("On").
				Negative("Off").
				Value(&m.settingsForm.Notifications),
		),
	).WithTheme(huh.ThemeDracula())
	m.previousState = m.state
	m.state = constants.StateEditSettings
}

func (m *Model) startAssessment() {
	m.session = assessment.NewSession()
	m.previousState = m.state
	m.state = constants.StateAssessment
}

func (m *Model) startBreathing() tea.Cmd {
	m.breathLeft = breathing.DurationSeconds
	m.previousState = m.state
	m.state = constants.StateBreathing
	return breathTick()
}

// submitCheckin records today's check-in. Blank notes are dropped silently;
// the form can simply be reopened.
func (m *Model) submitCheckin() {
	led := ledger.New(m.store)
	if _, err := led.CheckInToday(utils.Today(), m.noteInput); err == nil {
		m.refresh()
	}
}
