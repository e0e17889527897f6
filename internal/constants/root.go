package constants

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName         = "mindlink"
	DefaultDataPath = "~/.config/mindlink/mindlink.db"
	Version         = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Store keys. Each key is an independent durable record; saving one
	// never rewrites another.
	KeyProfile  = "profile"
	KeyMoods    = "moods"
	KeyPosts    = "posts"
	KeyMissions = "missions"

	// StreakWindowDays bounds how far back the streak scan walks.
	StreakWindowDays = 30

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "mindlink-"
	BackupFileSuffix = ".db"

	// DefaultChatBaseURL is where the companion service listens unless
	// overridden on the command line.
	DefaultChatBaseURL = "http://localhost:8787"
	ChatTextPath       = "/api/chat"
	ChatImagePath      = "/api/chat/image"
)

// Session States. The first six are the nav tabs, in tab order.
const (
	StateDashboard SessionState = iota
	StateResources
	StateCommunity
	StateRewards
	StateMissions
	StateSettings
	StateAssessment
	StateBreathing
	StatePostForm
	StateCheckinForm
	StateEditSettings
	StateConfirmReset
	StateResourceView
)
