package storage

import "github.com/mindlink/mindlink/internal/models"

// Provider is the durable key-value layer every other component builds on.
// Each logical key (profile, moods, posts, missions) is an independent
// record: saving one never rewrites another. Readers fall back to defaults
// when a record is missing or unreadable; writers persist before returning.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile
	Profile() models.Profile
	SaveProfile(models.Profile) error

	// Moods
	Moods() []models.MoodRecord
	SaveMoods([]models.MoodRecord) error

	// Posts
	Posts() []models.Post
	SavePosts([]models.Post) error

	// Missions
	Missions() []string
	SaveMissions([]string) error

	// Utils
	GetDataPath() string
}
