package storage

import (
	"github.com/mindlink/mindlink/internal/handle"
	"github.com/mindlink/mindlink/internal/models"
)

// DefaultProfile is the fallback when no profile record can be read.
func DefaultProfile() models.Profile {
	return models.Profile{
		AnonymousHandle: handle.Default,
		Notifications:   true,
	}
}

// SeedPosts is the forum content a fresh installation starts with.
func SeedPosts() []models.Post {
	return []models.Post{
		{ID: "1", Handle: "@hopeful-sparrow", Text: "Exam stress is high!", Up: 12},
	}
}

// ResetToDefaults clears every record back to a seeded fresh state with a
// newly generated handle. The first save error aborts the reset so a partial
// failure is never reported as success.
func ResetToDefaults(p Provider) (models.Profile, error) {
	profile := DefaultProfile()
	profile.AnonymousHandle = handle.New()

	if err := p.SaveProfile(profile); err != nil {
		return models.Profile{}, err
	}
	if err := p.SaveMoods([]models.MoodRecord{}); err != nil {
		return models.Profile{}, err
	}
	if err := p.SavePosts(SeedPosts()); err != nil {
		return models.Profile{}, err
	}
	if err := p.SaveMissions([]string{}); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}
