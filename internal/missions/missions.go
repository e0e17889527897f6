package missions

import (
	"fmt"
	"slices"

	"github.com/mindlink/mindlink/internal/models"
	"github.com/mindlink/mindlink/internal/storage"
)

// Service tracks which of the built-in missions have been completed.
type Service struct {
	store storage.Provider
}

func New(store storage.Provider) *Service {
	return &Service{store: store}
}

// All returns the built-in mission list.
func (s *Service) All() []models.Mission {
	return models.Missions()
}

// Completed returns the IDs of completed missions.
func (s *Service) Completed() []string {
	return s.store.Missions()
}

// IsCompleted reports whether a mission has been completed.
func (s *Service) IsCompleted(id string) bool {
	return slices.Contains(s.store.Missions(), id)
}

// Complete marks a mission done. Completing an already-completed mission is
// a no-op; unknown IDs are rejected.
func (s *Service) Complete(id string) error {
	known := false
	for _, m := range models.Missions() {
		if m.ID == id {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("mission not found: %s", id)
	}

	done := s.store.Missions()
	if slices.Contains(done, id) {
		return nil
	}
	return s.store.SaveMissions(append(done, id))
}
