package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/handle"
	"github.com/mindlink/mindlink/internal/logger"
	"github.com/mindlink/mindlink/internal/models"
)

// JSONStore keeps each logical key in its own <key>.json file under a data
// directory. One file per key preserves partial-update semantics: saving
// the profile cannot clobber the mood ledger.
type JSONStore struct {
	dir string
}

func NewJSONStore(dir string) *JSONStore {
	return &JSONStore{dir: dir}
}

func (s *JSONStore) Init() error {
	// The profile record marks an initialized store. The directory alone is
	// not enough: the logger may create it before init runs.
	if _, err := os.Stat(s.keyPath(constants.KeyProfile)); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.dir)
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	profile := models.Profile{
		AnonymousHandle: handle.New(),
		Notifications:   true,
	}
	if err := s.SaveProfile(profile); err != nil {
		return err
	}
	return s.SavePosts(SeedPosts())
}

func (s *JSONStore) Load() error {
	if _, err := os.Stat(s.keyPath(constants.KeyProfile)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'mindlink init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// get reads and decodes one key. A missing or corrupt record is reported
// as absent, never as an error: the caller substitutes its default.
func (s *JSONStore) get(key string, dest any) bool {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Debug("discarding unreadable record", "key", key, "error", err)
		return false
	}
	return true
}

func (s *JSONStore) set(key string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := os.WriteFile(s.keyPath(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *JSONStore) Profile() models.Profile {
	var p models.Profile
	if !s.get(constants.KeyProfile, &p) {
		return DefaultProfile()
	}
	return p
}

func (s *JSONStore) SaveProfile(p models.Profile) error {
	return s.set(constants.KeyProfile, p)
}

func (s *JSONStore) Moods() []models.MoodRecord {
	var m []models.MoodRecord
	if !s.get(constants.KeyMoods, &m) || m == nil {
		return []models.MoodRecord{}
	}
	return m
}

func (s *JSONStore) SaveMoods(m []models.MoodRecord) error {
	return s.set(constants.KeyMoods, m)
}

func (s *JSONStore) Posts() []models.Post {
	var p []models.Post
	if !s.get(constants.KeyPosts, &p) || p == nil {
		return []models.Post{}
	}
	return p
}

func (s *JSONStore) SavePosts(p []models.Post) error {
	return s.set(constants.KeyPosts, p)
}

func (s *JSONStore) Missions() []string {
	var m []string
	if !s.get(constants.KeyMissions, &m) || m == nil {
		return []string{}
	}
	return m
}

func (s *JSONStore) SaveMissions(m []string) error {
	return s.set(constants.KeyMissions, m)
}

func (s *JSONStore) GetDataPath() string {
	return s.dir
}
