package storage

import (
	"encoding/json"

	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/models"
)

// MemStore is an in-memory Provider for tests and ephemeral sessions. It
// round-trips values through JSON so encoding behavior matches the durable
// stores.
type MemStore struct {
	records map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string][]byte)}
}

func (s *MemStore) Init() error  { return nil }
func (s *MemStore) Load() error  { return nil }
func (s *MemStore) Close() error { return nil }

// Corrupt overwrites a key with bytes that will not decode, for exercising
// the fallback path.
func (s *MemStore) Corrupt(key string) {
	s.records[key] = []byte("{not json")
}

func (s *MemStore) get(key string, dest any) bool {
	data, ok := s.records[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (s *MemStore) set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.records[key] = data
	return nil
}

func (s *MemStore) Profile() models.Profile {
	var p models.Profile
	if !s.get(constants.KeyProfile, &p) {
		return DefaultProfile()
	}
	return p
}

func (s *MemStore) SaveProfile(p models.Profile) error {
	return s.set(constants.KeyProfile, p)
}

func (s *MemStore) Moods() []models.MoodRecord {
	var m []models.MoodRecord
	if !s.get(constants.KeyMoods, &m) || m == nil {
		return []models.MoodRecord{}
	}
	return m
}

func (s *MemStore) SaveMoods(m []models.MoodRecord) error {
	return s.set(constants.KeyMoods, m)
}

func (s *MemStore) Posts() []models.Post {
	var p []models.Post
	if !s.get(constants.KeyPosts, &p) || p == nil {
		return []models.Post{}
	}
	return p
}

func (s *MemStore) SavePosts(p []models.Post) error {
	return s.set(constants.KeyPosts, p)
}

func (s *MemStore) Missions() []string {
	var m []string
	if !s.get(constants.KeyMissions, &m) || m == nil {
		return []string{}
	}
	return m
}

func (s *MemStore) SaveMissions(m []string) error {
	return s.set(constants.KeyMissions, m)
}

func (s *MemStore) GetDataPath() string {
	return ":memory:"
}
