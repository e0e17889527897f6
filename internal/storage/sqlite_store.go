package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mindlink/mindlink/internal/constants"
	"github.com/mindlink/mindlink/internal/handle"
	"github.com/mindlink/mindlink/internal/logger"
	"github.com/mindlink/mindlink/internal/models"
)

// SQLiteStore keeps every logical key as one row of a kv table. Writes are
// upserts, so each key remains an independent record like the JSON store's
// per-key files.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Seed defaults only when the records are missing so re-running init
	// never wipes existing data.
	var p models.Profile
	if !s.get(constants.KeyProfile, &p) {
		profile := models.Profile{
			AnonymousHandle: handle.New(),
			Notifications:   true,
		}
		if err := s.SaveProfile(profile); err != nil {
			return err
		}
	}
	var posts []models.Post
	if !s.get(constants.KeyPosts, &posts) {
		if err := s.SavePosts(SeedPosts()); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'mindlink init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) get(key string, dest any) bool {
	if s.db == nil {
		return false
	}
	var value string
	row := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		logger.Debug("discarding unreadable record", "key", key, "error", err)
		return false
	}
	return true
}

func (s *SQLiteStore) set(key string, value any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Profile() models.Profile {
	var p models.Profile
	if !s.get(constants.KeyProfile, &p) {
		return DefaultProfile()
	}
	return p
}

func (s *SQLiteStore) SaveProfile(p models.Profile) error {
	return s.set(constants.KeyProfile, p)
}

func (s *SQLiteStore) Moods() []models.MoodRecord {
	var m []models.MoodRecord
	if !s.get(constants.KeyMoods, &m) || m == nil {
		return []models.MoodRecord{}
	}
	return m
}

func (s *SQLiteStore) SaveMoods(m []models.MoodRecord) error {
	return s.set(constants.KeyMoods, m)
}

func (s *SQLiteStore) Posts() []models.Post {
	var p []models.Post
	if !s.get(constants.KeyPosts, &p) || p == nil {
		return []models.Post{}
	}
	return p
}

func (s *SQLiteStore) SavePosts(p []models.Post) error {
	return s.set(constants.KeyPosts, p)
}

func (s *SQLiteStore) Missions() []string {
	var m []string
	if !s.get(constants.KeyMissions, &m) || m == nil {
		return []string{}
	}
	return m
}

func (s *SQLiteStore) SaveMissions(m []string) error {
	return s.set(constants.KeyMissions, m)
}

func (s *SQLiteStore) GetDataPath() string {
	return s.path
}
