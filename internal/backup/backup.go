package backup

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mindlink/mindlink/internal/constants"
)

// Info describes a single backup on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager copies the data store into a backups directory and prunes old
// copies. The data path may be a SQLite file or a JSON store directory.
type Manager struct {
	dataPath  string
	backupDir string
}

// NewManager creates a backup manager for the given data path. For a file
// store the backup directory is a sibling of the file; for a directory
// store it lives inside the store directory.
func NewManager(dataPath string) *Manager {
	backupDir := filepath.Join(filepath.Dir(dataPath), constants.BackupDirName)
	if info, err := os.Stat(dataPath); err == nil && info.IsDir() {
		backupDir = filepath.Join(dataPath, constants.BackupDirName)
	}
	return &Manager{dataPath: dataPath, backupDir: backupDir}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create makes a new timestamped backup and prunes old ones.
func (m *Manager) Create() (string, error) {
	info, err := os.Stat(m.dataPath)
	if err != nil {
		return "", fmt.Errorf("data store does not exist: %s", m.dataPath)
	}
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	suffix := constants.BackupFileSuffix
	if info.IsDir() {
		suffix = ""
	}
	dest, err := m.nextPath(suffix)
	if err != nil {
		return "", err
	}

	if info.IsDir() {
		err = copyJSONDir(m.dataPath, dest)
	} else {
		err = copyDatabase(m.dataPath, dest)
	}
	if err != nil {
		return "", fmt.Errorf("failed to back up data store: %w", err)
	}

	if err := m.prune(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to prune old backups: %v\n", err)
	}
	return dest, nil
}

// nextPath picks a timestamped backup path that does not exist yet.
func (m *Manager) nextPath(suffix string) (string, error) {
	stamp := time.Now().Format("20060102-150405")
	path := filepath.Join(m.backupDir, constants.BackupFilePrefix+stamp+suffix)
	for counter := 1; ; counter++ {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup name")
		}
		name := fmt.Sprintf("%s%s-%d%s", constants.BackupFilePrefix, stamp, counter, suffix)
		path = filepath.Join(m.backupDir, name)
	}
}

// List returns all backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, constants.BackupFilePrefix) {
			continue
		}

		stamp := strings.TrimPrefix(name, constants.BackupFilePrefix)
		stamp = strings.TrimSuffix(stamp, constants.BackupFileSuffix)
		if i := strings.LastIndex(stamp, "-"); i > len("20060102") {
			// drop the collision counter
			stamp = stamp[:i]
		}
		ts, err := time.Parse("20060102-150405", stamp)
		if err != nil {
			continue
		}

		path := filepath.Join(m.backupDir, name)
		size, err := sizeOf(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: ts, Size: size})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

// prune removes backups beyond the retention limit.
func (m *Manager) prune() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.RemoveAll(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// copyDatabase snapshots a SQLite file with VACUUM INTO, falling back to a
// plain file copy when that is unavailable.
func copyDatabase(src, dest string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&count); err != nil {
		return fmt.Errorf("data store appears to be corrupted: %w", err)
	}

	if _, err := db.Exec("VACUUM INTO ?", dest); err != nil {
		return copyFile(src, dest)
	}
	return nil
}

// copyJSONDir copies the store's record files into a new backup directory.
func copyJSONDir(src, dest string) error {
	if err := os.MkdirAll(dest, 0700); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		if err := copyFile(filepath.Join(src, entry.Name()), filepath.Join(dest, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}

func sizeOf(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return info.Size(), nil
	}
	var total int64
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0, err
	}
	for _, entry := range entries {
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		total += fi.Size()
	}
	return total, nil
}
