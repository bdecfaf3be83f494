// Package backup manages timestamped copies of the SQLite database file.
// Old backups are pruned so at most MaxBackups remain.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MaxBackups is the number of most recent backups kept after pruning.
const MaxBackups = 10

const timestampFormat = "20060102-150405"

// Info describes a single backup file on disk.
type Info struct {
	Path      string
	Size      int64
	Timestamp time.Time
}

// Manager creates and restores backups for a database file path.
type Manager struct {
	dbPath string
}

func NewManager(dbPath string) *Manager {
	return &Manager{dbPath: dbPath}
}

// GetBackupDir returns the directory backups are written to, next to the
// database file.
func (m *Manager) GetBackupDir() string {
	return filepath.Join(filepath.Dir(m.dbPath), "backups")
}

func (m *Manager) backupName(ts time.Time) string {
	base := strings.TrimSuffix(filepath.Base(m.dbPath), filepath.Ext(m.dbPath))
	return fmt.Sprintf("%s-%s.db", base, ts.Format(timestampFormat))
}

// CreateBackup copies the current database file into the backup directory
// and prunes old backups. Returns the path of the new backup.
func (m *Manager) CreateBackup() (string, error) {
	if m.dbPath == "postgresql" {
		return "", fmt.Errorf("file backups are only supported for SQLite storage")
	}
	if _, err := os.Stat(m.dbPath); err != nil {
		return "", fmt.Errorf("database file not found: %w", err)
	}

	dir := m.GetBackupDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	dest := filepath.Join(dir, m.backupName(time.Now()))
	if err := copyFile(m.dbPath, dest); err != nil {
		return "", err
	}

	if err := m.prune(); err != nil {
		return dest, fmt.Errorf("backup created but pruning failed: %w", err)
	}

	return dest, nil
}

// ListBackups returns the existing backups, newest first.
func (m *Manager) ListBackups() ([]Info, error) {
	dir := m.GetBackupDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		ts, ok := parseTimestamp(entry.Name())
		if !ok {
			ts = fi.ModTime()
		}
		backups = append(backups, Info{
			Path:      filepath.Join(dir, entry.Name()),
			Size:      fi.Size(),
			Timestamp: ts,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// RestoreBackup replaces the current database file with the given backup,
// saving the current file as a backup first.
func (m *Manager) RestoreBackup(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file not found: %w", err)
	}

	// Keep a copy of the current database before overwriting it
	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.CreateBackup(); err != nil {
			return fmt.Errorf("failed to back up current database before restore: %w", err)
		}
	}

	return copyFile(backupPath, m.dbPath)
}

func (m *Manager) prune() error {
	backups, err := m.ListBackups()
	if err != nil {
		return err
	}
	for _, b := range backups[min(len(backups), MaxBackups):] {
		if err := os.Remove(b.Path); err != nil {
			return err
		}
	}
	return nil
}

func parseTimestamp(name string) (time.Time, bool) {
	name = strings.TrimSuffix(name, ".db")
	idx := len(name) - len(timestampFormat)
	if idx < 1 {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(timestampFormat, name[idx:], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return out.Sync()
}
