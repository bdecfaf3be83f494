package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDB(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "habitctl.db")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write db: %v", err)
	}
	return path
}

func TestCreateAndListBackups(t *testing.T) {
	dbPath := writeDB(t, t.TempDir(), "data-v1")
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}

	got, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(got) != "data-v1" {
		t.Errorf("backup content = %q, want data-v1", got)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("got %d backups, want 1", len(backups))
	}
	if backups[0].Size != int64(len("data-v1")) {
		t.Errorf("backup size = %d", backups[0].Size)
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := writeDB(t, t.TempDir(), "data-v1")
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}

	if err := os.WriteFile(dbPath, []byte("data-v2"), 0600); err != nil {
		t.Fatalf("modify db: %v", err)
	}

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("restore: %v", err)
	}

	got, err := os.ReadFile(dbPath)
	if err != nil {
		t.Fatalf("read db: %v", err)
	}
	if string(got) != "data-v1" {
		t.Errorf("restored content = %q, want data-v1", got)
	}

	// The pre-restore state was itself backed up
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("got %d backups, want at least 2", len(backups))
	}
}

func TestCreateBackupRejectsPostgres(t *testing.T) {
	mgr := NewManager("postgresql")
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for non-file storage")
	}
}

func TestListBackupsEmpty(t *testing.T) {
	mgr := NewManager(writeDB(t, t.TempDir(), "x"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}
