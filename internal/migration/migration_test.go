package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrations(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql":  {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
		"002_notes.sql": {Data: []byte("ALTER TABLE habits ADD COLUMN note TEXT;")},
		"README.md":     {Data: []byte("ignored")},
	}

	runner := NewRunner(openTestDB(t), fsys, DialectSQLite)

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied = %d, want 2", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("current version: %v", err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	// Re-running is a no-op
	applied, err = runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if applied != 0 {
		t.Errorf("reapply applied = %d, want 0", applied)
	}
}

func TestApplyMigrations_RollsBackFailedMigration(t *testing.T) {
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
		"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
	}

	runner := NewRunner(openTestDB(t), fsys, DialectSQLite)

	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from bad migration")
	}
	if applied != 1 {
		t.Errorf("applied = %d, want 1", applied)
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("current version: %v", err)
	}
	if version != 1 {
		t.Errorf("version after failure = %d, want 1", version)
	}
}

func TestReadMigrationFiles_RejectsBadNames(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"missing underscore": {"001.sql": {Data: []byte("SELECT 1;")}},
		"non-numeric":        {"abc_init.sql": {Data: []byte("SELECT 1;")}},
		"zero version":       {"000_init.sql": {Data: []byte("SELECT 1;")}},
		"duplicate version": {
			"001_a.sql": {Data: []byte("SELECT 1;")},
			"001_b.sql": {Data: []byte("SELECT 1;")},
		},
	}

	for name, fsys := range cases {
		runner := NewRunner(openTestDB(t), fsys, DialectSQLite)
		if _, err := runner.ReadMigrationFiles(); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestValidateVersion_RejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
	}

	runner := NewRunner(db, fsys, DialectSQLite)
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump version: %v", err)
	}

	if err := runner.ValidateVersion(); err == nil {
		t.Error("expected error for newer schema version")
	}
}
