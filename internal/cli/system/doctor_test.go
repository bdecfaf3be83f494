package system

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gugan-zemuria/habitctl/internal/backup"
	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/storage/sqlite"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

func setupTestDoctorDB(t *testing.T) (*cli.Context, string) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	return &cli.Context{Store: store}, dbPath
}

func TestDoctorChecks_HealthyDB(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)

	if err := checkDBReachable(ctx); err != nil {
		t.Errorf("checkDBReachable failed on healthy DB: %v", err)
	}
	if err := checkSchemaVersion(ctx); err != nil {
		t.Errorf("checkSchemaVersion failed on healthy DB: %v", err)
	}
	if err := checkMigrationsComplete(ctx); err != nil {
		t.Errorf("checkMigrationsComplete failed on healthy DB: %v", err)
	}
	if err := checkHabitIntegrity(ctx); err != nil {
		t.Errorf("checkHabitIntegrity failed on healthy DB: %v", err)
	}
	if err := checkCompletionIntegrity(ctx); err != nil {
		t.Errorf("checkCompletionIntegrity failed on healthy DB: %v", err)
	}
	if err := checkCompletionDates(ctx); err != nil {
		t.Errorf("checkCompletionDates failed on healthy DB: %v", err)
	}
	if err := checkTimestampIntegrity(ctx); err != nil {
		t.Errorf("checkTimestampIntegrity failed on healthy DB: %v", err)
	}
}

func TestDoctorChecks_MissingBackups(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)

	if err := checkBackupsPresent(ctx); err == nil {
		t.Error("expected warning when no backups exist")
	}
}

func TestDoctorChecks_WithBackups(t *testing.T) {
	ctx, dbPath := setupTestDoctorDB(t)

	mgr := backup.NewManager(dbPath)
	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	if err := checkBackupsPresent(ctx); err != nil {
		t.Errorf("expected backups check to pass, got: %v", err)
	}
}

func TestDoctorChecks_DuplicateHabitNames(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)

	for _, name := range []string{"Meditate", "meditate"} {
		habit := models.Habit{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now().UTC(),
		}
		if err := ctx.Store.AddHabit(habit); err != nil {
			t.Fatalf("failed to add habit: %v", err)
		}
	}

	if err := checkHabitIntegrity(ctx); err == nil {
		t.Error("expected habit integrity check to report duplicate names")
	}
}

func TestDoctorChecks_FutureCompletion(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      "Run",
		CreatedAt: time.Now().UTC(),
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	future := utils.DateKey(time.Now().AddDate(0, 0, 7))
	completion := models.Completion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       future,
		CreatedAt: time.Now().UTC(),
	}
	if err := ctx.Store.AddCompletion(completion); err != nil {
		t.Fatalf("failed to add completion: %v", err)
	}

	if err := checkCompletionIntegrity(ctx); err == nil {
		t.Error("expected completion integrity check to report future-dated completion")
	}
}

func TestDoctorChecks_InvalidCompletionDate(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      "Stretch",
		CreatedAt: time.Now().UTC(),
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	store := ctx.Store.(*sqlite.Store)
	_, err := store.GetDB().Exec(
		`INSERT INTO completions (id, habit_id, day, note, created_at) VALUES (?, ?, ?, '', ?)`,
		uuid.New().String(), habit.ID, "not-a-date", time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		t.Fatalf("failed to insert malformed completion: %v", err)
	}

	if err := checkCompletionDates(ctx); err == nil {
		t.Error("expected date format check to report malformed day key")
	}
}

func TestDoctorChecks_ClockTimezone(t *testing.T) {
	if err := checkClockTimezone(); err != nil {
		t.Errorf("clock check failed: %v", err)
	}
}
