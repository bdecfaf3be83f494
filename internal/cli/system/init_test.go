package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gugan-zemuria/habitctl/internal/cli"
	"github.com/gugan-zemuria/habitctl/internal/models"
	"github.com/gugan-zemuria/habitctl/internal/storage/sqlite"
	"github.com/gugan-zemuria/habitctl/internal/utils"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string, func()) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "test.db")

	store := sqlite.NewStore(dbPath)

	ctx := &cli.Context{
		Store: store,
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return ctx, dbPath, cleanup
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}
	err := cmd.Run(ctx)

	if err != nil {
		t.Errorf("init command failed: %v", err)
	}

	// Verify database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{}

	err := cmd.Run(ctx)
	if err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	err = cmd.Run(ctx)
	if err != nil {
		t.Errorf("second init failed (should be idempotent): %v", err)
	}
}

func TestInitCmd_ForceDeletesExisting(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	normalCmd := &InitCmd{}
	err := normalCmd.Run(ctx)
	if err != nil {
		t.Fatalf("initial init failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("database file was not created")
	}

	// Add a habit to verify it gets wiped
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      "Meditate",
		CreatedAt: time.Now().UTC(),
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	if err := ctx.Store.Close(); err != nil {
		t.Fatalf("failed to close store before force reset: %v", err)
	}

	forceCmd := &InitCmd{Force: true}
	err = forceCmd.Run(ctx)
	if err != nil {
		t.Fatalf("init with force failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatalf("database file was not recreated after force")
	}

	err = ctx.Store.Load()
	if err != nil {
		t.Fatalf("failed to load store after force: %v", err)
	}

	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		t.Fatalf("failed to get habits after force: %v", err)
	}
	if len(habits) != 0 {
		t.Errorf("expected empty database after force, got %d habits", len(habits))
	}
}

func TestInitCmd_ForceWithNonExistentDatabase(t *testing.T) {
	ctx, dbPath, cleanup := setupTestInitDB(t)
	defer cleanup()

	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatalf("database file should not exist initially")
	}

	forceCmd := &InitCmd{Force: true}
	err := forceCmd.Run(ctx)
	if err != nil {
		t.Fatalf("init with force on non-existent database failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created")
	}
}

func TestInitCmd_MigratesFromSource(t *testing.T) {
	tempDir := t.TempDir()
	sourcePath := filepath.Join(tempDir, "source.db")

	// Populate a source database
	source := sqlite.NewStore(sourcePath)
	if err := source.Init(); err != nil {
		t.Fatalf("failed to init source store: %v", err)
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      "Read",
		Category:  "learning",
		Tags:      []string{"evening"},
		CreatedAt: time.Now().UTC(),
	}
	if err := source.AddHabit(habit); err != nil {
		t.Fatalf("failed to add source habit: %v", err)
	}
	completion := models.Completion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       utils.TodayKey(),
		CreatedAt: time.Now().UTC(),
	}
	if err := source.AddCompletion(completion); err != nil {
		t.Fatalf("failed to add source completion: %v", err)
	}
	if err := source.Close(); err != nil {
		t.Fatalf("failed to close source store: %v", err)
	}

	ctx, _, cleanup := setupTestInitDB(t)
	defer cleanup()

	cmd := &InitCmd{Source: sourcePath}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}

	habits, err := ctx.Store.GetAllHabits(true, true)
	if err != nil {
		t.Fatalf("failed to get migrated habits: %v", err)
	}
	if len(habits) != 1 || habits[0].Name != "Read" {
		t.Fatalf("expected migrated habit 'Read', got %+v", habits)
	}

	completions, err := ctx.Store.GetCompletions(habit.ID)
	if err != nil {
		t.Fatalf("failed to get migrated completions: %v", err)
	}
	if len(completions) != 1 || completions[0].Day != completion.Day {
		t.Errorf("expected one migrated completion for %s, got %+v", completion.Day, completions)
	}
}
