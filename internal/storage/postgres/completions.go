package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gugan-zemuria/habitctl/internal/models"
)

const completionColumns = "id, habit_id, day, note, created_at"

func scanCompletion(scan func(dest ...any) error) (models.Completion, error) {
	var c models.Completion
	var createdAt string

	if err := scan(&c.ID, &c.HabitID, &c.Day, &c.Note, &createdAt); err != nil {
		return models.Completion{}, err
	}

	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
	}

	return c, nil
}

func (s *Store) AddCompletion(c models.Completion) error {
	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, note, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			note = EXCLUDED.note`,
		c.ID, c.HabitID, c.Day, c.Note, c.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetCompletions(habitID string) ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT `+completionColumns+`
		FROM completions WHERE habit_id = $1 ORDER BY day`, habitID)
}

func (s *Store) GetAllCompletions() ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT ` + completionColumns + `
		FROM completions ORDER BY day, habit_id`)
}

func (s *Store) GetCompletionsForDay(day string) ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT `+completionColumns+`
		FROM completions WHERE day = $1 ORDER BY habit_id`, day)
}

func (s *Store) queryCompletions(query string, args ...any) ([]models.Completion, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		c, err := scanCompletion(rows.Scan)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}

	return completions, rows.Err()
}

func (s *Store) GetCalendarCompletions(startDay, endDay string) (map[string][]string, error) {
	rows, err := s.db.Query(`
		SELECT day, habit_id
		FROM completions WHERE day >= $1 AND day <= $2
		ORDER BY day, habit_id`, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	calendar := make(map[string][]string)
	for rows.Next() {
		var day, habitID string
		if err := rows.Scan(&day, &habitID); err != nil {
			return nil, err
		}
		calendar[day] = append(calendar[day], habitID)
	}

	return calendar, rows.Err()
}

func (s *Store) ToggleCompletion(habitID, day string) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRow(
		"SELECT id FROM completions WHERE habit_id = $1 AND day = $2",
		habitID, day,
	).Scan(&existingID)

	switch {
	case err == sql.ErrNoRows:
		_, err = tx.Exec(`
			INSERT INTO completions (id, habit_id, day, note, created_at)
			VALUES ($1, $2, $3, '', $4)`,
			uuid.NewString(), habitID, day, time.Now().Format(time.RFC3339))
		if err != nil {
			return false, err
		}
		return true, tx.Commit()
	case err != nil:
		return false, err
	default:
		if _, err := tx.Exec("DELETE FROM completions WHERE id = $1", existingID); err != nil {
			return false, err
		}
		return false, tx.Commit()
	}
}

func (s *Store) ReplaceCompletionsForDay(day string, habitIDs []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	want := make(map[string]bool, len(habitIDs))
	for _, id := range habitIDs {
		want[id] = true
	}

	rows, err := tx.Query("SELECT habit_id FROM completions WHERE day = $1", day)
	if err != nil {
		return err
	}
	have := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return err
		}
		have[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for id := range have {
		if !want[id] {
			if _, err := tx.Exec("DELETE FROM completions WHERE habit_id = $1 AND day = $2", id, day); err != nil {
				return err
			}
		}
	}
	for id := range want {
		if !have[id] {
			_, err := tx.Exec(`
				INSERT INTO completions (id, habit_id, day, note, created_at)
				VALUES ($1, $2, $3, '', $4)`,
				uuid.NewString(), id, day, time.Now().Format(time.RFC3339))
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *Store) DeleteCompletion(id string) error {
	result, err := s.db.Exec("DELETE FROM completions WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("completion not found")
	}

	return nil
}
