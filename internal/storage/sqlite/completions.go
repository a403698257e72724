package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
)

// UpsertCompletion adjusts the completion counter for (habitID, day) by delta
// inside a single transaction. The row is removed once the count drops to
// zero so a day with no completions has no record at all.
func (s *Store) UpsertCompletion(habitID, day string, delta int) (models.Completion, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Completion{}, err
	}
	defer tx.Rollback()

	var count int
	var createdAt string
	err = tx.QueryRow(
		"SELECT count, created_at FROM completions WHERE habit_id = ? AND day = ?",
		habitID, day,
	).Scan(&count, &createdAt)

	now := time.Now().UTC().Format(time.RFC3339)

	if errors.Is(err, sql.ErrNoRows) {
		if delta < 0 {
			return models.Completion{}, fmt.Errorf("no completion for habit %s on %s: %w", habitID, day, apperrors.ErrNotFound)
		}
		count = 0
		createdAt = now
	} else if err != nil {
		return models.Completion{}, err
	}

	newCount := count + delta
	if newCount < 0 {
		newCount = 0
	}

	if newCount == 0 {
		if _, err := tx.Exec("DELETE FROM completions WHERE habit_id = ? AND day = ?", habitID, day); err != nil {
			return models.Completion{}, err
		}
		if err := tx.Commit(); err != nil {
			return models.Completion{}, err
		}
		return models.Completion{HabitID: habitID, Day: day, Count: 0}, nil
	}

	_, err = tx.Exec(`
		INSERT INTO completions (habit_id, day, count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			count = excluded.count,
			updated_at = excluded.updated_at`,
		habitID, day, newCount, createdAt, now)
	if err != nil {
		return models.Completion{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Completion{}, err
	}

	created, _ := time.Parse(time.RFC3339, createdAt)
	updated, _ := time.Parse(time.RFC3339, now)
	return models.Completion{
		HabitID:   habitID,
		Day:       day,
		Count:     newCount,
		CreatedAt: created,
		UpdatedAt: updated,
	}, nil
}

func (s *Store) GetCompletion(habitID, day string) (models.Completion, error) {
	row := s.db.QueryRow(`
		SELECT habit_id, day, count, created_at, updated_at
		FROM completions WHERE habit_id = ? AND day = ?`, habitID, day)

	c, err := scanCompletion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Completion{}, fmt.Errorf("no completion for habit %s on %s: %w", habitID, day, apperrors.ErrNotFound)
		}
		return models.Completion{}, err
	}
	return c, nil
}

func (s *Store) GetCompletionsForHabit(habitID, startDay, endDay string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT habit_id, day, count, created_at, updated_at
		FROM completions WHERE habit_id = ? AND day >= ? AND day <= ? ORDER BY day`,
		habitID, startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCompletions(rows)
}

func (s *Store) GetCompletionsForDay(day string) ([]models.Completion, error) {
	rows, err := s.db.Query(`
		SELECT habit_id, day, count, created_at, updated_at
		FROM completions WHERE day = ? ORDER BY habit_id`, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectCompletions(rows)
}

func (s *Store) HasCompletions(habitID string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT count(*) FROM completions WHERE habit_id = ?", habitID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func scanCompletion(row rowScanner) (models.Completion, error) {
	var c models.Completion
	var createdAt, updatedAt string

	if err := row.Scan(&c.HabitID, &c.Day, &c.Count, &createdAt, &updatedAt); err != nil {
		return models.Completion{}, err
	}

	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to parse created_at for completion %s/%s: %w", c.HabitID, c.Day, err)
	}
	c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to parse updated_at for completion %s/%s: %w", c.HabitID, c.Day, err)
	}

	return c, nil
}

func collectCompletions(rows *sql.Rows) ([]models.Completion, error) {
	var completions []models.Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	return completions, rows.Err()
}
