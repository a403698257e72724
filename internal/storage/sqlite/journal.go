package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
)

func (s *Store) GetJournalEntry(day string) (models.JournalEntry, error) {
	row := s.db.QueryRow(`
		SELECT day, content, mood, created_at, updated_at
		FROM journal_entries WHERE day = ?`, day)

	e, err := scanJournalEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.JournalEntry{}, fmt.Errorf("no journal entry for %s: %w", day, apperrors.ErrNotFound)
		}
		return models.JournalEntry{}, err
	}
	return e, nil
}

func (s *Store) GetJournalEntries(startDay, endDay string) ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT day, content, mood, created_at, updated_at
		FROM journal_entries WHERE day >= ? AND day <= ? ORDER BY day`,
		startDay, endDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) UpsertJournalEntry(entry models.JournalEntry) error {
	now := time.Now().UTC()
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := s.db.Exec(`
		INSERT INTO journal_entries (day, content, mood, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET
			content = excluded.content,
			mood = excluded.mood,
			updated_at = excluded.updated_at`,
		entry.Day, entry.Content, string(entry.Mood),
		createdAt.Format(time.RFC3339), now.Format(time.RFC3339))
	return err
}

func (s *Store) DeleteJournalEntry(day string) error {
	result, err := s.db.Exec("DELETE FROM journal_entries WHERE day = ?", day)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("no journal entry for %s: %w", day, apperrors.ErrNotFound)
	}

	return nil
}

func scanJournalEntry(row rowScanner) (models.JournalEntry, error) {
	var e models.JournalEntry
	var mood, createdAt, updatedAt string

	if err := row.Scan(&e.Day, &e.Content, &mood, &createdAt, &updatedAt); err != nil {
		return models.JournalEntry{}, err
	}

	e.Mood = models.Mood(mood)

	var err error
	e.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to parse created_at for journal entry %s: %w", e.Day, err)
	}
	e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to parse updated_at for journal entry %s: %w", e.Day, err)
	}

	return e, nil
}
