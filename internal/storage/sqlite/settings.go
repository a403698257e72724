package sqlite

import (
	"fmt"

	apperrors "github.com/julianstephens/groove/internal/errors"
	"github.com/julianstephens/groove/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "timezone":
			settings.Timezone = value
		case "log_days":
			if _, err := fmt.Sscanf(value, "%d", &settings.LogDays); err != nil {
				return models.Settings{}, fmt.Errorf("parsing log_days: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		return models.Settings{}, apperrors.ErrNotFound
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("timezone", settings.Timezone); err != nil {
		return err
	}
	if _, err := stmt.Exec("log_days", fmt.Sprintf("%d", settings.LogDays)); err != nil {
		return err
	}

	return tx.Commit()
}
