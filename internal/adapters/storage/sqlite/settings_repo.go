package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medtrack/internal/domain/settings"
)

type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context) (settings.ReminderSettings, error) {
	var times, method, updatedAt string
	err := r.db.QueryRowContext(ctx, `
		SELECT reminder_times, method, updated_at FROM reminder_settings WHERE id = 1
	`).Scan(&times, &method, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return settings.ReminderSettings{}, settings.ErrNotStored
	}
	if err != nil {
		return settings.ReminderSettings{}, fmt.Errorf("querying settings: %w", err)
	}

	t, err := parseTime(updatedAt)
	if err != nil {
		return settings.ReminderSettings{}, err
	}
	return settings.ReminderSettings{
		ReminderTimes: settings.ReminderTimes(times),
		Method:        settings.Method(method),
		UpdatedAt:     t,
	}, nil
}

func (r *SettingsRepo) Save(ctx context.Context, s settings.ReminderSettings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminder_settings (id, reminder_times, method, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			reminder_times = excluded.reminder_times,
			method = excluded.method,
			updated_at = excluded.updated_at
	`, string(s.ReminderTimes), string(s.Method), formatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
