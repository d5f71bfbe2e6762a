package postgres

import (
	"context"
	"database/sql"
	"errors"

	"medtrack/internal/domain/settings"
)

// SettingsRepo guarda una única fila (id = 1).
type SettingsRepo struct {
	db *sql.DB
}

func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context) (settings.ReminderSettings, error) {
	var s settings.ReminderSettings
	var times, method string
	err := r.db.QueryRowContext(ctx, `
		SELECT reminder_times, method, updated_at
		FROM reminder_settings
		WHERE id = 1
	`).Scan(&times, &method, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.ReminderSettings{}, settings.ErrNotStored
		}
		return settings.ReminderSettings{}, err
	}
	s.ReminderTimes = settings.ReminderTimes(times)
	s.Method = settings.Method(method)
	return s, nil
}

func (r *SettingsRepo) Save(ctx context.Context, s settings.ReminderSettings) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminder_settings (id, reminder_times, method, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET reminder_times = EXCLUDED.reminder_times,
		    method = EXCLUDED.method,
		    updated_at = EXCLUDED.updated_at
	`, string(s.ReminderTimes), string(s.Method), s.UpdatedAt)
	return err
}
