package postgres

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS medication_records (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	date        TEXT NOT NULL,
	time        TEXT NOT NULL DEFAULT '',
	dose        TEXT NOT NULL DEFAULT '',
	status      TEXT NOT NULL DEFAULT '',
	source      TEXT NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL,
	seq         BIGSERIAL
);
CREATE INDEX IF NOT EXISTS idx_medication_records_date ON medication_records(date, time);

CREATE TABLE IF NOT EXISTS weekly_plans (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	date       TEXT NOT NULL,
	day        TEXT NOT NULL,
	time       TEXT NOT NULL,
	dose       TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_weekly_plans_date ON weekly_plans(date);

CREATE TABLE IF NOT EXISTS reminder_settings (
	id             SMALLINT PRIMARY KEY CHECK (id = 1),
	reminder_times TEXT NOT NULL,
	method         TEXT NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);
`

// EnsureSchema crea las tablas si no existen (idempotente).
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
