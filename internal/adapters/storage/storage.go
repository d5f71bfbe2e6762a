// Package storage elige el backend de persistencia: Postgres, SQLite o memoria.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	mem "medtrack/internal/adapters/storage/memory"
	pg "medtrack/internal/adapters/storage/postgres"
	lite "medtrack/internal/adapters/storage/sqlite"
	"medtrack/internal/domain/plans"
	"medtrack/internal/domain/records"
	"medtrack/internal/domain/settings"
	"medtrack/internal/platform/config"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Stores agrupa los repos de un mismo backend. Router, ingest y CLI comparten la misma instancia.
type Stores struct {
	Backend string

	Records  records.Repository
	Plans    plans.Repository
	Settings settings.Repository

	db *sql.DB
}

func Memory() *Stores {
	return &Stores{
		Backend:  BackendMemory,
		Records:  mem.NewRecordRepo(),
		Plans:    mem.NewPlanRepo(),
		Settings: mem.NewSettingsRepo(),
	}
}

func Postgres(db *sql.DB) *Stores {
	return &Stores{
		Backend:  BackendPostgres,
		Records:  pg.NewRecordsRepo(db),
		Plans:    pg.NewPlansRepo(db),
		Settings: pg.NewSettingsRepo(db),
		db:       db,
	}
}

func SQLite(db *sql.DB) *Stores {
	return &Stores{
		Backend:  BackendSQLite,
		Records:  lite.NewRecordsRepo(db),
		Plans:    lite.NewPlansRepo(db),
		Settings: lite.NewSettingsRepo(db),
		db:       db,
	}
}

// Open: DSN de Postgres tiene prioridad, luego archivo SQLite, y si no hay nada, memoria.
func Open(ctx context.Context, cfg config.StorageConfig) (*Stores, error) {
	if dsn := strings.TrimSpace(cfg.PostgresDSN); dsn != "" {
		db, err := pg.Open(dsn)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("postgres schema: %w", err)
		}
		return Postgres(db), nil
	}

	if path := strings.TrimSpace(cfg.SQLitePath); path != "" {
		db, err := lite.Open(path)
		if err != nil {
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		return SQLite(db), nil
	}

	return Memory(), nil
}

func (s *Stores) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
