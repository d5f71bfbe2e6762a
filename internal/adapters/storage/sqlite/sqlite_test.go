package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"medtrack/internal/domain/plans"
	"medtrack/internal/domain/records"
	"medtrack/internal/domain/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "data", "medtrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_IsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medtrack.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestRecordsRepo_RoundTripAndOrder(t *testing.T) {
	repo := NewRecordsRepo(openTestDB(t))
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 8, 0, 0, 123, time.UTC)

	for _, rec := range []records.Record{
		{ID: "b", Name: "B", Date: "2024-03-02", Time: "08:00", Source: records.SourceManual, RecordedAt: at},
		{ID: "a1", Name: "Aspirin", Date: "2024-03-01", Time: "08:00", Status: "On time", Source: records.SourceDispenser, RecordedAt: at},
		{ID: "a2", Name: "aspirin", Date: "2024-03-01", Time: "08:00", Status: "Late", Source: records.SourceImport, RecordedAt: at},
	} {
		require.NoError(t, repo.Create(ctx, rec))
	}

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, records.SourceDispenser, got.Source)
	assert.True(t, at.Equal(got.RecordedAt))

	all, err := repo.List(ctx, records.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a1", "a2", "b"}, []string{all[0].ID, all[1].ID, all[2].ID})

	byName, err := repo.List(ctx, records.ListFilter{Name: "ASPIRIN", From: "2024-03-01", To: "2024-03-01", Limit: 5})
	require.NoError(t, err)
	assert.Len(t, byName, 2)
}

func TestRecordsRepo_DeleteAndNotFound(t *testing.T) {
	repo := NewRecordsRepo(openTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, records.Record{ID: "x", Name: "A", Date: "2024-03-01", Source: records.SourceManual}))
	require.NoError(t, repo.Delete(ctx, "x"))

	assert.True(t, errors.Is(repo.Delete(ctx, "x"), records.ErrNotFound))
	_, err := repo.GetByID(ctx, "x")
	assert.True(t, errors.Is(err, records.ErrNotFound))
}

func TestPlansRepo_ListByDate(t *testing.T) {
	repo := NewPlansRepo(openTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, plans.Plan{ID: "1", Name: "A", Date: "2024-03-04", Day: "Monday", Time: "20:00", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, plans.Plan{ID: "2", Name: "B", Date: "2024-03-04", Day: "Monday", Time: "08:00", CreatedAt: now}))
	require.NoError(t, repo.Create(ctx, plans.Plan{ID: "3", Name: "C", Date: "2024-03-05", Day: "Tuesday", Time: "08:00", CreatedAt: now}))

	got, err := repo.List(ctx, plans.ListFilter{Date: "2024-03-04"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)

	assert.True(t, errors.Is(repo.Delete(ctx, "nope"), plans.ErrNotFound))
}

func TestSettingsRepo_Upsert(t *testing.T) {
	repo := NewSettingsRepo(openTestDB(t))
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.True(t, errors.Is(err, settings.ErrNotStored))

	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, settings.ReminderSettings{ReminderTimes: settings.TimesMorning, Method: settings.MethodPush, UpdatedAt: now}))
	require.NoError(t, repo.Save(ctx, settings.ReminderSettings{ReminderTimes: settings.TimesEvening, Method: settings.MethodPush, UpdatedAt: now}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.TimesEvening, got.ReminderTimes)
	assert.True(t, now.Equal(got.UpdatedAt))
}

func TestRecordsRepo_ListOffset(t *testing.T) {
	repo := NewRecordsRepo(openTestDB(t))
	ctx := context.Background()

	for i, date := range []string{"2024-03-03", "2024-03-01", "2024-03-02"} {
		require.NoError(t, repo.Create(ctx, records.Record{ID: string(rune('a' + i)), Name: "A", Date: date, Source: records.SourceManual}))
	}

	page, err := repo.List(ctx, records.ListFilter{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "2024-03-02", page[0].Date)

	rest, err := repo.List(ctx, records.ListFilter{Offset: 2})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "2024-03-03", rest[0].Date)
}

func TestPlansRepo_Update(t *testing.T) {
	repo := NewPlansRepo(openTestDB(t))
	ctx := context.Background()
	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, plans.Plan{ID: "1", Name: "A", Date: "2024-03-04", Day: "Monday", Time: "08:00", Status: "Scheduled", CreatedAt: created}))
	require.NoError(t, repo.Update(ctx, plans.Plan{ID: "1", Name: "A", Date: "2024-03-08", Day: "Friday", Time: "09:00", Status: "Taken"}))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Friday", got.Day)
	assert.Equal(t, "Taken", got.Status)
	assert.True(t, created.Equal(got.CreatedAt))

	assert.True(t, errors.Is(repo.Update(ctx, plans.Plan{ID: "nope"}), plans.ErrNotFound))
}
