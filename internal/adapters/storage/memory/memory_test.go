package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"medtrack/internal/domain/plans"
	"medtrack/internal/domain/records"
	"medtrack/internal/domain/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepo_ListOrderAndFilters(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()

	for _, rec := range []records.Record{
		{ID: "3", Name: "B", Date: "2024-03-02", Time: "08:00"},
		{ID: "1", Name: "A", Date: "2024-03-01", Time: "20:00"},
		{ID: "2", Name: "a", Date: "2024-03-01", Time: "08:00"},
		{ID: "4", Name: "A", Date: "2024-03-01", Time: "08:00"},
	} {
		require.NoError(t, repo.Create(ctx, rec))
	}

	all, err := repo.List(ctx, records.ListFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, r := range all {
		ids = append(ids, r.ID)
	}
	// empate 08:00 conserva orden de inserción
	assert.Equal(t, []string{"2", "4", "1", "3"}, ids)

	byName, err := repo.List(ctx, records.ListFilter{Name: "A", To: "2024-03-01"})
	require.NoError(t, err)
	assert.Len(t, byName, 3)

	limited, err := repo.List(ctx, records.ListFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRecordRepo_DuplicateAndDelete(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, records.Record{ID: "1", Date: "2024-03-01"}))
	assert.True(t, errors.Is(repo.Create(ctx, records.Record{ID: "1"}), ErrAlreadyExists))

	require.NoError(t, repo.Delete(ctx, "1"))
	assert.True(t, errors.Is(repo.Delete(ctx, "1"), records.ErrNotFound))

	all, err := repo.List(ctx, records.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecordRepo_ConcurrentCreate(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, records.Record{ID: string(rune('A' + i)), Date: "2024-03-01"})
		}(i)
	}
	wg.Wait()

	all, err := repo.List(ctx, records.ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 50)
}

func TestPlanRepo_FilterByDate(t *testing.T) {
	repo := NewPlanRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, plans.Plan{ID: "1", Date: "2024-03-05", Time: "20:00"}))
	require.NoError(t, repo.Create(ctx, plans.Plan{ID: "2", Date: "2024-03-05", Time: "08:00"}))
	require.NoError(t, repo.Create(ctx, plans.Plan{ID: "3", Date: "2024-03-04", Time: "08:00"}))

	got, err := repo.List(ctx, plans.ListFilter{Date: "2024-03-05"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)

	_, err = repo.GetByID(ctx, "nope")
	assert.True(t, errors.Is(err, plans.ErrNotFound))
}

func TestSettingsRepo_NotStoredThenSaved(t *testing.T) {
	repo := NewSettingsRepo()
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.True(t, errors.Is(err, settings.ErrNotStored))

	require.NoError(t, repo.Save(ctx, settings.ReminderSettings{ReminderTimes: settings.TimesMorning, Method: settings.MethodPush}))
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.TimesMorning, got.ReminderTimes)
}

func TestRecordRepo_ListOffset(t *testing.T) {
	repo := NewRecordRepo()
	ctx := context.Background()

	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, repo.Create(ctx, records.Record{ID: id, Date: "2024-03-0" + map[string]string{"a": "1", "b": "2", "c": "3"}[id]}))
	}

	page, err := repo.List(ctx, records.ListFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].ID)
	assert.Equal(t, "c", page[1].ID)

	past, err := repo.List(ctx, records.ListFilter{Offset: 3})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestPlanRepo_Update(t *testing.T) {
	repo := NewPlanRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, plans.Plan{ID: "1", Date: "2024-03-04", Day: "Monday"}))
	require.NoError(t, repo.Update(ctx, plans.Plan{ID: "1", Date: "2024-03-05", Day: "Tuesday"}))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Tuesday", got.Day)

	assert.True(t, errors.Is(repo.Update(ctx, plans.Plan{ID: "2"}), plans.ErrNotFound))
}
