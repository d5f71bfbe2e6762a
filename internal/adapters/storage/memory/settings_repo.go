package memory

import (
	"context"
	"sync"

	"medtrack/internal/domain/settings"
)

type settingsRepo struct {
	mu  sync.RWMutex
	cur *settings.ReminderSettings
}

func NewSettingsRepo() settings.Repository {
	return &settingsRepo{}
}

func (r *settingsRepo) Get(ctx context.Context) (settings.ReminderSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.cur == nil {
		return settings.ReminderSettings{}, settings.ErrNotStored
	}
	return *r.cur, nil
}

func (r *settingsRepo) Save(ctx context.Context, s settings.ReminderSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cur = &s
	return nil
}
