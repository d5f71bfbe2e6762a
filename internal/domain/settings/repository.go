package settings

import (
	"context"
	"errors"
)

// ErrNotStored lo devuelve Get cuando todavía no se guardó nada.
var ErrNotStored = errors.New("settings not stored")

type Repository interface {
	Get(ctx context.Context) (ReminderSettings, error)
	Save(ctx context.Context, s ReminderSettings) error
}
