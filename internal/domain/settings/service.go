package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Get devuelve las preferencias guardadas o los valores por defecto.
func (s *Service) Get(ctx context.Context) (ReminderSettings, error) {
	cur, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotStored) {
			return Defaults(), nil
		}
		return ReminderSettings{}, err
	}
	return cur, nil
}

// UpdateInput: nil => no se modifica.
type UpdateInput struct {
	ReminderTimes *string
	Method        *string
}

// Update aplica un cambio parcial. Valores fuera del conjunto permitido se rechazan enteros
// (no se guarda nada si un campo es inválido).
func (s *Service) Update(ctx context.Context, in UpdateInput) (ReminderSettings, error) {
	cur, err := s.Get(ctx)
	if err != nil {
		return ReminderSettings{}, err
	}

	if in.ReminderTimes != nil {
		t := ReminderTimes(strings.ToLower(strings.TrimSpace(*in.ReminderTimes)))
		if !t.Valid() {
			return ReminderSettings{}, fmt.Errorf("%w: reminder_times %q", ErrInvalidInput, *in.ReminderTimes)
		}
		cur.ReminderTimes = t
	}

	if in.Method != nil {
		m := Method(strings.ToLower(strings.TrimSpace(*in.Method)))
		if !m.Valid() {
			return ReminderSettings{}, fmt.Errorf("%w: method %q", ErrInvalidInput, *in.Method)
		}
		cur.Method = m
	}

	cur.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, cur); err != nil {
		return ReminderSettings{}, err
	}
	return cur, nil
}
