package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medtrack/internal/domain/adherence"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound lo devuelven también los repos cuando el id no existe.
	ErrNotFound = errors.New("not found")
)

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

type CreateInput struct {
	Name   string
	Date   string
	Time   string
	Dose   string
	Status string
	Source Source
}

// Create valida el formato de fecha/hora. El estado es texto libre (conjunto abierto):
// lo que no se reconozca queda como Unclassified al agregar.
func (s *Service) Create(ctx context.Context, in CreateInput) (Record, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Record{}, ErrInvalidInput
	}

	date := strings.TrimSpace(in.Date)
	if _, err := time.Parse(adherence.DoseLayout, date); err != nil {
		return Record{}, ErrInvalidInput
	}

	clock := strings.TrimSpace(in.Time)
	if clock != "" {
		h, m, ok := adherence.ParseClock(clock)
		if !ok {
			return Record{}, ErrInvalidInput
		}
		clock = formatClock(h, m)
	}

	src := in.Source
	if src == "" {
		src = SourceManual
	}

	r := Record{
		ID:         uuid.NewString(),
		Name:       name,
		Date:       date,
		Time:       clock,
		Dose:       strings.TrimSpace(in.Dose),
		Status:     strings.TrimSpace(in.Status),
		Source:     src,
		RecordedAt: s.now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return Record{}, err
	}
	return r, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Record{}, ErrInvalidInput
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("get record: %w", err)
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	if filter.Offset < 0 {
		return nil, ErrInvalidInput
	}
	for _, d := range []string{filter.From, filter.To} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(adherence.DoseLayout, d); err != nil {
			return nil, ErrInvalidInput
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}

// Snapshot devuelve todos los registros como DoseRecord, en el orden del repo.
func (s *Service) Snapshot(ctx context.Context) ([]adherence.DoseRecord, error) {
	items, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]adherence.DoseRecord, 0, len(items))
	for _, r := range items {
		out = append(out, r.DoseRecord())
	}
	return out, nil
}

func formatClock(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}
