package plans

import (
	"context"
	"errors"
	"fmt"
	"sort"
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

const (
	// AllDates es el valor de filtro que usa la vista para "sin filtro".
	AllDates = "All"

	// StatusScheduled es el estado de una toma recién agregada al plan.
	StatusScheduled = "Scheduled"
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
	Day    string
	Time   string
	Dose   string
	Status string
}

// UpdateInput reemplaza la toma completa, como el formulario de edición.
// Status vacío conserva el estado guardado.
type UpdateInput CreateInput

func (s *Service) Create(ctx context.Context, in CreateInput) (Plan, error) {
	p, err := normalize(in)
	if err != nil {
		return Plan{}, err
	}
	if p.Status == "" {
		p.Status = StatusScheduled
	}
	p.ID = uuid.NewString()
	p.CreatedAt = s.now()

	if err := s.repo.Create(ctx, p); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Update valida igual que Create y vuelve a derivar Day desde Date.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Plan, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Plan{}, err
	}

	p, err := normalize(CreateInput(in))
	if err != nil {
		return Plan{}, err
	}
	if p.Status == "" {
		p.Status = current.Status
	}
	p.ID = current.ID
	p.CreatedAt = current.CreatedAt

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, fmt.Errorf("update plan: %w", err)
	}
	return p, nil
}

// normalize arma la toma sin ID ni CreatedAt.
func normalize(in CreateInput) (Plan, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Plan{}, ErrInvalidInput
	}

	date, err := time.Parse(adherence.DoseLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return Plan{}, ErrInvalidInput
	}

	h, m, ok := adherence.ParseClock(in.Time)
	if !ok {
		return Plan{}, ErrInvalidInput
	}

	// Day se deriva siempre de Date; si viene y no coincide, es un error del cliente.
	day := date.Weekday().String()
	if v := strings.TrimSpace(in.Day); v != "" && !strings.EqualFold(v, day) {
		return Plan{}, ErrInvalidInput
	}

	return Plan{
		Name:   name,
		Date:   date.Format(adherence.DoseLayout),
		Day:    day,
		Time:   fmt.Sprintf("%02d:%02d", h, m),
		Dose:   strings.TrimSpace(in.Dose),
		Status: strings.TrimSpace(in.Status),
	}, nil
}

// List filtra por fecha exacta. "" o "All" devuelven todo.
func (s *Service) List(ctx context.Context, date string) ([]Plan, error) {
	date = strings.TrimSpace(date)
	if strings.EqualFold(date, AllDates) {
		date = ""
	}
	if date != "" {
		if _, err := time.Parse(adherence.DoseLayout, date); err != nil {
			return nil, ErrInvalidInput
		}
	}
	return s.repo.List(ctx, ListFilter{Date: date})
}

// Dates devuelve las fechas distintas con planes, ascendente (opciones del selector).
func (s *Service) Dates(ctx context.Context) ([]string, error) {
	items, err := s.repo.List(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range items {
		if _, ok := seen[p.Date]; ok {
			continue
		}
		seen[p.Date] = struct{}{}
		out = append(out, p.Date)
	}
	sort.Strings(out)
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Plan{}, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Plan{}, ErrNotFound
		}
		return Plan{}, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
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
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
