package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"medtrack/internal/domain/plans"
)

type planRepo struct {
	mu   sync.RWMutex
	byID map[string]plans.Plan
}

func NewPlanRepo() plans.Repository {
	return &planRepo{
		byID: make(map[string]plans.Plan),
	}
}

func (r *planRepo) Create(ctx context.Context, p plans.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == "" {
		return errors.New("plan id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return ErrAlreadyExists
	}
	r.byID[p.ID] = p
	return nil
}

func (r *planRepo) GetByID(ctx context.Context, id string) (plans.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return plans.Plan{}, plans.ErrNotFound
	}
	return p, nil
}

func (r *planRepo) List(ctx context.Context, filter plans.ListFilter) ([]plans.Plan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]plans.Plan, 0)
	for _, p := range r.byID {
		if filter.Date != "" && p.Date != filter.Date {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *planRepo) Update(ctx context.Context, p plans.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return plans.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *planRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return plans.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
