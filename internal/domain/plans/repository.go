package plans

import "context"

type Repository interface {
	Create(ctx context.Context, p Plan) error
	GetByID(ctx context.Context, id string) (Plan, error)
	List(ctx context.Context, filter ListFilter) ([]Plan, error)

	// Update reemplaza la toma con p.ID; ErrNotFound si no existe.
	Update(ctx context.Context, p Plan) error
	Delete(ctx context.Context, id string) error
}

// ListFilter: Date vacío => todas las fechas.
type ListFilter struct {
	Date string
}
