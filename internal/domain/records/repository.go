package records

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) error
	GetByID(ctx context.Context, id string) (Record, error)
	List(ctx context.Context, filter ListFilter) ([]Record, error)
	Delete(ctx context.Context, id string) error
}

// ListFilter: From/To son fechas YYYY-MM-DD inclusivas. Limit <= 0 => sin límite.
// Offset salta registros del orden (fecha, hora) para paginar.
type ListFilter struct {
	From   string
	To     string
	Name   string
	Limit  int
	Offset int
}
