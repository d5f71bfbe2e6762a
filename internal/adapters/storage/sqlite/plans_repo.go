package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"medtrack/internal/domain/plans"
)

type PlansRepo struct {
	db *sql.DB
}

func NewPlansRepo(db *sql.DB) *PlansRepo {
	return &PlansRepo{db: db}
}

func (r *PlansRepo) Create(ctx context.Context, p plans.Plan) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO weekly_plans (id, name, date, day, time, dose, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.Date, p.Day, p.Time, p.Dose, p.Status, formatTime(p.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

func (r *PlansRepo) GetByID(ctx context.Context, id string) (plans.Plan, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, date, day, time, dose, status, created_at
		FROM weekly_plans
		WHERE id = ?
	`, strings.TrimSpace(id))

	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return plans.Plan{}, plans.ErrNotFound
	}
	return p, err
}

func (r *PlansRepo) List(ctx context.Context, filter plans.ListFilter) ([]plans.Plan, error) {
	query := `
		SELECT id, name, date, day, time, dose, status, created_at
		FROM weekly_plans
	`
	args := []any{}
	if filter.Date != "" {
		query += " WHERE date = ?"
		args = append(args, filter.Date)
	}
	query += " ORDER BY date ASC, time ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	out := make([]plans.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PlansRepo) Update(ctx context.Context, p plans.Plan) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE weekly_plans
		SET name = ?, date = ?, day = ?, time = ?, dose = ?, status = ?
		WHERE id = ?
	`, p.Name, p.Date, p.Day, p.Time, p.Dose, p.Status, p.ID)
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return plans.ErrNotFound
	}
	return nil
}

func (r *PlansRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weekly_plans WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return plans.ErrNotFound
	}
	return nil
}

func scanPlan(row rowScanner) (plans.Plan, error) {
	var p plans.Plan
	var createdAt string
	if err := row.Scan(&p.ID, &p.Name, &p.Date, &p.Day, &p.Time, &p.Dose, &p.Status, &createdAt); err != nil {
		return plans.Plan{}, err
	}
	t, err := parseTime(createdAt)
	if err != nil {
		return plans.Plan{}, err
	}
	p.CreatedAt = t
	return p, nil
}
