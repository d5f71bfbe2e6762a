package postgres

import (
	"context"
	"database/sql"
	"errors"
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
		INSERT INTO weekly_plans (
			id, name, date, day, time, dose, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		p.ID, p.Name, p.Date, p.Day, p.Time, p.Dose, p.Status, p.CreatedAt,
	)
	return err
}

func (r *PlansRepo) GetByID(ctx context.Context, id string) (plans.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return plans.Plan{}, plans.ErrNotFound
	}

	var p plans.Plan
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, date, day, time, dose, status, created_at
		FROM weekly_plans
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Date, &p.Day, &p.Time, &p.Dose, &p.Status, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return plans.Plan{}, plans.ErrNotFound
		}
		return plans.Plan{}, err
	}
	return p, nil
}

func (r *PlansRepo) List(ctx context.Context, filter plans.ListFilter) ([]plans.Plan, error) {
	query := `
		SELECT id, name, date, day, time, dose, status, created_at
		FROM weekly_plans
	`
	args := []any{}
	if filter.Date != "" {
		query += " WHERE date = $1"
		args = append(args, filter.Date)
	}
	query += " ORDER BY date ASC, time ASC, created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]plans.Plan, 0)
	for rows.Next() {
		var p plans.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.Date, &p.Day, &p.Time, &p.Dose, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PlansRepo) Update(ctx context.Context, p plans.Plan) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE weekly_plans
		SET name = $2, date = $3, day = $4, time = $5, dose = $6, status = $7
		WHERE id = $1
	`, p.ID, p.Name, p.Date, p.Day, p.Time, p.Dose, p.Status)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return plans.ErrNotFound
	}
	return nil
}

func (r *PlansRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM weekly_plans WHERE id = $1`, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return plans.ErrNotFound
	}
	return nil
}
