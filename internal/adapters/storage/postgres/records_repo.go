package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"medtrack/internal/domain/records"
)

type RecordsRepo struct {
	db *sql.DB
}

func NewRecordsRepo(db *sql.DB) *RecordsRepo {
	return &RecordsRepo{db: db}
}

func (r *RecordsRepo) Create(ctx context.Context, rec records.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medication_records (
			id, name, date, time, dose, status, source, recorded_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rec.ID,
		rec.Name,
		rec.Date,
		rec.Time,
		rec.Dose,
		rec.Status,
		string(rec.Source),
		rec.RecordedAt,
	)
	return err
}

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (records.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return records.Record{}, records.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, date, time, dose, status, source, recorded_at
		FROM medication_records
		WHERE id = $1
	`, id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return records.Record{}, records.ErrNotFound
		}
		return records.Record{}, err
	}
	return rec, nil
}

func (r *RecordsRepo) List(ctx context.Context, filter records.ListFilter) ([]records.Record, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT id, name, date, time, dose, status, source, recorded_at
		FROM medication_records
		WHERE TRUE
	`)

	args := []any{}
	argN := 1

	// date es TEXT YYYY-MM-DD: el orden lexicográfico coincide con el cronológico
	if filter.From != "" {
		sb.WriteString(fmt.Sprintf(" AND date >= $%d", argN))
		args = append(args, filter.From)
		argN++
	}
	if filter.To != "" {
		sb.WriteString(fmt.Sprintf(" AND date <= $%d", argN))
		args = append(args, filter.To)
		argN++
	}
	if strings.TrimSpace(filter.Name) != "" {
		sb.WriteString(fmt.Sprintf(" AND LOWER(name) = LOWER($%d)", argN))
		args = append(args, strings.TrimSpace(filter.Name))
		argN++
	}

	sb.WriteString(" ORDER BY date ASC, time ASC, seq ASC")
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
		argN++
	}
	if filter.Offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", argN))
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]records.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return records.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM medication_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return records.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (records.Record, error) {
	var rec records.Record
	var source string
	if err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Date,
		&rec.Time,
		&rec.Dose,
		&rec.Status,
		&source,
		&rec.RecordedAt,
	); err != nil {
		return records.Record{}, err
	}
	rec.Source = records.Source(source)
	return rec, nil
}
