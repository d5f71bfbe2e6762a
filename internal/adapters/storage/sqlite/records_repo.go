package sqlite

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
		INSERT INTO medication_records (id, name, date, time, dose, status, source, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Name, rec.Date, rec.Time, rec.Dose, rec.Status, string(rec.Source), formatTime(rec.RecordedAt))
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

func (r *RecordsRepo) GetByID(ctx context.Context, id string) (records.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, date, time, dose, status, source, recorded_at
		FROM medication_records
		WHERE id = ?
	`, strings.TrimSpace(id))

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return records.Record{}, records.ErrNotFound
	}
	return rec, err
}

func (r *RecordsRepo) List(ctx context.Context, filter records.ListFilter) ([]records.Record, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, name, date, time, dose, status, source, recorded_at
		FROM medication_records
		WHERE 1 = 1
	`)
	args := []any{}

	if filter.From != "" {
		sb.WriteString(" AND date >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		sb.WriteString(" AND date <= ?")
		args = append(args, filter.To)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		sb.WriteString(" AND name = ? COLLATE NOCASE")
		args = append(args, name)
	}

	sb.WriteString(" ORDER BY date ASC, time ASC, seq ASC")
	// OFFSET exige LIMIT en sqlite; -1 => sin tope
	switch {
	case filter.Limit > 0:
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, filter.Limit, filter.Offset)
	case filter.Offset > 0:
		sb.WriteString(" LIMIT -1 OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM medication_records WHERE id = ?`, strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return records.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (records.Record, error) {
	var rec records.Record
	var source, recordedAt string
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Date, &rec.Time, &rec.Dose, &rec.Status, &source, &recordedAt); err != nil {
		return records.Record{}, err
	}
	t, err := parseTime(recordedAt)
	if err != nil {
		return records.Record{}, err
	}
	rec.Source = records.Source(source)
	rec.RecordedAt = t
	return rec, nil
}
