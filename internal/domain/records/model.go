package records

import (
	"time"

	"medtrack/internal/domain/adherence"
)

// Source indica quién registró la toma.
// @Enum manual, dispenser, import
type Source string

const (
	SourceManual    Source = "manual"
	SourceDispenser Source = "dispenser"
	SourceImport    Source = "import"
)

// Record es una toma registrada (colección medicationRecords).
type Record struct {
	ID string

	Name   string
	Date   string // YYYY-MM-DD
	Time   string // HH:MM
	Dose   string
	Status string // texto libre, se normaliza al agregar

	Source     Source
	RecordedAt time.Time
}

// DoseRecord convierte el registro al valor que consume el agregador.
func (r Record) DoseRecord() adherence.DoseRecord {
	return adherence.DoseRecord{
		Name:   r.Name,
		Date:   r.Date,
		Time:   r.Time,
		Dose:   r.Dose,
		Status: r.Status,
	}
}
