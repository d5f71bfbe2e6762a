package plans

import "time"

// Plan es una toma programada del plan semanal (lo que muestra la vista de recordatorios).
type Plan struct {
	ID string

	Name string
	Date string // YYYY-MM-DD
	Day  string // Monday..Sunday, derivado de Date si no viene
	Time string // HH:MM
	Dose string

	// Status es texto libre ("Scheduled" al crear); el plan no se agrega en analytics.
	Status string

	CreatedAt time.Time
}
