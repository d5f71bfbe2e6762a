package adherence

import (
	"strconv"
	"strings"
	"time"
)

// DoseLayout es el formato de fecha de calendario usado en registros y celdas.
const DoseLayout = "2006-01-02"

// DoseRecord es una toma registrada o programada, tal como la entrega la capa de datos.
// Todos los campos son texto plano; el agregador nunca falla por un campo mal formado.
type DoseRecord struct {
	Name   string `json:"name"`
	Date   string `json:"date"` // YYYY-MM-DD (también acepta RFC3339)
	Time   string `json:"time"` // HH:MM 24h
	Dose   string `json:"dose"`
	Status string `json:"status"`
}

// Category normaliza el estado del registro.
func (r DoseRecord) Category() Category {
	return NormalizeStatus(r.Status)
}

// LocalDate interpreta Date como día de calendario en loc.
// Una fecha sin hora se toma tal cual (nunca pasa por UTC); un timestamp con offset
// se convierte a loc antes de tomar el día.
func (r DoseRecord) LocalDate(loc *time.Location) (time.Time, bool) {
	return ParseLocalDate(r.Date, loc)
}

// ClockTime devuelve hora y minuto de Time, o ok=false si no es HH:MM válido.
func (r DoseRecord) ClockTime() (hour, minute int, ok bool) {
	return ParseClock(r.Time)
}

var dateOnlyLayouts = []string{
	DoseLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseLocalDate devuelve la medianoche local del día indicado por s.
func ParseLocalDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.In(loc)
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
		}
	}
	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), true
		}
	}
	return time.Time{}, false
}

// ParseClock valida "HH:MM" (hora 0-23, minuto 0-59). Acepta hora de un dígito.
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	if !allDigits(parts[0]) || !allDigits(parts[1]) {
		return 0, 0, false
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ISODate formatea t como YYYY-MM-DD sin cambiar de zona.
func ISODate(t time.Time) string {
	return t.Format(DoseLayout)
}
