package adherence

import (
	"fmt"
	"time"
)

// DayCell es el resumen de un día del calendario mensual.
// Invariante: RecordCount == len(Records).
type DayCell struct {
	ISODate        string       `json:"date"`
	Day            int          `json:"day"`
	DominantStatus Category     `json:"status"`
	RecordCount    int          `json:"count"`
	Records        []DoseRecord `json:"records"`
	Tally          StatusTally  `json:"tally"`
}

// MonthCalendar es la proyección de un mes. FirstWeekdayOffset (0=domingo) es la
// cantidad de celdas vacías antes del día 1 en una grilla de 7 columnas.
type MonthCalendar struct {
	Year               int       `json:"year"`
	MonthIndex         int       `json:"month_index"` // 0-based
	DaysInMonth        int       `json:"days_in_month"`
	FirstWeekdayOffset int       `json:"first_weekday_offset"`
	Days               []DayCell `json:"days"`
}

// DaysInMonth devuelve el último día del mes (monthIndex 0-based).
func DaysInMonth(year, monthIndex int) (int, error) {
	if err := validateMonth(year, monthIndex); err != nil {
		return 0, err
	}
	return time.Date(year, time.Month(monthIndex+2), 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// FirstWeekday devuelve el día de la semana del día 1 (0=domingo..6=sábado).
func FirstWeekday(year, monthIndex int) (int, error) {
	if err := validateMonth(year, monthIndex); err != nil {
		return 0, err
	}
	return int(time.Date(year, time.Month(monthIndex+1), 1, 0, 0, 0, 0, time.UTC).Weekday()), nil
}

func validateMonth(year, monthIndex int) error {
	if monthIndex < 0 || monthIndex > 11 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonthIndex, monthIndex)
	}
	if year < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidYear, year)
	}
	return nil
}

// ProjectCalendar agrupa records por día local del mes pedido.
//
// Cada día usa precedencia "peor primero": Missed > Late > OnTime > None. Un solo
// registro Missed marca el día como Missed aunque haya otros a tiempo. Los registros con
// fecha ilegible no caen en ninguna celda; los Unclassified cuentan en RecordCount pero
// no cambian el estado dominante.
func ProjectCalendar(records []DoseRecord, year, monthIndex int, loc *time.Location) (MonthCalendar, error) {
	days, err := DaysInMonth(year, monthIndex)
	if err != nil {
		return MonthCalendar{}, err
	}
	offset, err := FirstWeekday(year, monthIndex)
	if err != nil {
		return MonthCalendar{}, err
	}
	if loc == nil {
		loc = time.Local
	}

	// índice por fecha local, preservando el orden relativo original
	byDate := make(map[string][]DoseRecord)
	for _, r := range records {
		d, ok := r.LocalDate(loc)
		if !ok {
			continue
		}
		if d.Year() != year || int(d.Month()) != monthIndex+1 {
			continue
		}
		key := ISODate(d)
		byDate[key] = append(byDate[key], r)
	}

	cells := make([]DayCell, 0, days)
	for day := 1; day <= days; day++ {
		iso := fmt.Sprintf("%04d-%02d-%02d", year, monthIndex+1, day)
		dayRecords := byDate[iso]
		if dayRecords == nil {
			dayRecords = []DoseRecord{}
		}

		cells = append(cells, DayCell{
			ISODate:        iso,
			Day:            day,
			DominantStatus: dominantStatus(dayRecords),
			RecordCount:    len(dayRecords),
			Records:        dayRecords,
			Tally:          Tally(dayRecords),
		})
	}

	return MonthCalendar{
		Year:               year,
		MonthIndex:         monthIndex,
		DaysInMonth:        days,
		FirstWeekdayOffset: offset,
		Days:               cells,
	}, nil
}

func dominantStatus(records []DoseRecord) Category {
	out := CategoryNone
	for _, r := range records {
		c := r.Category()
		if c.rank() > out.rank() {
			out = c
		}
		if out == CategoryMissed {
			break
		}
	}
	return out
}

// DailyRates devuelve la tasa de adherencia por día (0 en días sin registros),
// útil para graficar la evolución del mes.
func (m MonthCalendar) DailyRates() []float64 {
	out := make([]float64, 0, len(m.Days))
	for _, d := range m.Days {
		out = append(out, float64(AdherenceRate(d.Tally, d.RecordCount)))
	}
	return out
}
