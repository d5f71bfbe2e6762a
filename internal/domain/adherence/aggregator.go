package adherence

import "time"

// Aggregator agrega el colaborador de reloj/zona horaria a las funciones puras del paquete.
// No guarda estado entre llamadas ni cachea resultados.
type Aggregator struct {
	loc *time.Location
	now func() time.Time
}

// NewAggregator crea un agregador para loc (nil => time.Local).
func NewAggregator(loc *time.Location) *Aggregator {
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{
		loc: loc,
		now: time.Now,
	}
}

// WithClock reemplaza el reloj (tests y reportes de un mes fijo).
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	if now != nil {
		a.now = now
	}
	return a
}

func (a *Aggregator) Location() *time.Location { return a.loc }

// CurrentMonth devuelve año y mes (0-based) actuales en la zona del consumidor.
func (a *Aggregator) CurrentMonth() (year, monthIndex int) {
	t := a.now().In(a.loc)
	return t.Year(), int(t.Month()) - 1
}

func (a *Aggregator) Summarize(records []DoseRecord) Summary {
	return Summarize(records)
}

// ProjectCalendar proyecta el mes pedido; nil en year/monthIndex usa el mes actual.
func (a *Aggregator) ProjectCalendar(records []DoseRecord, year, monthIndex *int) (MonthCalendar, error) {
	y, m := a.CurrentMonth()
	if year != nil {
		y = *year
	}
	if monthIndex != nil {
		m = *monthIndex
	}
	return ProjectCalendar(records, y, m, a.loc)
}

func (a *Aggregator) TimeDistribution(records []DoseRecord) []TimePoint {
	return TimeDistribution(records, a.loc)
}
