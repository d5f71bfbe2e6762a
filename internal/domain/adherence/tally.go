package adherence

import "math"

// StatusTally cuenta registros por categoría. Es un valor: se recalcula en cada llamada.
// Invariante: OnTime + Late + Missed + Unclassified == cantidad de registros contados.
type StatusTally struct {
	OnTime       int `json:"on_time"`
	Late         int `json:"late"`
	Missed       int `json:"missed"`
	Unclassified int `json:"unclassified"`
}

// Tally cuenta los registros por categoría normalizada.
// El resultado no depende del orden de records.
func Tally(records []DoseRecord) StatusTally {
	var t StatusTally
	for _, r := range records {
		t = t.add(r.Category())
	}
	return t
}

func (t StatusTally) add(c Category) StatusTally {
	switch c {
	case CategoryOnTime:
		t.OnTime++
	case CategoryLate:
		t.Late++
	case CategoryMissed:
		t.Missed++
	default:
		t.Unclassified++
	}
	return t
}

// Total suma todas las categorías, incluida Unclassified.
func (t StatusTally) Total() int {
	return t.OnTime + t.Late + t.Missed + t.Unclassified
}

// Count devuelve el contador de una categoría (None siempre es 0).
func (t StatusTally) Count(c Category) int {
	switch c {
	case CategoryOnTime:
		return t.OnTime
	case CategoryLate:
		return t.Late
	case CategoryMissed:
		return t.Missed
	case CategoryUnclassified:
		return t.Unclassified
	default:
		return 0
	}
}

// AdherenceRate devuelve el porcentaje entero [0,100] de tomas a tiempo sobre total.
//
// total <= 0 devuelve 0. El redondeo es math.Round (mitad hacia afuera del cero):
// 1/8 => 12.5 => 13. "taken" ya cuenta como OnTime vía NormalizeStatus.
func AdherenceRate(t StatusTally, total int) int {
	if total <= 0 {
		return 0
	}
	onTime := t.OnTime
	if onTime <= 0 {
		return 0
	}
	if onTime >= total {
		return 100
	}
	return int(math.Round(100 * float64(onTime) / float64(total)))
}

// Summary agrupa lo que muestra el anillo de adherencia del dashboard.
type Summary struct {
	Tally StatusTally `json:"tally"`
	Total int         `json:"total"`
	Rate  int         `json:"adherence_rate"`
}

// Summarize calcula tally, total y tasa sobre records.
func Summarize(records []DoseRecord) Summary {
	t := Tally(records)
	return Summary{
		Tally: t,
		Total: len(records),
		Rate:  AdherenceRate(t, len(records)),
	}
}
