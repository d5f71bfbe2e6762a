package adherence

import "time"

// TimePoint es un punto del gráfico "hora de toma por día".
type TimePoint struct {
	Name     string   `json:"name"`
	Date     string   `json:"date"`
	Hour     float64  `json:"hour"` // hora + minuto/60, en [0,24)
	Category Category `json:"status"`
	Status   string   `json:"raw_status"`
}

// TimeDistribution proyecta cada registro a (día, hora decimal).
// Los registros sin fecha u hora válidas se excluyen; no abortan el resto.
func TimeDistribution(records []DoseRecord, loc *time.Location) []TimePoint {
	if loc == nil {
		loc = time.Local
	}

	out := make([]TimePoint, 0, len(records))
	for _, r := range records {
		d, ok := r.LocalDate(loc)
		if !ok {
			continue
		}
		h, m, ok := r.ClockTime()
		if !ok {
			continue
		}
		out = append(out, TimePoint{
			Name:     r.Name,
			Date:     ISODate(d),
			Hour:     float64(h) + float64(m)/60,
			Category: r.Category(),
			Status:   r.Status,
		})
	}
	return out
}
