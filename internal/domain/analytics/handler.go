package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"medtrack/internal/domain/adherence"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/analytics", func(ar chi.Router) {
		ar.Get("/summary", summaryHandler(svc))
		ar.Get("/calendar", calendarHandler(svc))
		ar.Get("/distribution", distributionHandler(svc))
		ar.Get("/dashboard", dashboardHandler(svc))
	})
}

// summaryHandler godoc
// @Summary Resumen de adherencia
// @Description Conteo por categoría y tasa de adherencia (% a tiempo, entero 0-100) sobre todas las tomas.
// @Tags analytics
// @Produce json
// @Success 200 {object} adherence.Summary
// @Failure 500 {string} string "internal error"
// @Router /analytics/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Summary(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// calendarHandler godoc
// @Summary Calendario mensual
// @Description Una celda por día del mes con el estado dominante (Missed > Late > OnTime). Sin parámetros usa el mes actual.
// @Tags analytics
// @Produce json
// @Param year query int false "Año (>= 0)"
// @Param month_index query int false "Mes 0-based (0=enero .. 11=diciembre)"
// @Success 200 {object} adherence.MonthCalendar
// @Failure 400 {string} string "month index must be between 0 and 11 / year must not be negative"
// @Failure 500 {string} string "internal error"
// @Router /analytics/calendar [get]
func calendarHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := parseMonthQuery(w, r)
		if !ok {
			return
		}

		out, err := svc.Calendar(r.Context(), year, month)
		if err != nil {
			writeQueryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// distributionHandler godoc
// @Summary Distribución horaria
// @Description Un punto (fecha, hora decimal) por toma con fecha y hora válidas.
// @Tags analytics
// @Produce json
// @Success 200 {array} adherence.TimePoint
// @Failure 500 {string} string "internal error"
// @Router /analytics/distribution [get]
func distributionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Distribution(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// dashboardHandler godoc
// @Summary Dashboard completo
// @Description Resumen, calendario y distribución calculados sobre el mismo snapshot.
// @Tags analytics
// @Produce json
// @Param year query int false "Año (>= 0)"
// @Param month_index query int false "Mes 0-based"
// @Success 200 {object} Dashboard
// @Failure 400 {string} string "parámetros inválidos"
// @Failure 500 {string} string "internal error"
// @Router /analytics/dashboard [get]
func dashboardHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, month, ok := parseMonthQuery(w, r)
		if !ok {
			return
		}

		out, err := svc.Dashboard(r.Context(), year, month)
		if err != nil {
			writeQueryError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// parseMonthQuery lee year/month_index; ausentes => nil (mes actual).
func parseMonthQuery(w http.ResponseWriter, r *http.Request) (year, month *int, ok bool) {
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("year")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "year must be an integer", http.StatusBadRequest)
			return nil, nil, false
		}
		year = &n
	}
	if v := strings.TrimSpace(q.Get("month_index")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "month_index must be an integer", http.StatusBadRequest)
			return nil, nil, false
		}
		month = &n
	}
	return year, month, true
}

func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adherence.ErrInvalidMonthIndex):
		http.Error(w, adherence.ErrInvalidMonthIndex.Error(), http.StatusBadRequest)
	case errors.Is(err, adherence.ErrInvalidYear):
		http.Error(w, adherence.ErrInvalidYear.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON duplicado a propósito (mismo criterio que el resto de handlers).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
