package plans

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/plans", func(pr chi.Router) {
		pr.Post("/", createPlanHandler(svc))
		pr.Get("/", listPlansHandler(svc))

		// Opciones del selector de fechas de la vista de recordatorios
		pr.Get("/dates", listPlanDatesHandler(svc))

		pr.Get("/{planID}", getPlanHandler(svc))
		pr.Put("/{planID}", updatePlanHandler(svc))
		pr.Delete("/{planID}", deletePlanHandler(svc))
	})
}

// createPlanRequest es el cuerpo para agregar una toma al plan semanal.
type createPlanRequest struct {
	Name   string `json:"name" example:"Aspirin"`
	Date   string `json:"date" example:"2024-03-04"` // YYYY-MM-DD
	Day    string `json:"day" example:"Monday"`      // opcional, se deriva de date
	Time   string `json:"time" example:"08:00"`      // HH:MM
	Dose   string `json:"dose" example:"100mg"`
	Status string `json:"status" example:"Scheduled"` // opcional, Scheduled por defecto
}

// planResponse representa una toma programada devuelta por la API.
type planResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Day       string    `json:"day"`
	Time      string    `json:"time"`
	Dose      string    `json:"dose"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// createPlanHandler godoc
// @Summary Crear plan
// @Description Agrega una toma al plan semanal. `day` se deriva de `date`; si se envía debe coincidir.
// @Tags plans
// @Accept json
// @Produce json
// @Param payload body createPlanRequest true "Datos del plan"
// @Success 201 {object} planResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /plans [post]
func createPlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Date:   req.Date,
			Day:    req.Day,
			Time:   req.Time,
			Dose:   req.Dose,
			Status: req.Status,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toPlanResponse(p))
	}
}

// listPlansHandler godoc
// @Summary Listar planes
// @Description Lista las tomas programadas, opcionalmente de una sola fecha. `date=All` equivale a no filtrar.
// @Tags plans
// @Produce json
// @Param date query string false "Fecha YYYY-MM-DD o All"
// @Success 200 {array} planResponse
// @Failure 400 {string} string "date must be YYYY-MM-DD"
// @Failure 500 {string} string "internal error"
// @Router /plans [get]
func listPlansHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]planResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPlanResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listPlanDatesHandler godoc
// @Summary Fechas con planes
// @Description Fechas distintas con tomas programadas, ascendente.
// @Tags plans
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "internal error"
// @Router /plans/dates [get]
func listPlanDatesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dates, err := svc.Dates(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, dates)
	}
}

// getPlanHandler godoc
// @Summary Obtener plan
// @Tags plans
// @Produce json
// @Param planID path string true "ID del plan"
// @Success 200 {object} planResponse
// @Failure 404 {string} string "plan not found"
// @Failure 500 {string} string "internal error"
// @Router /plans/{planID} [get]
func getPlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "planID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPlanResponse(p))
	}
}

// deletePlanHandler godoc
// @Summary Eliminar plan
// @Tags plans
// @Param planID path string true "ID del plan"
// @Success 204
// @Failure 404 {string} string "plan not found"
// @Failure 500 {string} string "internal error"
// @Router /plans/{planID} [delete]
func deletePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "planID")); err != nil {
			writeLookupError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// updatePlanHandler godoc
// @Summary Editar plan
// @Description Reemplaza la toma. `day` se vuelve a derivar de `date`; `status` vacío conserva el actual.
// @Tags plans
// @Accept json
// @Produce json
// @Param planID path string true "ID del plan"
// @Param payload body createPlanRequest true "Datos del plan"
// @Success 200 {object} planResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "plan not found"
// @Failure 500 {string} string "internal error"
// @Router /plans/{planID} [put]
func updatePlanHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "planID"), UpdateInput{
			Name:   req.Name,
			Date:   req.Date,
			Day:    req.Day,
			Time:   req.Time,
			Dose:   req.Dose,
			Status: req.Status,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound):
				http.Error(w, "plan not found", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toPlanResponse(p))
	}
}

// writeLookupError: id vacío o inexistente => 404; fallas del repo => 500.
func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		http.Error(w, "plan not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func toPlanResponse(p Plan) planResponse {
	return planResponse{
		ID:        p.ID,
		Name:      p.Name,
		Date:      p.Date,
		Day:       p.Day,
		Time:      p.Time,
		Dose:      p.Dose,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
