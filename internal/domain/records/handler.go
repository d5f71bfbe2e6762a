package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/records", func(rr chi.Router) {
		rr.Post("/", createRecordHandler(svc))
		rr.Get("/", listRecordsHandler(svc))
		rr.Get("/{recordID}", getRecordHandler(svc))
		rr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

// createRecordRequest es el cuerpo para registrar una toma.
type createRecordRequest struct {
	Name   string `json:"name" example:"Metformin"`
	Date   string `json:"date" example:"2024-03-01"` // YYYY-MM-DD
	Time   string `json:"time" example:"08:00"`      // HH:MM, opcional
	Dose   string `json:"dose" example:"500mg"`
	Status string `json:"status" example:"On time"` // texto libre: On time, Late, Missed, taken...
	Source Source `json:"source" enums:"manual,dispenser,import"`
}

// recordResponse representa una toma devuelta por la API.
type recordResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Dose       string    `json:"dose"`
	Status     string    `json:"status"`
	Source     Source    `json:"source"`
	RecordedAt time.Time `json:"recorded_at"`
}

// createRecordHandler godoc
// @Summary Registrar toma
// @Description Registra una toma de medicación. `date` en formato YYYY-MM-DD, `time` opcional en HH:MM (24h). `status` es texto libre; lo no reconocido se agrega como Unclassified.
// @Tags records
// @Accept json
// @Produce json
// @Param payload body createRecordRequest true "Datos de la toma"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /records [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Date:   req.Date,
			Time:   req.Time,
			Dose:   req.Dose,
			Status: req.Status,
			Source: req.Source,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid input: name required, date must be YYYY-MM-DD, time must be HH:MM", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// listRecordsHandler godoc
// @Summary Listar tomas
// @Description Lista tomas ordenadas por fecha y hora. Filtros opcionales por rango de fechas y nombre.
// @Tags records
// @Produce json
// @Param from query string false "Fecha mínima (YYYY-MM-DD)"
// @Param to query string false "Fecha máxima (YYYY-MM-DD)"
// @Param name query string false "Nombre exacto de la medicación"
// @Param limit query int false "Máximo de registros (1-500). Por defecto 100"
// @Param offset query int false "Registros a saltar (paginación). Por defecto 0"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 500 {string} string "internal error"
// @Router /records [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 100
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
				limit = n
			}
		}

		offset := 0
		if v := r.URL.Query().Get("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "offset must be a non-negative integer", http.StatusBadRequest)
				return
			}
			offset = n
		}

		filter := ListFilter{
			From:   strings.TrimSpace(r.URL.Query().Get("from")),
			To:     strings.TrimSpace(r.URL.Query().Get("to")),
			Name:   strings.TrimSpace(r.URL.Query().Get("name")),
			Limit:  limit,
			Offset: offset,
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "from/to must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getRecordHandler godoc
// @Summary Obtener toma
// @Tags records
// @Produce json
// @Param recordID path string true "ID de la toma"
// @Success 200 {object} recordResponse
// @Failure 404 {string} string "record not found"
// @Failure 500 {string} string "internal error"
// @Router /records/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Eliminar toma
// @Tags records
// @Param recordID path string true "ID de la toma"
// @Success 204
// @Failure 404 {string} string "record not found"
// @Failure 500 {string} string "internal error"
// @Router /records/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			writeLookupError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeLookupError: id vacío o inexistente => 404; fallas del repo => 500.
func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
		http.Error(w, "record not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		ID:         r.ID,
		Name:       r.Name,
		Date:       r.Date,
		Time:       r.Time,
		Dose:       r.Dose,
		Status:     r.Status,
		Source:     r.Source,
		RecordedAt: r.RecordedAt,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
