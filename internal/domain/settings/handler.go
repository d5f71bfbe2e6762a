package settings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/settings", getSettingsHandler(svc))
	r.Patch("/settings", patchSettingsHandler(svc))
}

// patchSettingsRequest: los campos ausentes no se modifican.
type patchSettingsRequest struct {
	ReminderTimes *string `json:"reminder_times,omitempty" enums:"morning,afternoon,evening,both"`
	Method        *string `json:"method,omitempty" enums:"push,email,both"`
}

type settingsResponse struct {
	ReminderTimes ReminderTimes `json:"reminder_times"`
	Clock         []string      `json:"clock"`
	Method        Method        `json:"method"`
	UpdatedAt     *time.Time    `json:"updated_at,omitempty"`
}

// getSettingsHandler godoc
// @Summary Obtener preferencias de recordatorio
// @Description Devuelve franja y canal. Si nunca se guardaron, devuelve los valores por defecto (both/both).
// @Tags settings
// @Produce json
// @Success 200 {object} settingsResponse
// @Failure 500 {string} string "internal error"
// @Router /settings [get]
func getSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cur, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsResponse(cur))
	}
}

// patchSettingsHandler godoc
// @Summary Actualizar preferencias de recordatorio
// @Tags settings
// @Accept json
// @Produce json
// @Param payload body patchSettingsRequest true "Cambios"
// @Success 200 {object} settingsResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 500 {string} string "internal error"
// @Router /settings [patch]
func patchSettingsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patchSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		cur, err := svc.Update(r.Context(), UpdateInput{
			ReminderTimes: req.ReminderTimes,
			Method:        req.Method,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsResponse(cur))
	}
}

func toSettingsResponse(s ReminderSettings) settingsResponse {
	out := settingsResponse{
		ReminderTimes: s.ReminderTimes,
		Clock:         s.ReminderTimes.Clock(),
		Method:        s.Method,
	}
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		out.UpdatedAt = &t
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
