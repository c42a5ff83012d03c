package http

import (
	"net/http"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/service"
)

type WeatherHandler struct {
	weatherSvc service.WeatherService
}

func NewWeatherHandler(weatherSvc service.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherSvc: weatherSvc}
}

// GetByCity handles GET /weather?city=...
func (h *WeatherHandler) GetByCity(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	if city == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "city parameter is required"})
		return
	}

	report, err := h.weatherSvc.GetByCity(r.Context(), city)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// GetByEvent handles GET /events/{id}/weather.
func (h *WeatherHandler) GetByEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(r, "id")
	if !ok {
		respondError(w, domain.ErrEventNotFound)
		return
	}

	report, err := h.weatherSvc.GetByEvent(r.Context(), eventID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
