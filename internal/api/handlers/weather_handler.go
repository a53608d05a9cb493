package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/forestshield/forestshield-be/internal/services"
)

// WeatherHandler handles HTTP requests for weather records.
type WeatherHandler struct {
	service services.WeatherServiceProvider
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(service services.WeatherServiceProvider) *WeatherHandler {
	return &WeatherHandler{service: service}
}

// WeatherPayload defines the structure for record creation requests.
// Pointer fields distinguish an absent value from a zero value.
type WeatherPayload struct {
	Zone        *string  `json:"zone"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Rainfall    *string  `json:"rainfall"`
	Wind        *string  `json:"wind"`
}

func (p *WeatherPayload) missingField() string {
	switch {
	case p.Zone == nil || strings.TrimSpace(*p.Zone) == "":
		return "zone"
	case p.Temperature == nil:
		return "temperature"
	case p.Humidity == nil:
		return "humidity"
	case p.Rainfall == nil || strings.TrimSpace(*p.Rainfall) == "":
		return "rainfall"
	case p.Wind == nil || strings.TrimSpace(*p.Wind) == "":
		return "wind"
	}
	return ""
}

// Create handles storing a new weather observation.
func (h *WeatherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload WeatherPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if field := payload.missingField(); field != "" {
		respondError(w, http.StatusBadRequest, "missing required field: "+field)
		return
	}

	record, err := h.service.CreateRecord(r.Context(), *payload.Zone, *payload.Temperature, *payload.Humidity, *payload.Rainfall, *payload.Wind)
	if err != nil {
		log.Error().Err(err).Str("zone", *payload.Zone).Msg("Failed to create weather record")
		respondError(w, http.StatusInternalServerError, "failed to create weather record")
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// List handles retrieving all weather observations, most recent first.
func (h *WeatherHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListRecords(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list weather records")
		respondError(w, http.StatusInternalServerError, "failed to list weather records")
		return
	}

	respondJSON(w, http.StatusOK, records)
}
