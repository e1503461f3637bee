package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"studiobooking/internal/entities"
	"studiobooking/internal/service"
)

type AvailabilityHandler struct {
	Service *service.AvailabilityService
}

func NewAvailabilityHandler(svc *service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid room id", http.StatusBadRequest)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	schedule, err := h.Service.DaySchedule(r.Context(), roomID, date)
	if err != nil {
		httpError(err).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, schedule)
}

func (h *AvailabilityHandler) ValidateCandidate(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid room id", http.StatusBadRequest)
		return
	}

	var req ValidateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	candidate, err := parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		http.Error(w, "Invalid start_time or end_time", http.StatusBadRequest)
		return
	}

	if err := h.Service.ValidateCandidate(r.Context(), roomID, candidate); err != nil {
		httpError(err).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, ValidateCandidateResponse{Valid: true})
}

// parseInterval normalizes client timestamps the same way booking records
// are normalized on ingest: UTC, minute resolution.
func parseInterval(start, end string) (entities.TimeInterval, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return entities.TimeInterval{}, err
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return entities.TimeInterval{}, err
	}
	return entities.TimeInterval{
		Start: s.UTC().Truncate(time.Minute),
		End:   e.UTC().Truncate(time.Minute),
	}, nil
}
