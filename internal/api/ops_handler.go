package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"studiobooking/internal/service"
)

// OpsHandler exposes the cache maintenance endpoints the operators use.
type OpsHandler struct {
	Jobs  *service.JobService
	Cache service.BookingCache
}

func NewOpsHandler(jobs *service.JobService, cache service.BookingCache) *OpsHandler {
	return &OpsHandler{Jobs: jobs, Cache: cache}
}

func (h *OpsHandler) WarmCache(w http.ResponseWriter, r *http.Request) {
	if err := h.Jobs.WarmTodaySnapshots(r.Context()); err != nil {
		httpError(err).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Snapshots warmed"})
}

func (h *OpsHandler) InvalidateRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomID"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid room id", http.StatusBadRequest)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	if err := h.Cache.Invalidate(r.Context(), roomID, date); err != nil {
		httpError(err).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Snapshot invalidated"})
}
