package api

import (
	"net/http"

	"studiobooking/internal/service"
)

type RoomHandler struct {
	Service *service.AvailabilityService
}

func NewRoomHandler(svc *service.AvailabilityService) *RoomHandler {
	return &RoomHandler{Service: svc}
}

func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Service.ListRooms(r.Context())
	if err != nil {
		httpError(err).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}
