package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"studiobooking/internal/entities"
	"studiobooking/internal/service"
	"studiobooking/internal/slots"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid room id", http.StatusBadRequest)
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	interval, err := parseInterval(req.StartTime, req.EndTime)
	if err != nil {
		http.Error(w, "Invalid start_time or end_time", http.StatusBadRequest)
		return
	}

	booking, schedule, err := h.Service.CreateBooking(r.Context(), &entities.BookingRequest{
		RoomID:    roomID,
		Interval:  interval,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		UserPhone: req.UserPhone,
		RequestID: req.RequestID,
	})
	if err != nil {
		var conflict *slots.ConflictError
		if errors.As(err, &conflict) {
			writeJSON(w, http.StatusConflict, ConflictResponse{
				Error:                err.Error(),
				ConflictingBookingID: conflict.BookingID,
				Schedule:             schedule,
			})
			return
		}
		httpError(err).Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, CreateBookingResponse{
		Booking: booking,
		Message: "Booking confirmed.",
	})
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Invalid booking id", http.StatusBadRequest)
		return
	}

	cancelled, err := h.Service.CancelBooking(r.Context(), bookingID)
	if err != nil {
		httpError(err).Write(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"booking": cancelled,
		"message": "Booking cancelled",
	})
}
