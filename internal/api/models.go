package api

import "studiobooking/internal/entities"

// Candidate validation
type ValidateCandidateRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
type ValidateCandidateResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// Booking
type CreateBookingRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	UserPhone string `json:"user_phone"`
	RequestID string `json:"request_id,omitempty"`
}
type CreateBookingResponse struct {
	Booking *entities.Booking `json:"booking"`
	Message string            `json:"message"`
}

// ConflictResponse carries the regenerated slot grid so the client can
// re-render immediately after losing a race.
type ConflictResponse struct {
	Error                string                `json:"error"`
	ConflictingBookingID int64                 `json:"conflicting_booking_id,omitempty"`
	Schedule             *entities.DaySchedule `json:"schedule,omitempty"`
}
