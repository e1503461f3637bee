package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "studiobooking/internal/errors"
	"studiobooking/internal/repository"
	"studiobooking/internal/service"
	"studiobooking/internal/slots"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// httpError maps domain errors onto HTTP statuses: bad input 400, outside
// working hours 422, conflicts 409, unknown resources 404, upstream trouble
// 502, everything else 500.
func httpError(err error) *apperrors.HTTPError {
	switch {
	case errors.Is(err, slots.ErrInvalidInterval),
		errors.Is(err, slots.ErrInvalidWindow),
		errors.Is(err, slots.ErrInvalidGranularity),
		errors.Is(err, service.ErrInvalidDate):
		return apperrors.BadRequest(err.Error())
	case errors.Is(err, slots.ErrOutsideWorkingHours):
		return apperrors.UnprocessableEntity(err.Error())
	case errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrBookingNotFound):
		return apperrors.NotFound(err.Error())
	case errors.Is(err, repository.ErrUpstream):
		return apperrors.BadGateway("booking backend unavailable")
	default:
		var conflict *slots.ConflictError
		if errors.As(err, &conflict) {
			return apperrors.Conflict(err.Error())
		}
		return apperrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
