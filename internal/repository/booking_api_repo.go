package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"studiobooking/internal/entities"
	"studiobooking/internal/slots"
	"studiobooking/internal/utils"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	// ErrUpstream marks a failed call to the booking backend so the API layer
	// can answer 502 instead of blaming the client.
	ErrUpstream = errors.New("booking API request failed")
)

// BookingAPIRepository reads and writes bookings through the external booking
// backend's REST API. It owns normalization: timestamps are parsed from
// ISO-8601, converted to UTC at minute resolution, and records that cannot be
// parsed are dropped with a warning rather than failing the whole room/day.
type BookingAPIRepository struct {
	BaseURL string
	Client  *http.Client
}

func NewBookingAPIRepository(baseURL string, client *http.Client) *BookingAPIRepository {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &BookingAPIRepository{BaseURL: baseURL, Client: client}
}

type bookingRecord struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

type conflictBody struct {
	ConflictingBookingID int64  `json:"conflicting_booking_id"`
	Message              string `json:"message"`
}

// ListBookings fetches the bookings for one room and calendar date, filtered
// to the statuses that occupy the room.
func (r *BookingAPIRepository) ListBookings(ctx context.Context, roomID int64, date string) ([]entities.Booking, error) {
	url := fmt.Sprintf("%s/api/rooms/%d/bookings?date=%s", r.BaseURL, roomID, date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: listing bookings for room %d returned status %d", ErrUpstream, roomID, resp.StatusCode)
	}

	var records []bookingRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: decoding bookings for room %d: %v", ErrUpstream, roomID, err)
	}

	bookings := make([]entities.Booking, 0, len(records))
	for _, rec := range records {
		b, ok := rec.toBooking()
		if !ok {
			continue
		}
		if !b.Status.Occupies() {
			continue
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// CreateBooking submits a validated candidate to the booking backend. The
// backend is the authority: a 409 means another client won the slot, surfaced
// as the same conflict error the advisory check produces.
func (r *BookingAPIRepository) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.Booking, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"room_id":    req.RoomID,
		"start_time": req.Interval.Start.UTC().Format(time.RFC3339),
		"end_time":   req.Interval.End.UTC().Format(time.RFC3339),
		"user_name":  req.UserName,
		"user_email": req.UserEmail,
		"user_phone": req.UserPhone,
		"request_id": req.RequestID,
	})
	if err != nil {
		return nil, err
	}

	url := r.BaseURL + "/api/bookings"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusConflict:
		var body conflictBody
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			utils.GetLogger().Warn("Conflict response without parseable body", zap.Error(err))
		}
		return nil, &slots.ConflictError{BookingID: body.ConflictingBookingID}
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var rec bookingRecord
		if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: decoding created booking: %v", ErrUpstream, err)
		}
		b, ok := rec.toBooking()
		if !ok {
			return nil, fmt.Errorf("%w: created booking has malformed interval", ErrUpstream)
		}
		return &b, nil
	default:
		return nil, fmt.Errorf("%w: creating booking returned status %d", ErrUpstream, resp.StatusCode)
	}
}

// CancelBooking asks the backend to cancel and returns the cancelled booking
// so callers can invalidate the right snapshot and notify the client.
func (r *BookingAPIRepository) CancelBooking(ctx context.Context, bookingID int64) (*entities.Booking, error) {
	url := fmt.Sprintf("%s/api/bookings/%d", r.BaseURL, bookingID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrBookingNotFound
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		var rec bookingRecord
		if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: decoding cancelled booking: %v", ErrUpstream, err)
		}
		b, ok := rec.toBooking()
		if !ok {
			return nil, fmt.Errorf("%w: cancelled booking has malformed interval", ErrUpstream)
		}
		return &b, nil
	default:
		return nil, fmt.Errorf("%w: cancelling booking %d returned status %d", ErrUpstream, bookingID, resp.StatusCode)
	}
}

// toBooking normalizes a wire record. A record with unparseable timestamps or
// end <= start is a data-integrity problem in one row, not in the whole day:
// it is dropped with a logged warning.
func (rec bookingRecord) toBooking() (entities.Booking, bool) {
	start, errStart := time.Parse(time.RFC3339, rec.StartTime)
	end, errEnd := time.Parse(time.RFC3339, rec.EndTime)
	if errStart != nil || errEnd != nil {
		utils.GetLogger().Warn("Dropping booking with unparseable timestamps",
			zap.Int64("booking_id", rec.ID),
			zap.String("start_time", rec.StartTime),
			zap.String("end_time", rec.EndTime))
		return entities.Booking{}, false
	}

	interval := entities.TimeInterval{
		Start: start.UTC().Truncate(time.Minute),
		End:   end.UTC().Truncate(time.Minute),
	}
	if !interval.Valid() {
		utils.GetLogger().Warn("Dropping booking with inverted interval",
			zap.Int64("booking_id", rec.ID))
		return entities.Booking{}, false
	}

	return entities.Booking{
		ID:       rec.ID,
		RoomID:   rec.RoomID,
		Interval: interval,
		Status:   entities.BookingStatus(rec.Status),
	}, true
}
