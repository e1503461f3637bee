package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"studiobooking/internal/entities"
	"studiobooking/internal/slots"
	"studiobooking/internal/utils"
)

const statusConfirmedLabel = "confirmed"

// BookingService runs the dual-check booking flow: the advisory client-side
// validation first, then the authoritative create against the booking
// backend. On a conflict from either stage the stale snapshot is dropped and
// a fresh slot grid is returned alongside the error so the caller can
// re-render without another round trip.
type BookingService struct {
	Availability *AvailabilityService
	Bookings     BookingRepository
	Rooms        RoomRepository
	Cache        BookingCache
	Notifier     Notifier
}

func NewBookingService(availability *AvailabilityService, bookings BookingRepository, rooms RoomRepository, cache BookingCache, notifier Notifier) *BookingService {
	return &BookingService{
		Availability: availability,
		Bookings:     bookings,
		Rooms:        rooms,
		Cache:        cache,
		Notifier:     notifier,
	}
}

// CreateBooking validates and submits a booking request. When the error is a
// *slots.ConflictError the returned schedule carries the regenerated grid.
func (s *BookingService) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.Booking, *entities.DaySchedule, error) {
	date := req.Interval.Start.UTC().Format(dateLayout)

	room, window, bookings, err := s.Availability.loadDay(ctx, req.RoomID, date)
	if err != nil {
		return nil, nil, err
	}

	if err := slots.ValidateCandidate(req.Interval, window, bookings); err != nil {
		return nil, s.scheduleAfterConflict(ctx, req.RoomID, date, err), err
	}

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	created, err := s.Bookings.CreateBooking(ctx, req)
	if err != nil {
		// The backend re-validated and someone else won the slot.
		return nil, s.scheduleAfterConflict(ctx, req.RoomID, date, err), err
	}

	if err := s.Cache.Invalidate(ctx, req.RoomID, date); err != nil {
		utils.GetLogger().Warn("Snapshot invalidation failed after create",
			zap.Int64("room_id", req.RoomID), zap.String("date", date), zap.Error(err))
	}

	s.Notifier.NotifyBooking(created, room.Name, req.UserName, req.UserEmail, req.UserPhone, statusConfirmedLabel)
	return created, nil, nil
}

// CancelBooking proxies the cancellation to the backend, which owns the
// status transition, then drops the affected snapshot.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64) (*entities.Booking, error) {
	cancelled, err := s.Bookings.CancelBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	date := cancelled.Interval.Start.UTC().Format(dateLayout)
	if err := s.Cache.Invalidate(ctx, cancelled.RoomID, date); err != nil {
		utils.GetLogger().Warn("Snapshot invalidation failed after cancel",
			zap.Int64("room_id", cancelled.RoomID), zap.String("date", date), zap.Error(err))
	}
	return cancelled, nil
}

// scheduleAfterConflict regenerates the slot grid after a conflict so the
// response can carry current availability. Non-conflict errors get nothing.
func (s *BookingService) scheduleAfterConflict(ctx context.Context, roomID int64, date string, cause error) *entities.DaySchedule {
	var conflict *slots.ConflictError
	if !errors.As(cause, &conflict) {
		return nil
	}

	if err := s.Cache.Invalidate(ctx, roomID, date); err != nil {
		utils.GetLogger().Warn("Snapshot invalidation failed after conflict",
			zap.Int64("room_id", roomID), zap.String("date", date), zap.Error(err))
	}

	schedule, err := s.Availability.DaySchedule(ctx, roomID, date)
	if err != nil {
		utils.GetLogger().Warn(fmt.Sprintf("Could not regenerate slots for room %d after conflict", roomID), zap.Error(err))
		return nil
	}
	return schedule
}
