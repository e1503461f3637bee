package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"studiobooking/internal/entities"
	"studiobooking/internal/slots"
	"studiobooking/internal/utils"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("date must be formatted as YYYY-MM-DD")

// AvailabilityService turns a room's working window and the backend's booking
// list into the slot grid the UI renders. Bookings come from the snapshot
// cache when fresh, from the backend otherwise.
type AvailabilityService struct {
	Rooms    RoomRepository
	Bookings BookingRepository
	Cache    BookingCache
}

func NewAvailabilityService(rooms RoomRepository, bookings BookingRepository, cache BookingCache) *AvailabilityService {
	return &AvailabilityService{Rooms: rooms, Bookings: bookings, Cache: cache}
}

func (s *AvailabilityService) ListRooms(ctx context.Context) ([]entities.Room, error) {
	return s.Rooms.ListRooms(ctx)
}

// DaySchedule computes the annotated slot grid for one (room, date) pair.
func (s *AvailabilityService) DaySchedule(ctx context.Context, roomID int64, date string) (*entities.DaySchedule, error) {
	room, window, bookings, err := s.loadDay(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	grid, err := slots.GenerateSlots(window, room.SlotMinutes, bookings)
	if err != nil {
		return nil, fmt.Errorf("generating slots for room %d on %s: %w", roomID, date, err)
	}

	return &entities.DaySchedule{
		RoomID: roomID,
		Date:   date,
		Window: window,
		Slots:  grid,
	}, nil
}

// ValidateCandidate runs the advisory pre-flight check for a candidate
// interval. The booking backend remains the authority on create.
func (s *AvailabilityService) ValidateCandidate(ctx context.Context, roomID int64, candidate entities.TimeInterval) error {
	date := candidate.Start.UTC().Format(dateLayout)
	_, window, bookings, err := s.loadDay(ctx, roomID, date)
	if err != nil {
		return err
	}
	return slots.ValidateCandidate(candidate, window, bookings)
}

// loadDay resolves the room, its working window on the date, and the
// occupying bookings. Cache failures degrade to a direct backend fetch; a
// stale availability answer is worse than a slow one.
func (s *AvailabilityService) loadDay(ctx context.Context, roomID int64, date string) (*entities.Room, entities.WorkingWindow, []entities.Booking, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, entities.WorkingWindow{}, nil, ErrInvalidDate
	}

	room, err := s.Rooms.GetRoom(ctx, roomID)
	if err != nil {
		return nil, entities.WorkingWindow{}, nil, err
	}

	window, err := room.WorkingWindowOn(day)
	if err != nil {
		return nil, entities.WorkingWindow{}, nil, err
	}

	bookings, hit, err := s.Cache.Get(ctx, roomID, date)
	if err != nil {
		utils.GetLogger().Warn("Booking snapshot read failed, fetching from backend",
			zap.Int64("room_id", roomID), zap.String("date", date), zap.Error(err))
		hit = false
	}
	if !hit {
		bookings, err = s.Bookings.ListBookings(ctx, roomID, date)
		if err != nil {
			return nil, entities.WorkingWindow{}, nil, err
		}
		if err := s.Cache.Set(ctx, roomID, date, bookings); err != nil {
			utils.GetLogger().Warn("Booking snapshot write failed",
				zap.Int64("room_id", roomID), zap.String("date", date), zap.Error(err))
		}
	}

	return room, window, bookings, nil
}
