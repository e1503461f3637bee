package service_test

import (
	"context"
	"fmt"
	"time"

	"studiobooking/internal/entities"
	"studiobooking/internal/repository"
)

func utcTime(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.UTC)
}

func testRoom() *entities.Room {
	return &entities.Room{
		ID:          7,
		StudioID:    2,
		Name:        "Daylight Studio A",
		OpenTime:    "09:00",
		CloseTime:   "13:00",
		SlotMinutes: 60,
	}
}

type stubRoomRepo struct {
	room    *entities.Room
	listErr error
}

func (s *stubRoomRepo) ListRooms(ctx context.Context) ([]entities.Room, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if s.room == nil {
		return nil, nil
	}
	return []entities.Room{*s.room}, nil
}

func (s *stubRoomRepo) GetRoom(ctx context.Context, roomID int64) (*entities.Room, error) {
	if s.room == nil || s.room.ID != roomID {
		return nil, repository.ErrRoomNotFound
	}
	return s.room, nil
}

type stubBookingRepo struct {
	bookings  []entities.Booking
	listErr   error
	listCalls int

	createFn func(req *entities.BookingRequest) (*entities.Booking, error)
	created  []*entities.BookingRequest

	cancelFn func(bookingID int64) (*entities.Booking, error)
}

func (s *stubBookingRepo) ListBookings(ctx context.Context, roomID int64, date string) ([]entities.Booking, error) {
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.bookings, nil
}

func (s *stubBookingRepo) CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.Booking, error) {
	s.created = append(s.created, req)
	return s.createFn(req)
}

func (s *stubBookingRepo) CancelBooking(ctx context.Context, bookingID int64) (*entities.Booking, error) {
	return s.cancelFn(bookingID)
}

type stubCache struct {
	store       map[string][]entities.Booking
	invalidated []string
	getErr      error
}

func newStubCache() *stubCache {
	return &stubCache{store: map[string][]entities.Booking{}}
}

func cacheKey(roomID int64, date string) string {
	return fmt.Sprintf("%d:%s", roomID, date)
}

func (s *stubCache) Get(ctx context.Context, roomID int64, date string) ([]entities.Booking, bool, error) {
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	bookings, ok := s.store[cacheKey(roomID, date)]
	return bookings, ok, nil
}

func (s *stubCache) Set(ctx context.Context, roomID int64, date string, bookings []entities.Booking) error {
	s.store[cacheKey(roomID, date)] = bookings
	return nil
}

func (s *stubCache) Invalidate(ctx context.Context, roomID int64, date string) error {
	s.invalidated = append(s.invalidated, cacheKey(roomID, date))
	delete(s.store, cacheKey(roomID, date))
	return nil
}

type notifyCall struct {
	bookingID int64
	roomName  string
	userEmail string
	status    string
}

type stubNotifier struct {
	calls []notifyCall
}

func (s *stubNotifier) NotifyBooking(booking *entities.Booking, roomName, userName, userEmail, userPhone, status string) {
	s.calls = append(s.calls, notifyCall{
		bookingID: booking.ID,
		roomName:  roomName,
		userEmail: userEmail,
		status:    status,
	})
}
