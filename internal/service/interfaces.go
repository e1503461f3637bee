package service

import (
	"context"

	"studiobooking/internal/entities"
)

// BookingRepository defines the booking operations the services need from the
// booking backend.
type BookingRepository interface {
	ListBookings(ctx context.Context, roomID int64, date string) ([]entities.Booking, error)
	CreateBooking(ctx context.Context, req *entities.BookingRequest) (*entities.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) (*entities.Booking, error)
}

// RoomRepository defines the catalog operations.
type RoomRepository interface {
	ListRooms(ctx context.Context) ([]entities.Room, error)
	GetRoom(ctx context.Context, roomID int64) (*entities.Room, error)
}

// BookingCache is the per-(room, date) booking snapshot store.
type BookingCache interface {
	Get(ctx context.Context, roomID int64, date string) ([]entities.Booking, bool, error)
	Set(ctx context.Context, roomID int64, date string, bookings []entities.Booking) error
	Invalidate(ctx context.Context, roomID int64, date string) error
}

// Notifier sends booking lifecycle notifications to the client who booked.
type Notifier interface {
	NotifyBooking(booking *entities.Booking, roomName, userName, userEmail, userPhone, status string)
}
