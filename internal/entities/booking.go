package entities

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Occupies reports whether a booking in this status blocks its interval.
// Completed and cancelled bookings never block new reservations.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingConfirmed
}

// TimeInterval is a half-open interval [Start, End) in UTC at minute resolution.
type TimeInterval struct {
	Start time.Time `json:"start_time"`
	End   time.Time `json:"end_time"`
}

func (i TimeInterval) Valid() bool {
	return i.Start.Before(i.End)
}

// Overlaps uses half-open semantics: touching intervals do not overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

type Booking struct {
	ID       int64         `json:"id"`
	RoomID   int64         `json:"room_id"`
	Interval TimeInterval  `json:"interval"`
	Status   BookingStatus `json:"status"`
}
