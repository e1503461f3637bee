package entities

import "time"

// Slot is one bookable segment of a room's working window. Slots are derived
// values, rebuilt on every query and never persisted.
type Slot struct {
	Start                time.Time `json:"start_time"`
	End                  time.Time `json:"end_time"`
	Available            bool      `json:"available"`
	ConflictingBookingID int64     `json:"conflicting_booking_id,omitempty"`
}

// DaySchedule is the slot grid for one (room, date) pair.
type DaySchedule struct {
	RoomID int64         `json:"room_id"`
	Date   string        `json:"date"`
	Window WorkingWindow `json:"working_window"`
	Slots  []Slot        `json:"slots"`
}
