package entities

import (
	"fmt"
	"time"
)

// Room is a bookable studio room as served by the booking backend. Working
// hours are "HH:MM" strings on the wire, same-day only.
type Room struct {
	ID          int64  `json:"id"`
	StudioID    int64  `json:"studio_id"`
	Name        string `json:"name"`
	OpenTime    string `json:"open_time"`
	CloseTime   string `json:"close_time"`
	SlotMinutes int    `json:"slot_minutes"`
}

// WorkingWindow is a room's operating hours materialized onto one calendar
// date, as absolute UTC instants.
type WorkingWindow struct {
	Open  time.Time `json:"open"`
	Close time.Time `json:"close"`
}

// WorkingWindowOn resolves the room's open/close hours against the given
// date (interpreted in UTC).
func (r Room) WorkingWindowOn(date time.Time) (WorkingWindow, error) {
	open, err := atTimeOfDay(date, r.OpenTime)
	if err != nil {
		return WorkingWindow{}, fmt.Errorf("invalid open_time %q for room %d: %w", r.OpenTime, r.ID, err)
	}
	closeAt, err := atTimeOfDay(date, r.CloseTime)
	if err != nil {
		return WorkingWindow{}, fmt.Errorf("invalid close_time %q for room %d: %w", r.CloseTime, r.ID, err)
	}
	return WorkingWindow{Open: open, Close: closeAt}, nil
}

func atTimeOfDay(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
