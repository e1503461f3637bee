package slots

import (
	"time"

	"studiobooking/internal/entities"
)

// GenerateSlots walks the working window from open to close in steps of
// granularityMinutes and emits one slot per step. The returned sequence is
// ordered by start, contiguous, and covers [open, close); when the
// granularity does not divide the window evenly the final slot is truncated
// at close. A slot is unavailable if it overlaps any occupying booking under
// half-open semantics; partial overlap is enough. The computation is pure:
// identical inputs always yield identical output.
func GenerateSlots(window entities.WorkingWindow, granularityMinutes int, bookings []entities.Booking) ([]entities.Slot, error) {
	if !window.Open.Before(window.Close) {
		return nil, ErrInvalidWindow
	}
	if granularityMinutes <= 0 {
		return nil, ErrInvalidGranularity
	}

	occupying := occupyingBookings(bookings)
	step := time.Duration(granularityMinutes) * time.Minute

	var out []entities.Slot
	for start := window.Open; start.Before(window.Close); start = start.Add(step) {
		end := start.Add(step)
		if end.After(window.Close) {
			end = window.Close
		}

		slot := entities.Slot{Start: start, End: end, Available: true}
		if b, ok := earliestOverlapping(entities.TimeInterval{Start: start, End: end}, occupying); ok {
			slot.Available = false
			slot.ConflictingBookingID = b.ID
		}
		out = append(out, slot)
	}
	return out, nil
}

// ValidateCandidate checks whether a candidate interval may be booked against
// the given window and bookings. The basic interval check runs first, then
// the conflict check, then the working-hours check: a candidate that collides
// with an existing booking reports the conflict even if it also leaves the
// window, because a conflict is the retryable outcome (refetch and regenerate
// slots). The result is advisory only; the booking backend re-runs the same
// half-open overlap rule authoritatively before persisting.
func ValidateCandidate(candidate entities.TimeInterval, window entities.WorkingWindow, bookings []entities.Booking) error {
	if !candidate.Valid() {
		return ErrInvalidInterval
	}
	if b, ok := earliestOverlapping(candidate, occupyingBookings(bookings)); ok {
		return &ConflictError{BookingID: b.ID}
	}
	if candidate.Start.Before(window.Open) || candidate.End.After(window.Close) {
		return ErrOutsideWorkingHours
	}
	return nil
}

// earliestOverlapping returns the earliest-starting occupying booking that
// overlaps the interval, for diagnostic display.
func earliestOverlapping(interval entities.TimeInterval, bookings []entities.Booking) (entities.Booking, bool) {
	var found entities.Booking
	ok := false
	for _, b := range bookings {
		if !interval.Overlaps(b.Interval) {
			continue
		}
		if !ok || b.Interval.Start.Before(found.Interval.Start) {
			found = b
			ok = true
		}
	}
	return found, ok
}

// occupyingBookings is the one canonical place the occupying-status rule is
// applied: only pending and confirmed bookings block their interval.
func occupyingBookings(bookings []entities.Booking) []entities.Booking {
	var out []entities.Booking
	for _, b := range bookings {
		if b.Status.Occupies() {
			out = append(out, b)
		}
	}
	return out
}
