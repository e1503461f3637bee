package slots

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWindow       = errors.New("working window open must be before close")
	ErrInvalidGranularity  = errors.New("slot granularity must be a positive number of minutes")
	ErrInvalidInterval     = errors.New("interval start must be before end")
	ErrOutsideWorkingHours = errors.New("interval is outside the room's working hours")
)

// ConflictError reports that an interval overlaps an existing occupying
// booking. It is returned both by the advisory client-side check and when the
// booking backend rejects a racing create.
type ConflictError struct {
	BookingID int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("interval conflicts with booking %d", e.BookingID)
}
