package slots_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studiobooking/internal/entities"
	"studiobooking/internal/slots"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.UTC)
}

func window(openHour, closeHour int) entities.WorkingWindow {
	return entities.WorkingWindow{Open: at(openHour, 0), Close: at(closeHour, 0)}
}

func booking(id int64, start, end time.Time, status entities.BookingStatus) entities.Booking {
	return entities.Booking{
		ID:       id,
		RoomID:   1,
		Interval: entities.TimeInterval{Start: start, End: end},
		Status:   status,
	}
}

func TestGenerateSlots_NoBookings(t *testing.T) {
	got, err := slots.GenerateSlots(window(9, 13), 60, nil)
	require.NoError(t, err)
	require.Len(t, got, 4)

	for i, s := range got {
		assert.True(t, s.Available, "slot %d should be available", i)
		assert.Equal(t, at(9+i, 0), s.Start)
		assert.Equal(t, at(10+i, 0), s.End)
		assert.Zero(t, s.ConflictingBookingID)
	}
}

func TestGenerateSlots_SingleBookingMarksOneSlot(t *testing.T) {
	bookings := []entities.Booking{
		booking(42, at(10, 0), at(11, 0), entities.BookingConfirmed),
	}

	got, err := slots.GenerateSlots(window(9, 13), 60, bookings)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.True(t, got[0].Available)
	assert.False(t, got[1].Available)
	assert.EqualValues(t, 42, got[1].ConflictingBookingID)
	assert.True(t, got[2].Available)
	assert.True(t, got[3].Available)
}

func TestGenerateSlots_BookingSpanningMultipleSlots(t *testing.T) {
	bookings := []entities.Booking{
		booking(7, at(9, 30), at(11, 30), entities.BookingPending),
	}

	got, err := slots.GenerateSlots(window(9, 13), 60, bookings)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.False(t, got[0].Available)
	assert.False(t, got[1].Available)
	assert.False(t, got[2].Available)
	assert.True(t, got[3].Available)
}

func TestGenerateSlots_TouchingBookingDoesNotConflict(t *testing.T) {
	// Booking ends exactly when the 10:00 slot starts: half-open intervals
	// that touch do not overlap.
	bookings := []entities.Booking{
		booking(5, at(9, 0), at(10, 0), entities.BookingConfirmed),
	}

	got, err := slots.GenerateSlots(window(9, 13), 60, bookings)
	require.NoError(t, err)
	assert.False(t, got[0].Available)
	assert.True(t, got[1].Available)
}

func TestGenerateSlots_NonOccupyingStatusesIgnored(t *testing.T) {
	bookings := []entities.Booking{
		booking(1, at(9, 0), at(10, 0), entities.BookingCancelled),
		booking(2, at(11, 0), at(12, 0), entities.BookingConfirmed),
	}

	got, err := slots.GenerateSlots(window(9, 13), 60, bookings)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.True(t, got[0].Available, "cancelled booking must not block its slot")
	assert.True(t, got[1].Available)
	assert.False(t, got[2].Available)
	assert.EqualValues(t, 2, got[2].ConflictingBookingID)
	assert.True(t, got[3].Available)
}

func TestGenerateSlots_EarliestConflictReported(t *testing.T) {
	bookings := []entities.Booking{
		booking(9, at(10, 30), at(11, 0), entities.BookingConfirmed),
		booking(8, at(10, 0), at(10, 30), entities.BookingPending),
	}

	got, err := slots.GenerateSlots(window(9, 13), 60, bookings)
	require.NoError(t, err)
	assert.False(t, got[1].Available)
	assert.EqualValues(t, 8, got[1].ConflictingBookingID, "earliest-starting overlap wins")
}

func TestGenerateSlots_TruncatesFinalSlot(t *testing.T) {
	w := entities.WorkingWindow{Open: at(9, 0), Close: at(10, 30)}

	got, err := slots.GenerateSlots(w, 60, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, at(10, 0), got[1].Start)
	assert.Equal(t, at(10, 30), got[1].End)
}

func TestGenerateSlots_GridIsContiguousAndOrdered(t *testing.T) {
	got, err := slots.GenerateSlots(window(8, 20), 45, nil)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	assert.Equal(t, at(8, 0), got[0].Start)
	assert.Equal(t, at(20, 0), got[len(got)-1].End)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1].End, got[i].Start, "slot %d must start where slot %d ends", i, i-1)
	}
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	bookings := []entities.Booking{
		booking(3, at(10, 0), at(12, 0), entities.BookingConfirmed),
	}

	first, err := slots.GenerateSlots(window(9, 13), 30, bookings)
	require.NoError(t, err)
	second, err := slots.GenerateSlots(window(9, 13), 30, bookings)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_InvalidInputs(t *testing.T) {
	_, err := slots.GenerateSlots(entities.WorkingWindow{Open: at(13, 0), Close: at(9, 0)}, 60, nil)
	assert.ErrorIs(t, err, slots.ErrInvalidWindow)

	_, err = slots.GenerateSlots(entities.WorkingWindow{Open: at(9, 0), Close: at(9, 0)}, 60, nil)
	assert.ErrorIs(t, err, slots.ErrInvalidWindow)

	_, err = slots.GenerateSlots(window(9, 13), 0, nil)
	assert.ErrorIs(t, err, slots.ErrInvalidGranularity)
}

func TestValidateCandidate_Succeeds(t *testing.T) {
	candidate := entities.TimeInterval{Start: at(9, 0), End: at(10, 0)}
	err := slots.ValidateCandidate(candidate, window(9, 10), nil)
	assert.NoError(t, err)
}

func TestValidateCandidate_RejectsInvertedInterval(t *testing.T) {
	candidate := entities.TimeInterval{Start: at(10, 0), End: at(10, 0)}
	err := slots.ValidateCandidate(candidate, window(9, 13), nil)
	assert.ErrorIs(t, err, slots.ErrInvalidInterval)

	candidate = entities.TimeInterval{Start: at(11, 0), End: at(10, 0)}
	err = slots.ValidateCandidate(candidate, window(9, 13), nil)
	assert.ErrorIs(t, err, slots.ErrInvalidInterval)
}

func TestValidateCandidate_RejectsOutsideWorkingHours(t *testing.T) {
	candidate := entities.TimeInterval{Start: at(8, 0), End: at(9, 30)}
	err := slots.ValidateCandidate(candidate, window(9, 13), nil)
	assert.ErrorIs(t, err, slots.ErrOutsideWorkingHours)

	candidate = entities.TimeInterval{Start: at(12, 30), End: at(13, 30)}
	err = slots.ValidateCandidate(candidate, window(9, 13), nil)
	assert.ErrorIs(t, err, slots.ErrOutsideWorkingHours)
}

func TestValidateCandidate_ConflictTakesPriorityOverWindow(t *testing.T) {
	// Candidate 09:30-10:30 both overlaps the existing booking and runs past
	// close; the conflict is reported because it is the retryable outcome.
	bookings := []entities.Booking{
		booking(11, at(9, 0), at(10, 0), entities.BookingConfirmed),
	}
	candidate := entities.TimeInterval{Start: at(9, 30), End: at(10, 30)}

	err := slots.ValidateCandidate(candidate, window(9, 10), bookings)

	var conflict *slots.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.EqualValues(t, 11, conflict.BookingID)
	assert.NotErrorIs(t, err, slots.ErrOutsideWorkingHours)
}

func TestValidateCandidate_TouchingBookingAllowed(t *testing.T) {
	bookings := []entities.Booking{
		booking(4, at(9, 0), at(10, 0), entities.BookingConfirmed),
	}
	candidate := entities.TimeInterval{Start: at(10, 0), End: at(11, 0)}

	err := slots.ValidateCandidate(candidate, window(9, 13), bookings)
	assert.NoError(t, err)
}

func TestValidateCandidate_IgnoresCancelledBookings(t *testing.T) {
	bookings := []entities.Booking{
		booking(6, at(9, 0), at(10, 0), entities.BookingCancelled),
	}
	candidate := entities.TimeInterval{Start: at(9, 0), End: at(10, 0)}

	err := slots.ValidateCandidate(candidate, window(9, 13), bookings)
	assert.NoError(t, err)
}
