package entities

// BookingRequest is a candidate reservation pending validation, plus the
// contact details the confirmation notifications need. RequestID makes the
// upstream create call idempotent across client retries.
type BookingRequest struct {
	RoomID    int64        `json:"room_id"`
	Interval  TimeInterval `json:"interval"`
	UserName  string       `json:"user_name"`
	UserEmail string       `json:"user_email"`
	UserPhone string       `json:"user_phone"`
	RequestID string       `json:"request_id"`
}
