package entities

// Booking links a user to a session. Append-only: there is no capacity
// limit, no uniqueness constraint, and no check that the session exists.
// UserID is nullable because no authenticated identity is established
// anywhere in the system; whether the field should be required is an open
// product decision.
type Booking struct {
	ID          int64  `json:"id" db:"id"`
	UserID      *int64 `json:"user_id" db:"user_id"`
	SessionID   int64  `json:"session_id" db:"session_id"`
	BookingDate string `json:"booking_date" db:"booking_date"`
}
