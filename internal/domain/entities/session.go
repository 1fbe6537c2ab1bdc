package entities

// Session is a scheduled, trainer-led time slot available for booking.
// Date is a plain "YYYY-MM-DD" calendar date with no time zone attached;
// the client re-derives day buckets from it.
type Session struct {
	ID        int64  `json:"id" db:"id"`
	TrainerID int64  `json:"trainer_id" db:"trainer_id"`
	Date      string `json:"date" db:"date"`
	Time      string `json:"time" db:"time"`
	Location  string `json:"location" db:"location"`
}

// DateLayout is the calendar date format used across sessions and bookings.
const DateLayout = "2006-01-02"
