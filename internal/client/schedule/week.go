package schedule

import (
	"time"

	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

// windowDays is the fixed width of the calendar grid.
const windowDays = 7

// Day is one column of the booking calendar: a calendar date and the
// sessions that fall on it.
type Day struct {
	Date     time.Time
	Sessions []*entities.Session
}

// Window returns the fixed 7-day display window seeded from the given
// date. The window is computed locally, independent of whatever the server
// returns for the matching range request.
func Window(seed time.Time) []time.Time {
	day := time.Date(seed.Year(), seed.Month(), seed.Day(), 0, 0, 0, 0, seed.Location())

	days := make([]time.Time, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		days = append(days, day.AddDate(0, 0, i))
	}
	return days
}

// RangeParams returns the start_date and end_date query values for the
// window seeded at the given date: the seed day and the six days after it.
func RangeParams(seed time.Time) (string, string) {
	start := time.Date(seed.Year(), seed.Month(), seed.Day(), 0, 0, 0, 0, seed.Location())
	end := start.AddDate(0, 0, windowDays-1)
	return start.Format(entities.DateLayout), end.Format(entities.DateLayout)
}

// Group buckets sessions into the days of the window by re-deriving each
// session's calendar date from the payload. The server contract does not
// guarantee the returned window matches the requested one, so sessions
// outside the window are dropped and days with no sessions stay empty
// rather than being an error. Sessions with an unparseable date are
// skipped.
func Group(window []time.Time, sessions []*entities.Session) []Day {
	days := make([]Day, len(window))
	for i, date := range window {
		days[i] = Day{Date: date}
	}

	for _, session := range sessions {
		date, err := time.Parse(entities.DateLayout, session.Date)
		if err != nil {
			continue
		}
		for i := range days {
			if sameDay(days[i].Date, date) {
				days[i].Sessions = append(days[i].Sessions, session)
				break
			}
		}
	}

	return days
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
