package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evelinastr/trainingclub/internal/client/schedule"
	"github.com/evelinastr/trainingclub/internal/domain/entities"
)

func TestWindow(t *testing.T) {
	seed := time.Date(2026, time.June, 3, 14, 30, 0, 0, time.UTC)
	window := schedule.Window(seed)

	require.Len(t, window, 7)
	assert.Equal(t, time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC), window[0])
	assert.Equal(t, time.Date(2026, time.June, 9, 0, 0, 0, 0, time.UTC), window[6])

	t.Run("crosses month boundaries", func(t *testing.T) {
		window := schedule.Window(time.Date(2026, time.June, 29, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, time.July, window[6].Month())
		assert.Equal(t, 5, window[6].Day())
	})
}

func TestRangeParams(t *testing.T) {
	start, end := schedule.RangeParams(time.Date(2026, time.June, 3, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2026-06-03", start)
	assert.Equal(t, "2026-06-09", end)
}

func TestGroup(t *testing.T) {
	window := schedule.Window(time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC))

	sessions := []*entities.Session{
		{ID: 1, Date: "2026-06-03", Time: "09:00"},
		{ID: 2, Date: "2026-06-03", Time: "17:00"},
		{ID: 3, Date: "2026-06-05", Time: "12:00"},
		{ID: 4, Date: "2026-06-20", Time: "12:00"}, // outside the window
		{ID: 5, Date: "garbage", Time: "12:00"},    // unparseable
	}

	days := schedule.Group(window, sessions)
	require.Len(t, days, 7)

	assert.Len(t, days[0].Sessions, 2)
	assert.Len(t, days[2].Sessions, 1)
	assert.Equal(t, int64(3), days[2].Sessions[0].ID)

	t.Run("days without sessions stay empty", func(t *testing.T) {
		assert.Empty(t, days[1].Sessions)
		assert.Empty(t, days[6].Sessions)
	})

	t.Run("out-of-window and unparseable sessions are dropped", func(t *testing.T) {
		total := 0
		for _, day := range days {
			total += len(day.Sessions)
		}
		assert.Equal(t, 3, total)
	})
}
