package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8, tod.Hour)
	assert.Equal(t, 30, tod.Minute)
	assert.Equal(t, 510, tod.MinuteOfDay())
	assert.Equal(t, "08:30", tod.String())

	_, err = ParseTimeOfDay("8:30pm")
	assert.Error(t, err)

	_, err = ParseTimeOfDay("25:00")
	assert.Error(t, err)
}

func TestTimeOfDayAdd(t *testing.T) {
	tod := TimeOfDay{Hour: 10, Minute: 45}
	end := tod.Add(30)
	assert.Equal(t, TimeOfDay{Hour: 11, Minute: 15}, end)

	// Crossing midnight is representable; validation rejects it where it
	// matters.
	late := TimeOfDay{Hour: 23, Minute: 50}.Add(20)
	assert.Equal(t, 24*60+10, late.MinuteOfDay())
}

func TestTimeRangeContainsIsHalfOpen(t *testing.T) {
	r := TimeRange{
		Start: TimeOfDay{Hour: 8},
		End:   TimeOfDay{Hour: 16},
	}

	assert.True(t, r.Contains(8*60), "start is included")
	assert.True(t, r.Contains(15*60+59))
	assert.False(t, r.Contains(16*60), "end is excluded")
	assert.False(t, r.Contains(7*60+59))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-12-25")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", d.String())
	assert.True(t, d.SameDay(time.Date(2025, time.December, 25, 10, 0, 0, 0, time.UTC)))
	assert.False(t, d.SameDay(time.Date(2025, time.December, 26, 0, 0, 0, 0, time.UTC)))

	_, err = ParseDate("25/12/2025")
	assert.Error(t, err)
}

func TestParseWeekday(t *testing.T) {
	for name, want := range map[string]time.Weekday{
		"monday":   time.Monday,
		"Friday":   time.Friday,
		" SUNDAY ": time.Sunday,
	} {
		day, err := ParseWeekday(name)
		require.NoError(t, err)
		assert.Equal(t, want, day.Weekday)
	}

	_, err := ParseWeekday("someday")
	assert.Error(t, err)
}

func TestDateRangeContainsInclusive(t *testing.T) {
	r := DateRange{
		Start: mustDate(t, "2025-07-01"),
		End:   mustDate(t, "2025-07-15"),
	}

	assert.True(t, r.Contains(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)), "start date is inclusive")
	assert.True(t, r.Contains(time.Date(2025, time.July, 15, 23, 59, 0, 0, time.UTC)), "end date is inclusive")
	assert.True(t, r.Contains(time.Date(2025, time.July, 8, 12, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.June, 30, 23, 59, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2025, time.July, 16, 0, 0, 0, 0, time.UTC)))
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}
