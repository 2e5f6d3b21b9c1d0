package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// June 2025: the 16th is a Monday.
func instant(t *testing.T, day int, hour, minute int) time.Time {
	t.Helper()
	return time.Date(2025, time.June, day, hour, minute, 0, 0, time.UTC)
}

func TestIsWorkDay(t *testing.T) {
	cfg := validConfig()

	assert.True(t, cfg.IsWorkDay(instant(t, 18, 9, 0)), "Wednesday")
	assert.False(t, cfg.IsWorkDay(instant(t, 21, 9, 0)), "Saturday")
	assert.False(t, cfg.IsWorkDay(instant(t, 22, 9, 0)), "Sunday")

	// Custom work week: weekend follows the configuration, not Sat/Sun.
	cfg.WorkDays = []Weekday{{time.Saturday}, {time.Sunday}}
	assert.True(t, cfg.IsWorkDay(instant(t, 21, 9, 0)), "Saturday is a work day here")
	assert.False(t, cfg.IsWorkDay(instant(t, 18, 9, 0)), "Wednesday is off here")
}

func TestIsWorkHours(t *testing.T) {
	cfg := validConfig()

	assert.True(t, cfg.IsWorkHours(instant(t, 18, 8, 0)), "start inclusive")
	assert.True(t, cfg.IsWorkHours(instant(t, 18, 15, 59)))
	assert.False(t, cfg.IsWorkHours(instant(t, 18, 16, 0)), "end exclusive")
	assert.False(t, cfg.IsWorkHours(instant(t, 18, 7, 59)))
}

func TestIsLunch(t *testing.T) {
	cfg := validConfig()

	assert.True(t, cfg.IsLunch(instant(t, 18, 12, 0)))
	assert.True(t, cfg.IsLunch(instant(t, 18, 12, 59)))
	assert.False(t, cfg.IsLunch(instant(t, 18, 13, 0)))

	cfg.LunchBreak = TimeRange{}
	assert.False(t, cfg.IsLunch(instant(t, 18, 12, 30)), "no lunch window configured")
}

func TestInShortBreak(t *testing.T) {
	cfg := validConfig()
	cfg.ShortBreaks = []ShortBreak{
		{Time: TimeOfDay{Hour: 10}, DurationMinutes: 15},
		{Time: TimeOfDay{Hour: 14, Minute: 30}, DurationMinutes: 10},
	}

	brk, ok := cfg.InShortBreak(instant(t, 18, 10, 0))
	require.True(t, ok)
	assert.Equal(t, TimeOfDay{Hour: 10, Minute: 15}, brk.End())

	_, ok = cfg.InShortBreak(instant(t, 18, 10, 15))
	assert.False(t, ok, "break end is exclusive")

	brk, ok = cfg.InShortBreak(instant(t, 18, 14, 35))
	require.True(t, ok)
	assert.Equal(t, TimeOfDay{Hour: 14, Minute: 30}, brk.Time)

	_, ok = cfg.InShortBreak(instant(t, 18, 11, 0))
	assert.False(t, ok)
}

func TestHolidayOn(t *testing.T) {
	cfg := validConfig()
	cfg.Holidays = []Holiday{
		{Date: mustDate(t, "2025-06-18"), Message: "Midweek festival"},
	}

	h, ok := cfg.HolidayOn(instant(t, 18, 10, 0))
	require.True(t, ok)
	assert.Equal(t, "Midweek festival", h.Message)

	_, ok = cfg.HolidayOn(instant(t, 19, 10, 0))
	assert.False(t, ok)
}

func TestOnVacationInclusiveEndpoints(t *testing.T) {
	cfg := validConfig()
	cfg.Vacations = []DateRange{
		{Start: mustDate(t, "2025-06-16"), End: mustDate(t, "2025-06-20")},
	}

	assert.True(t, cfg.OnVacation(instant(t, 16, 0, 0)), "first day")
	assert.True(t, cfg.OnVacation(instant(t, 20, 23, 59)), "last day")
	assert.False(t, cfg.OnVacation(instant(t, 15, 12, 0)))
	assert.False(t, cfg.OnVacation(instant(t, 21, 0, 0)))
}

func TestOutOfOfficeDayRule(t *testing.T) {
	cfg := validConfig()
	friday := Weekday{time.Friday}
	cfg.OutOfOffice = []OOORule{{Day: &friday, Message: "Half day"}}

	rule, ok := cfg.OutOfOfficeAt(instant(t, 20, 3, 0))
	require.True(t, ok, "any time on Friday matches")
	assert.Equal(t, "Half day", rule.Message)

	_, ok = cfg.OutOfOfficeAt(instant(t, 19, 3, 0))
	assert.False(t, ok, "Thursday does not match")
}

func TestOutOfOfficeTimeRule(t *testing.T) {
	cfg := validConfig()
	tod := TimeOfDay{Hour: 15}
	cfg.OutOfOffice = []OOORule{{Time: &tod, DurationMinutes: 45}}

	_, ok := cfg.OutOfOfficeAt(instant(t, 18, 15, 0))
	assert.True(t, ok, "window start")
	_, ok = cfg.OutOfOfficeAt(instant(t, 18, 15, 44))
	assert.True(t, ok)
	_, ok = cfg.OutOfOfficeAt(instant(t, 18, 15, 45))
	assert.False(t, ok, "window end is exclusive")
}

func TestOutOfOfficeHourRangeRule(t *testing.T) {
	cfg := validConfig()
	cfg.OutOfOffice = []OOORule{{Hours: &TimeRange{
		Start: TimeOfDay{Hour: 18},
		End:   TimeOfDay{Hour: 20},
	}}}

	_, ok := cfg.OutOfOfficeAt(instant(t, 18, 18, 30))
	assert.True(t, ok)
	_, ok = cfg.OutOfOfficeAt(instant(t, 18, 20, 0))
	assert.False(t, ok)
}

func TestOutOfOfficeMatchHypothetical(t *testing.T) {
	cfg := validConfig()
	friday := Weekday{time.Friday}
	tod := TimeOfDay{Hour: 9}
	cfg.OutOfOffice = []OOORule{
		{Day: &friday},
		{Time: &tod, DurationMinutes: 30},
	}

	// Evaluating a hypothetical day/time independent of "now".
	_, ok := cfg.OutOfOfficeMatch(time.Friday, 0)
	assert.True(t, ok)
	_, ok = cfg.OutOfOfficeMatch(time.Monday, 9*60+10)
	assert.True(t, ok)
	_, ok = cfg.OutOfOfficeMatch(time.Monday, 10*60)
	assert.False(t, ok)
}
