package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/status-scheduler/statusd/internal/rules"
)

func deriveConfig() *rules.Config {
	return &rules.Config{
		WorkDays: []rules.Weekday{
			{Weekday: time.Monday},
			{Weekday: time.Tuesday},
			{Weekday: time.Wednesday},
			{Weekday: time.Thursday},
			{Weekday: time.Friday},
		},
		WorkHours: rules.TimeRange{
			Start: rules.TimeOfDay{Hour: 8},
			End:   rules.TimeOfDay{Hour: 16},
		},
		LunchBreak: rules.TimeRange{
			Start: rules.TimeOfDay{Hour: 12},
			End:   rules.TimeOfDay{Hour: 13},
		},
		ShortBreaks: []rules.ShortBreak{
			{Time: rules.TimeOfDay{Hour: 10}, DurationMinutes: 15},
		},
	}
}

func triggerByReason(t *testing.T, triggers []Trigger, reason string) []Trigger {
	t.Helper()
	var out []Trigger
	for _, trig := range triggers {
		if trig.Reason == reason {
			out = append(out, trig)
		}
	}
	return out
}

func TestDerive(t *testing.T) {
	triggers := Derive(deriveConfig())

	// work start/end, lunch start/end, break start/end, off-day, daily
	require.Len(t, triggers, 8)

	workDays := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	}

	ws := triggerByReason(t, triggers, ReasonWorkStart)
	require.Len(t, ws, 1)
	assert.Equal(t, rules.TimeOfDay{Hour: 8}, ws[0].At)
	assert.Equal(t, workDays, ws[0].Days)

	we := triggerByReason(t, triggers, ReasonWorkEnd)
	require.Len(t, we, 1)
	assert.Equal(t, rules.TimeOfDay{Hour: 16}, we[0].At)

	ls := triggerByReason(t, triggers, ReasonLunchStart)
	require.Len(t, ls, 1)
	assert.Equal(t, rules.TimeOfDay{Hour: 12}, ls[0].At)

	le := triggerByReason(t, triggers, ReasonLunchEnd)
	require.Len(t, le, 1)
	assert.Equal(t, rules.TimeOfDay{Hour: 13}, le[0].At)

	bs := triggerByReason(t, triggers, ReasonBreakStart)
	require.Len(t, bs, 1)
	assert.Equal(t, rules.TimeOfDay{Hour: 10}, bs[0].At)

	be := triggerByReason(t, triggers, ReasonBreakEnd)
	require.Len(t, be, 1)
	assert.Equal(t, rules.TimeOfDay{Hour: 10, Minute: 15}, be[0].At, "break end is start plus duration")

	off := triggerByReason(t, triggers, ReasonOffDay)
	require.Len(t, off, 1)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, off[0].Days, "off days are the work-day complement")
	assert.Equal(t, rules.TimeOfDay{}, off[0].At, "off-day trigger fires at midnight")

	daily := triggerByReason(t, triggers, ReasonDaily)
	require.Len(t, daily, 1)
	assert.Len(t, daily[0].Days, 7)
	assert.Equal(t, rules.TimeOfDay{}, daily[0].At)
}

func TestDeriveWithoutLunchOrBreaks(t *testing.T) {
	cfg := deriveConfig()
	cfg.LunchBreak = rules.TimeRange{}
	cfg.ShortBreaks = nil

	triggers := Derive(cfg)
	require.Len(t, triggers, 4)
	assert.Empty(t, triggerByReason(t, triggers, ReasonLunchStart))
	assert.Empty(t, triggerByReason(t, triggers, ReasonBreakStart))
}

func TestDeriveSevenDayWeekHasNoOffDayTrigger(t *testing.T) {
	cfg := deriveConfig()
	for _, d := range []time.Weekday{time.Saturday, time.Sunday} {
		cfg.WorkDays = append(cfg.WorkDays, rules.Weekday{Weekday: d})
	}

	triggers := Derive(cfg)
	assert.Empty(t, triggerByReason(t, triggers, ReasonOffDay))
	require.Len(t, triggerByReason(t, triggers, ReasonDaily), 1)
}
