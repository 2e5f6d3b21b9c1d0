// Package schedule derives the concrete trigger instants from the rule
// configuration and drives the cron runner that re-resolves status at each
// of them.
package schedule

import (
	"time"

	"github.com/status-scheduler/statusd/internal/rules"
)

// Trigger reasons, used for logging and the schedule API.
const (
	ReasonWorkStart  = "work-start"
	ReasonWorkEnd    = "work-end"
	ReasonLunchStart = "lunch-start"
	ReasonLunchEnd   = "lunch-end"
	ReasonBreakStart = "break-start"
	ReasonBreakEnd   = "break-end"
	ReasonOffDay     = "off-day"
	ReasonDaily      = "daily"
)

// Trigger is a structured trigger spec: the set of weekdays and the time of
// day at which the resolver must be re-invoked. No cron expression strings
// are built from it; the runner turns it directly into a cron schedule.
type Trigger struct {
	Days   []time.Weekday  `json:"days"`
	At     rules.TimeOfDay `json:"at"`
	Reason string          `json:"reason"`
}

// Derive expands the rule config into the full ordered trigger set:
// work start/end, lunch start/end, every short break's start and computed
// end on work days, one midnight trigger on non-work days, and one
// unconditional daily midnight trigger. The decision taken at each firing
// is always resolved freshly, so a work-day trigger landing on a holiday
// still yields the holiday status.
func Derive(cfg *rules.Config) []Trigger {
	workDays := make([]time.Weekday, 0, len(cfg.WorkDays))
	for _, d := range cfg.WorkDays {
		workDays = append(workDays, d.Weekday)
	}
	offDays := complementDays(workDays)

	triggers := []Trigger{
		{Days: workDays, At: cfg.WorkHours.Start, Reason: ReasonWorkStart},
		{Days: workDays, At: cfg.WorkHours.End, Reason: ReasonWorkEnd},
	}

	if !cfg.LunchBreak.IsZero() {
		triggers = append(triggers,
			Trigger{Days: workDays, At: cfg.LunchBreak.Start, Reason: ReasonLunchStart},
			Trigger{Days: workDays, At: cfg.LunchBreak.End, Reason: ReasonLunchEnd},
		)
	}

	for _, b := range cfg.ShortBreaks {
		triggers = append(triggers,
			Trigger{Days: workDays, At: b.Time, Reason: ReasonBreakStart},
			Trigger{Days: workDays, At: b.End(), Reason: ReasonBreakEnd},
		)
	}

	midnight := rules.TimeOfDay{}
	if len(offDays) > 0 {
		triggers = append(triggers, Trigger{Days: offDays, At: midnight, Reason: ReasonOffDay})
	}
	triggers = append(triggers, Trigger{Days: allDays(), At: midnight, Reason: ReasonDaily})

	return triggers
}

// complementDays returns the weekdays not present in days.
func complementDays(days []time.Weekday) []time.Weekday {
	in := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		in[d] = true
	}
	var out []time.Weekday
	for _, d := range allDays() {
		if !in[d] {
			out = append(out, d)
		}
	}
	return out
}

func allDays() []time.Weekday {
	return []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
}
