package schedule

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// triggerSchedule adapts a Trigger to cron's Schedule interface so triggers
// are registered as structured values rather than formatted expressions.
type triggerSchedule struct {
	days   map[time.Weekday]bool
	hour   int
	minute int
}

func newTriggerSchedule(t Trigger) triggerSchedule {
	days := make(map[time.Weekday]bool, len(t.Days))
	for _, d := range t.Days {
		days[d] = true
	}
	return triggerSchedule{days: days, hour: t.At.Hour, minute: t.At.Minute}
}

// Next returns the next instant strictly after t at which the trigger fires.
func (s triggerSchedule) Next(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day(), s.hour, s.minute, 0, 0, t.Location())
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	for i := 0; i < 7; i++ {
		if s.days[next.Weekday()] {
			return next
		}
		next = next.AddDate(0, 0, 1)
	}
	// Empty day set; never fires.
	return time.Time{}
}

// Runner owns the cron instance firing the derived triggers. Each firing
// calls the supplied callback with the trigger that fired; the callback is
// expected to resolve a fresh decision at the current time.
type Runner struct {
	cron     *cron.Cron
	triggers []Trigger
	fire     func(Trigger)
}

// NewRunner creates a runner for the given trigger set in the given
// location.
func NewRunner(triggers []Trigger, loc *time.Location, fire func(Trigger)) *Runner {
	if loc == nil {
		loc = time.Local
	}
	return &Runner{
		cron:     cron.New(cron.WithLocation(loc)),
		triggers: triggers,
		fire:     fire,
	}
}

// Triggers returns the trigger set the runner was built with.
func (r *Runner) Triggers() []Trigger {
	return r.triggers
}

// Start registers every trigger and begins the cron loop.
func (r *Runner) Start() {
	log.Printf("Starting status trigger runner with %d triggers...", len(r.triggers))
	for _, t := range r.triggers {
		trigger := t
		r.cron.Schedule(newTriggerSchedule(trigger), cron.FuncJob(func() {
			r.fire(trigger)
		}))
	}
	r.cron.Start()
	log.Println("Status trigger runner started")
}

// Stop gracefully shuts the runner down, waiting for an in-flight firing.
func (r *Runner) Stop() {
	log.Println("Stopping status trigger runner...")
	ctx := r.cron.Stop()
	<-ctx.Done()
	log.Println("Status trigger runner stopped")
}
