package status

import (
	"time"

	"github.com/status-scheduler/statusd/internal/rules"
)

// lunchDuration is how long a lunch status stays up before expiring.
const lunchDuration = time.Hour

// Resolver is the precedence engine converting an instant into a Decision.
// It is stateless apart from the emoji selector's random source and safe to
// call from concurrent trigger firings.
type Resolver struct {
	cfg    *rules.Config
	emojis *Selector
}

// NewResolver builds a resolver over an immutable rule config.
func NewResolver(cfg *rules.Config, emojis *Selector) *Resolver {
	return &Resolver{cfg: cfg, emojis: emojis}
}

// Resolve decides the status for the given instant. The precedence is a
// strict total order evaluated top to bottom, so exactly one branch fires:
// out-of-office, holiday, vacation, non-work day, then within work hours
// lunch, short break or active, and finally off-hours away. Missing
// messages or emoji lists fall back to built-in defaults, never to an error.
func (r *Resolver) Resolve(now time.Time) Decision {
	if rule, ok := r.cfg.OutOfOfficeAt(now); ok {
		d := r.decide(KindOutOfOffice, now, PresenceAway)
		if rule.Message != "" {
			d.Text = rule.Message
		}
		return d
	}

	if holiday, ok := r.cfg.HolidayOn(now); ok {
		d := r.decide(KindHoliday, now, PresenceAway)
		if holiday.Message != "" {
			d.Text = holiday.Message
		}
		return d
	}

	if r.cfg.OnVacation(now) {
		return r.decide(KindVacation, now, PresenceAway)
	}

	if !r.cfg.IsWorkDay(now) {
		return r.decide(KindWeekend, now, PresenceAway)
	}

	if r.cfg.IsWorkHours(now) {
		if r.cfg.IsLunch(now) {
			d := r.decide(KindLunch, now, PresenceAuto)
			d.ExpiresAt = now.Add(lunchDuration)
			return d
		}
		if brk, ok := r.cfg.InShortBreak(now); ok {
			d := r.decide(KindShortBreak, now, PresenceAuto)
			end := brk.End()
			d.ExpiresAt = time.Date(now.Year(), now.Month(), now.Day(),
				end.Hour, end.Minute, 0, 0, now.Location())
			return d
		}
		return r.decide(KindActive, now, PresenceAuto)
	}

	return r.decide(KindAway, now, PresenceAway)
}

// decide assembles a Decision for a kind, applying configured or default
// text and an emoji pick.
func (r *Resolver) decide(kind Kind, now time.Time, presence Presence) Decision {
	text := r.cfg.Messages[string(kind)]
	if text == "" {
		text = defaultMessages[kind]
	}
	return Decision{
		Kind:     kind,
		Text:     text,
		Emoji:    r.emojis.Pick(kind, now),
		Presence: presence,
	}
}
