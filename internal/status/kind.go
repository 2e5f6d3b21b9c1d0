// Package status implements the status decision core: the precedence engine
// turning an instant plus the rule configuration into exactly one Decision,
// and the emoji selection that goes with it.
package status

import "time"

// Kind classifies a decided status.
type Kind string

const (
	KindActive      Kind = "active"
	KindAway        Kind = "away"
	KindLunch       Kind = "lunch"
	KindShortBreak  Kind = "short_break"
	KindHoliday     Kind = "holiday"
	KindVacation    Kind = "vacation"
	KindWeekend     Kind = "weekend"
	KindOutOfOffice Kind = "out_of_office"
)

// Presence is the remote presence state accompanying a decision.
type Presence string

const (
	PresenceAuto Presence = "auto"
	PresenceAway Presence = "away"
)

// Decision is the immutable outcome of a single resolution: the status to
// present across all accounts. A zero ExpiresAt means no expiration.
type Decision struct {
	Kind      Kind      `json:"kind"`
	Text      string    `json:"text"`
	Emoji     string    `json:"emoji"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Presence  Presence  `json:"presence"`
}

// ExpirationEpoch returns the decision's expiration as epoch seconds,
// with 0 meaning no expiration. This is the wire shape status APIs expect.
func (d Decision) ExpirationEpoch() int64 {
	if d.ExpiresAt.IsZero() {
		return 0
	}
	return d.ExpiresAt.Unix()
}

// defaultMessages backs every kind so resolution never fails on a missing
// messages entry.
var defaultMessages = map[Kind]string{
	KindActive:      "Working",
	KindAway:        "Away from my desk",
	KindLunch:       "Out for lunch",
	KindShortBreak:  "Taking a short break",
	KindHoliday:     "Out for the holiday",
	KindVacation:    "On vacation",
	KindWeekend:     "Enjoying the weekend",
	KindOutOfOffice: "Out of office",
}

// defaultEmojis backs every kind so resolution never fails on a missing
// emojis entry.
var defaultEmojis = map[Kind][]string{
	KindActive:      {":computer:", ":nerd_face:", ":coffee:"},
	KindAway:        {":wave:", ":door:"},
	KindLunch:       {":fork_and_knife:", ":bento:", ":taco:"},
	KindShortBreak:  {":coffee:", ":tea:"},
	KindHoliday:     {":tada:", ":palm_tree:"},
	KindVacation:    {":palm_tree:", ":beach_with_umbrella:", ":airplane:"},
	KindWeekend:     {":sunny:", ":tent:"},
	KindOutOfOffice: {":no_entry:", ":house:"},
}
