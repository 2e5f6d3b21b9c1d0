// Package rules defines the declarative status rule configuration and the
// pure time predicates evaluated against it.
package rules

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// TimeOfDay is a wall-clock time at minute granularity.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time %q (want HH:MM): %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MinuteOfDay returns the number of minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// Add returns the time of day the given number of minutes later.
// The result may exceed the day boundary; callers that care check MinuteOfDay.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	total := t.MinuteOfDay() + minutes
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// UnmarshalYAML decodes a "HH:MM" scalar.
func (t *TimeOfDay) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the time back to "HH:MM".
func (t TimeOfDay) MarshalYAML() (any, error) {
	return t.String(), nil
}

// TimeRange is a half-open [Start, End) window within a single day.
type TimeRange struct {
	Start TimeOfDay `yaml:"start" json:"start"`
	End   TimeOfDay `yaml:"end" json:"end"`
}

// Contains reports whether the given minute-of-day falls inside the range.
func (r TimeRange) Contains(minuteOfDay int) bool {
	return minuteOfDay >= r.Start.MinuteOfDay() && minuteOfDay < r.End.MinuteOfDay()
}

// IsZero reports whether the range was left unset.
func (r TimeRange) IsZero() bool {
	return r.Start == (TimeOfDay{}) && r.End == (TimeOfDay{})
}

// Date is a calendar date without a time component.
type Date struct {
	time.Time
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return Date{Time: t}, nil
}

// SameDay reports whether t falls on this calendar date.
func (d Date) SameDay(t time.Time) bool {
	y1, m1, d1 := d.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// UnmarshalYAML decodes a "YYYY-MM-DD" scalar.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the date back to "YYYY-MM-DD".
func (d Date) MarshalYAML() (any, error) {
	return d.String(), nil
}

// Weekday wraps time.Weekday with YAML name parsing.
type Weekday struct {
	time.Weekday
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday parses a case-insensitive English weekday name.
func ParseWeekday(s string) (Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Weekday{}, fmt.Errorf("unknown weekday %q", s)
	}
	return Weekday{Weekday: day}, nil
}

// UnmarshalYAML decodes a weekday name scalar.
func (w *Weekday) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalYAML encodes the weekday as its lowercase name.
func (w Weekday) MarshalYAML() (any, error) {
	return strings.ToLower(w.Weekday.String()), nil
}

// minuteOf returns the minute-of-day for an instant.
func minuteOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
