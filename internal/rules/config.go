package rules

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the declarative rule set driving status decisions. It is loaded
// once at startup and treated as immutable for the process lifetime.
type Config struct {
	// Timezone is the IANA zone all rules are evaluated in.
	// Empty means the system local zone.
	Timezone string `yaml:"timezone"`

	WorkDays   []Weekday `yaml:"work_days"`
	WorkHours  TimeRange `yaml:"work_hours"`
	LunchBreak TimeRange `yaml:"lunch_break"`

	ShortBreaks []ShortBreak `yaml:"short_breaks"`

	Holidays  []Holiday   `yaml:"holidays"`
	Vacations []DateRange `yaml:"vacations"`

	OutOfOffice []OOORule `yaml:"out_of_office"`

	// Messages and Emojis are keyed by status kind (e.g. "active", "lunch").
	// Missing keys fall back to built-in defaults at resolution time.
	Messages map[string]string   `yaml:"messages"`
	Emojis   map[string][]string `yaml:"emojis"`

	// EmojiStrategy selects how an emoji is picked from a kind's candidate
	// set: "per-call" (default) rerolls on every evaluation, "daily" is
	// stable for a calendar date.
	EmojiStrategy string `yaml:"emoji_strategy"`

	Accounts []AccountSpec `yaml:"accounts"`
}

// ShortBreak is a recurring intra-day break window.
type ShortBreak struct {
	Time            TimeOfDay `yaml:"time"`
	DurationMinutes int       `yaml:"duration_minutes"`
}

// End returns the computed end of the break window.
func (b ShortBreak) End() TimeOfDay {
	return b.Time.Add(b.DurationMinutes)
}

// Holiday is a single-day exception with an optional custom message.
type Holiday struct {
	Date    Date   `yaml:"date"`
	Message string `yaml:"message"`
}

// DateRange is an inclusive calendar date range.
type DateRange struct {
	Start Date `yaml:"start"`
	End   Date `yaml:"end"`
}

// Contains reports whether t's calendar date falls inside the range,
// inclusive at both endpoints.
func (r DateRange) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(r.Start.Time) && !day.After(r.End.Time)
}

// OOORule is an out-of-office exception. Exactly one of Day, Time or Hours
// selects the window; Message optionally overrides the status text.
type OOORule struct {
	Day             *Weekday   `yaml:"day"`
	Time            *TimeOfDay `yaml:"time"`
	DurationMinutes int        `yaml:"duration_minutes"`
	Hours           *TimeRange `yaml:"hours"`
	Message         string     `yaml:"message"`
}

// AccountSpec names a connected account and the environment variable
// holding its API token.
type AccountSpec struct {
	Name     string `yaml:"name"`
	TokenEnv string `yaml:"token_env"`
}

// Load reads and validates the rule configuration at the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rule config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for the malformed shapes that would
// otherwise only surface mid-resolution. It is called by Load; exported for
// configs built in code.
func (c *Config) Validate() error {
	if len(c.WorkDays) == 0 {
		return fmt.Errorf("work_days must list at least one day")
	}
	seen := make(map[time.Weekday]bool, len(c.WorkDays))
	for _, d := range c.WorkDays {
		if seen[d.Weekday] {
			return fmt.Errorf("work_days lists %s twice", d.Weekday)
		}
		seen[d.Weekday] = true
	}

	if c.WorkHours.IsZero() {
		return fmt.Errorf("work_hours is required")
	}
	if err := validateRange("work_hours", c.WorkHours); err != nil {
		return err
	}
	if !c.LunchBreak.IsZero() {
		if err := validateRange("lunch_break", c.LunchBreak); err != nil {
			return err
		}
	}

	for i, b := range c.ShortBreaks {
		if b.DurationMinutes <= 0 {
			return fmt.Errorf("short_breaks[%d]: duration_minutes must be positive", i)
		}
		if b.End().MinuteOfDay() > 24*60 {
			return fmt.Errorf("short_breaks[%d]: break starting %s must not cross midnight", i, b.Time)
		}
	}

	for i, v := range c.Vacations {
		if v.End.Before(v.Start.Time) {
			return fmt.Errorf("vacations[%d]: end %s before start %s", i, v.End, v.Start)
		}
	}

	for i, rule := range c.OutOfOffice {
		selectors := 0
		if rule.Day != nil {
			selectors++
		}
		if rule.Time != nil {
			selectors++
			if rule.DurationMinutes <= 0 {
				return fmt.Errorf("out_of_office[%d]: time rule needs a positive duration_minutes", i)
			}
			if rule.Time.Add(rule.DurationMinutes).MinuteOfDay() > 24*60 {
				return fmt.Errorf("out_of_office[%d]: window starting %s must not cross midnight", i, rule.Time)
			}
		}
		if rule.Hours != nil {
			selectors++
			if err := validateRange(fmt.Sprintf("out_of_office[%d].hours", i), *rule.Hours); err != nil {
				return err
			}
		}
		if selectors != 1 {
			return fmt.Errorf("out_of_office[%d]: exactly one of day, time or hours must be set", i)
		}
	}

	for kind, list := range c.Emojis {
		if len(list) == 0 {
			return fmt.Errorf("emojis[%s]: candidate list must not be empty", kind)
		}
	}

	switch c.EmojiStrategy {
	case "", "per-call", "daily":
	default:
		return fmt.Errorf("emoji_strategy must be %q or %q, got %q", "per-call", "daily", c.EmojiStrategy)
	}

	for i, a := range c.Accounts {
		if a.Name == "" {
			return fmt.Errorf("accounts[%d]: name is required", i)
		}
		if a.TokenEnv == "" {
			return fmt.Errorf("accounts[%d] (%s): token_env is required", i, a.Name)
		}
	}

	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("timezone: %w", err)
		}
	}

	return nil
}

// Location returns the configured evaluation timezone.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		// Validate rejects unknown zones, so this only happens for
		// configs that skipped validation.
		return time.Local
	}
	return loc
}

func validateRange(field string, r TimeRange) error {
	if r.Start.MinuteOfDay() >= r.End.MinuteOfDay() {
		return fmt.Errorf("%s: start %s must be before end %s", field, r.Start, r.End)
	}
	return nil
}
