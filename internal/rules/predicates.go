package rules

import "time"

// IsWorkDay reports whether t falls on a configured work day.
func (c *Config) IsWorkDay(t time.Time) bool {
	for _, d := range c.WorkDays {
		if d.Weekday == t.Weekday() {
			return true
		}
	}
	return false
}

// IsWorkHours reports whether t's minute of day falls inside the work-hours
// window. It says nothing about the day; combine with IsWorkDay.
func (c *Config) IsWorkHours(t time.Time) bool {
	return c.WorkHours.Contains(minuteOf(t))
}

// IsLunch reports whether t falls inside the lunch window.
func (c *Config) IsLunch(t time.Time) bool {
	if c.LunchBreak.IsZero() {
		return false
	}
	return c.LunchBreak.Contains(minuteOf(t))
}

// InShortBreak returns the short break covering t, if any.
func (c *Config) InShortBreak(t time.Time) (ShortBreak, bool) {
	minute := minuteOf(t)
	for _, b := range c.ShortBreaks {
		if minute >= b.Time.MinuteOfDay() && minute < b.End().MinuteOfDay() {
			return b, true
		}
	}
	return ShortBreak{}, false
}

// HolidayOn returns the holiday entry matching t's calendar date, if any.
func (c *Config) HolidayOn(t time.Time) (Holiday, bool) {
	for _, h := range c.Holidays {
		if h.Date.SameDay(t) {
			return h, true
		}
	}
	return Holiday{}, false
}

// OnVacation reports whether t's calendar date falls inside any vacation
// period. Both endpoints are inclusive.
func (c *Config) OnVacation(t time.Time) bool {
	for _, v := range c.Vacations {
		if v.Contains(t) {
			return true
		}
	}
	return false
}

// OutOfOfficeAt returns the first out-of-office rule matching t, if any.
func (c *Config) OutOfOfficeAt(t time.Time) (OOORule, bool) {
	return c.OutOfOfficeMatch(t.Weekday(), minuteOf(t))
}

// OutOfOfficeMatch evaluates the out-of-office rules against a hypothetical
// weekday and minute of day, independent of "now". Trigger firings use this
// to re-check rules at the fired instant rather than at derivation time.
func (c *Config) OutOfOfficeMatch(day time.Weekday, minuteOfDay int) (OOORule, bool) {
	for _, rule := range c.OutOfOffice {
		switch {
		case rule.Day != nil:
			if rule.Day.Weekday == day {
				return rule, true
			}
		case rule.Time != nil:
			start := rule.Time.MinuteOfDay()
			if minuteOfDay >= start && minuteOfDay < start+rule.DurationMinutes {
				return rule, true
			}
		case rule.Hours != nil:
			if rule.Hours.Contains(minuteOfDay) {
				return rule, true
			}
		}
	}
	return OOORule{}, false
}
