package timeutil

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DateLayout is the YYYY-MM-DD layout used for flags and logs.
const DateLayout = "2006-01-02"

// DefaultTimezone is the zone reports are dated in unless configured otherwise.
const DefaultTimezone = "America/New_York"

// LoadLocation resolves name, falling back to UTC when it cannot be loaded.
func LoadLocation(name string) *time.Location {
	if name == "" {
		name = DefaultTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.UTC
}

// Yesterday returns midnight of the calendar day before now, as observed in loc.
func Yesterday(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day()-1, 0, 0, 0, 0, loc)
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", raw, err)
	}
	return t, nil
}
