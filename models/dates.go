package models

import (
	"fmt"
	"sort"
	"time"
)

// DayFormat is the wire and storage format for calendar days. Bookings are
// compared at day granularity; time-of-day and timezone never reach the
// database.
const DayFormat = "2006-01-02"

// ParseDay normalizes a client-supplied date to a DayFormat string. It
// accepts bare days and RFC 3339 timestamps, truncating the latter to UTC
// day granularity.
func ParseDay(s string) (string, error) {
	if t, err := time.Parse(DayFormat, s); err == nil {
		return t.Format(DayFormat), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format(DayFormat), nil
	}
	return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
}

// NormalizeDays parses every entry, de-duplicates and sorts ascending.
// Day strings sort chronologically, so plain string order is date order.
func NormalizeDays(in []string) ([]string, error) {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		day, err := ParseDay(s)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		out = append(out, day)
	}
	sort.Strings(out)
	return out, nil
}

// DaySet builds a membership set from normalized day strings.
func DaySet(days []string) map[string]struct{} {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// MissingDays returns the entries of want absent from have, in order.
func MissingDays(want, have []string) []string {
	set := DaySet(have)
	var missing []string
	for _, d := range want {
		if _, ok := set[d]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

// DayReached reports whether the calendar day of now is on or after the
// given DayFormat day. A malformed stored day counts as reached so a
// corrupt record can never pass a cancellation-window check.
func DayReached(day string, now time.Time) bool {
	t, err := time.Parse(DayFormat, day)
	if err != nil {
		return true
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !today.Before(t)
}
