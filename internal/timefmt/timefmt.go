// Package timefmt renders timestamps as human time buckets ("12m ago",
// "Yesterday", "3d ago"). Calendar-day boundaries are computed in a
// fixed UTC-7 zone (Denver, without daylight-saving adjustment) so the
// output is identical regardless of where the process runs: two instants
// under 24 raw hours apart report "Yesterday" when they straddle local
// midnight in that zone.
package timefmt

import (
	"fmt"
	"strings"
	"time"
)

// DefaultDateFormat is the layout used for timestamps a week old or more.
const DefaultDateFormat = "Jan 2, 2006"

// DefaultTZOffsetHours is the fixed UTC offset for day boundaries.
const DefaultTZOffsetHours = -7

// Formatter buckets timestamps relative to an explicit "now".
type Formatter struct {
	loc        *time.Location
	dateFormat string
}

// New creates a Formatter with day boundaries at the given fixed UTC
// offset and the given date layout for week-plus-old timestamps.
func New(tzOffsetHours int, dateFormat string) *Formatter {
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}
	name := fmt.Sprintf("UTC%+d", tzOffsetHours)
	return &Formatter{
		loc:        time.FixedZone(name, tzOffsetHours*3600),
		dateFormat: dateFormat,
	}
}

var defaultFormatter = New(DefaultTZOffsetHours, DefaultDateFormat)

// FormatTimeSince renders iso relative to now using the default UTC-7
// formatter.
func FormatTimeSince(iso string, now time.Time) string {
	return defaultFormatter.FormatTimeSince(iso, now)
}

// FormatTimeSince renders an ISO timestamp as a human time bucket.
// Timestamps without a zone suffix are treated as UTC. Malformed input
// is returned unchanged rather than reported as an error; the string is
// display data either way.
func (f *Formatter) FormatTimeSince(iso string, now time.Time) string {
	t, ok := parseISO(iso)
	if !ok {
		return iso
	}

	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}
	if diff < time.Hour {
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	}

	then := t.In(f.loc)
	ref := now.In(f.loc)
	switch days := calendarDaysBetween(then, ref); {
	case days <= 0:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case days == 1:
		return "Yesterday"
	case days <= 6:
		return fmt.Sprintf("%dd ago", days)
	default:
		return then.Format(f.dateFormat)
	}
}

// calendarDaysBetween counts whole calendar days from "from" to "to",
// both already in the target zone. The zone is a fixed offset, so every
// day is exactly 24 hours.
func calendarDaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(t.Sub(f) / (24 * time.Hour))
}

func parseISO(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	candidate := s
	if !hasZoneSuffix(s) {
		candidate = s + "Z"
	}
	t, err := time.Parse(time.RFC3339, candidate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// hasZoneSuffix reports whether an ISO timestamp carries an explicit
// zone ("Z" or a +hh:mm / -hh:mm offset after the time portion).
func hasZoneSuffix(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	i := strings.IndexByte(s, 'T')
	if i < 0 {
		return false
	}
	return strings.ContainsAny(s[i+1:], "+-")
}
