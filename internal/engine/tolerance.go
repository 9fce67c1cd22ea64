package engine

import (
	"strconv"
	"strings"
	"time"
)

// DefaultToleranceMinutes is applied when a frequency config carries
// scheduled times but no explicit tolerance.
const DefaultToleranceMinutes = 30

// IsTimeWithinTolerance reports whether loggedAt falls inside the
// tolerance window around scheduledTime ("HH:MM") on targetDate's
// calendar day. The scheduled wall-clock time is interpreted in the
// given IANA zone, so the window follows DST shifts. The window is
// inclusive on both ends; a negative tolerance narrows it past the
// scheduled instant and nothing matches.
func IsTimeWithinTolerance(loggedAt, targetDate time.Time, scheduledTime, timezoneID string, toleranceMinutes int) bool {
	hour, minute, ok := parseClock(scheduledTime)
	if !ok {
		return false
	}
	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		return false
	}
	scheduled := time.Date(targetDate.Year(), targetDate.Month(), targetDate.Day(), hour, minute, 0, 0, loc)
	tol := time.Duration(toleranceMinutes) * time.Minute
	lower := scheduled.Add(-tol)
	upper := scheduled.Add(tol)
	return !loggedAt.Before(lower) && !loggedAt.After(upper)
}

// ValidClock reports whether s is a well-formed "HH:MM" wall-clock time.
func ValidClock(s string) bool {
	hour, minute, ok := parseClock(s)
	if !ok {
		return false
	}
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// parseClock splits "HH:MM" into its two integer components. Values out
// of clock range are not rejected here; time.Date normalizes them.
func parseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}
