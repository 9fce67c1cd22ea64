package engine

import (
	"time"

	"github.com/limbo/habinook/pkg/entity"
)

// IsActiveOnDate reports whether date lies inside the frequency's
// [activeFrom, activeUntil] window, end inclusive. Both bounds are
// compared at day granularity.
func IsActiveOnDate(freq *entity.Frequency, date time.Time) bool {
	if date.Before(startOfDay(freq.ActiveFrom)) {
		return false
	}
	if freq.ActiveUntil != nil && date.After(endOfDay(*freq.ActiveUntil)) {
		return false
	}
	return true
}

// IsDueOnDate reports whether the habit is due on the given calendar
// date. times_per_period frequencies are due on every active date; the
// per-period quota only matters for streak reconstruction, which asks
// a different question ("was the period satisfied").
func IsDueOnDate(freq *entity.Frequency, date time.Time) bool {
	if !IsActiveOnDate(freq, date) {
		return false
	}
	switch freq.Type {
	case entity.FrequencyDaily:
		return true
	case entity.FrequencyDaysOfWeek:
		dow := int(date.Weekday())
		for _, d := range freq.Config.Days {
			if d == dow {
				return true
			}
		}
		return false
	case entity.FrequencyTimesPerPeriod:
		return true
	case entity.FrequencyEveryXPeriod:
		if freq.Config.Interval < 1 {
			return false
		}
		diffDays := int(startOfDay(date).Sub(startOfDay(freq.ActiveFrom)).Hours() / 24)
		if freq.Config.Period == entity.PeriodDay {
			return diffDays%freq.Config.Interval == 0
		}
		// Deliberate approximation: months and years are treated as 30
		// and 365 days for due-date display. Streak reconstruction uses
		// exact calendar stepping instead.
		var factor int
		switch freq.Config.Period {
		case entity.PeriodWeek:
			factor = 7
		case entity.PeriodMonth:
			factor = 30
		case entity.PeriodYear:
			factor = 365
		default:
			return false
		}
		return diffDays%(freq.Config.Interval*factor) == 0
	default:
		return false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
