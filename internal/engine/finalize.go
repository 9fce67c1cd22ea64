package engine

import (
	"errors"
	"math"
	"time"

	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/pkg/entity"
)

// FinalizeActiveStreak decides whether the most recent streak is still
// open. If "now", seen in the frequency's timezone, is within one grace
// occasion of the last completion, the last streak's end date is
// cleared to mark it active. Earlier streaks are never touched. The
// timezone is a hard precondition here: finalizing without it would
// persist a wrong streak state, so its absence is an error rather than
// a guess.
func FinalizeActiveStreak(streaks []entity.Streak, freqType entity.FrequencyType, cfg *entity.FrequencyConfig, timezoneID string, now time.Time) ([]entity.Streak, error) {
	if timezoneID == "" {
		return nil, errorvalues.ErrMissingTimezone
	}
	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		return nil, errors.New("loading timezone error: " + err.Error())
	}
	out := make([]entity.Streak, len(streaks))
	copy(out, streaks)
	if len(out) == 0 {
		return out, nil
	}
	last := &out[len(out)-1]
	if last.EndDate == nil {
		return out, nil
	}
	if isStreakActive(*last.EndDate, freqType, cfg, loc, now) {
		last.EndDate = nil
	}
	return out, nil
}

func isStreakActive(lastCompleted time.Time, freqType entity.FrequencyType, cfg *entity.FrequencyConfig, loc *time.Location, now time.Time) bool {
	today := startOfDay(now.In(loc))
	last := startOfDay(lastCompleted.In(loc))

	switch freqType {
	case entity.FrequencyDaily:
		dayDiff := int(math.Round(today.Sub(last).Hours() / 24))
		return dayDiff <= 1

	case entity.FrequencyDaysOfWeek:
		if sameCalendarDay(last, today) {
			return true
		}
		days := make(map[int]bool, len(cfg.Days))
		for _, d := range cfg.Days {
			days[d] = true
		}
		next := nextScheduledWeekday(last, days)
		return !next.IsZero() && sameCalendarDay(next, today)

	case entity.FrequencyTimesPerPeriod:
		lastBucket := localPeriodStart(last, cfg.Period)
		todayBucket := localPeriodStart(today, cfg.Period)
		if sameCalendarDay(lastBucket, todayBucket) {
			return true
		}
		return sameCalendarDay(addInterval(lastBucket, 1, cfg.Period), todayBucket)

	case entity.FrequencyEveryXPeriod:
		if sameCalendarDay(last, today) {
			return true
		}
		expected := addInterval(last, cfg.Interval, cfg.Period)
		return !expected.IsZero() && sameCalendarDay(expected, today)

	default:
		return false
	}
}

// localPeriodStart mirrors periodStart but on the timezone-local
// calendar: finalization asks "which period is it for the user right
// now", not "which UTC bucket does this row belong to".
func localPeriodStart(t time.Time, period entity.Period) time.Time {
	day := startOfDay(t)
	switch period {
	case entity.PeriodWeek:
		return day.AddDate(0, 0, -int(day.Weekday()))
	case entity.PeriodMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	case entity.PeriodYear:
		return time.Date(day.Year(), 1, 1, 0, 0, 0, 0, day.Location())
	default:
		return day
	}
}
