package engine

import (
	"sort"
	"time"

	"github.com/limbo/habinook/pkg/entity"
)

// occasionRules parameterize streak reconstruction per frequency type:
// how logs bucket into occasions, when an occasion counts as completed,
// and which occasion is expected next after a completed one.
type occasionRules struct {
	bucket    func(t time.Time) time.Time
	completed func(occasion time.Time, logs []entity.HabitLog) bool
	next      func(t time.Time) time.Time
}

// ReconstructStreaks rebuilds the full streak history of a habit from
// its raw log rows. Occasions are calendar days, except for
// times_per_period where they are period buckets on the UTC calendar
// (weeks start Sunday). The result is ordered by start date and every
// streak has a concrete end date; FinalizeActiveStreak decides whether
// the most recent one is still open. An unknown frequency type yields
// no streaks.
func ReconstructStreaks(logs []entity.HabitLog, freqType entity.FrequencyType, cfg *entity.FrequencyConfig) []entity.Streak {
	rules, ok := rulesFor(freqType, cfg)
	if !ok {
		return nil
	}
	grouped := make(map[time.Time][]entity.HabitLog)
	for _, l := range logs {
		key := rules.bucket(l.TargetDate)
		grouped[key] = append(grouped[key], l)
	}
	occasions := make([]time.Time, 0, len(grouped))
	for k := range grouped {
		occasions = append(occasions, k)
	}
	sort.Slice(occasions, func(i, j int) bool { return occasions[i].Before(occasions[j]) })

	var completed []time.Time
	for _, occ := range occasions {
		if rules.completed(occ, grouped[occ]) {
			completed = append(completed, occ)
		}
	}
	return foldStreaks(completed, rules.next)
}

// foldStreaks walks completed occasions in order, extending the running
// streak while each occasion matches the expected next one and closing
// it otherwise.
func foldStreaks(completed []time.Time, next func(time.Time) time.Time) []entity.Streak {
	if len(completed) == 0 {
		return nil
	}
	var streaks []entity.Streak
	current := entity.Streak{StartDate: completed[0], Length: 1}
	last := completed[0]
	for _, occ := range completed[1:] {
		expected := next(last)
		if !expected.IsZero() && sameCalendarDay(expected, occ) {
			current.Length++
		} else {
			end := last
			current.EndDate = &end
			streaks = append(streaks, current)
			current = entity.Streak{StartDate: occ, Length: 1}
		}
		last = occ
	}
	end := last
	current.EndDate = &end
	return append(streaks, current)
}

func rulesFor(freqType entity.FrequencyType, cfg *entity.FrequencyConfig) (occasionRules, bool) {
	dayCompleted := func(_ time.Time, logs []entity.HabitLog) bool {
		return IsPeriodCompleted(logs, cfg.Times, cfg.TimezoneID, cfg.CompletionToleranceMinutes)
	}
	switch freqType {
	case entity.FrequencyDaily:
		return occasionRules{
			bucket:    utcDay,
			completed: dayCompleted,
			next:      func(t time.Time) time.Time { return t.AddDate(0, 0, 1) },
		}, true
	case entity.FrequencyDaysOfWeek:
		days := make(map[int]bool, len(cfg.Days))
		for _, d := range cfg.Days {
			days[d] = true
		}
		return occasionRules{
			bucket: utcDay,
			completed: func(occ time.Time, logs []entity.HabitLog) bool {
				return days[int(occ.Weekday())] && dayCompleted(occ, logs)
			},
			next: func(t time.Time) time.Time { return nextScheduledWeekday(t, days) },
		}, true
	case entity.FrequencyTimesPerPeriod:
		return occasionRules{
			bucket: func(t time.Time) time.Time { return periodStart(t, cfg.Period) },
			completed: func(_ time.Time, logs []entity.HabitLog) bool {
				done := 0
				for _, l := range logs {
					if IsPeriodCompleted([]entity.HabitLog{l}, cfg.Times, cfg.TimezoneID, cfg.CompletionToleranceMinutes) {
						done++
					}
				}
				return done >= cfg.Count
			},
			next: func(t time.Time) time.Time { return addInterval(t, 1, cfg.Period) },
		}, true
	case entity.FrequencyEveryXPeriod:
		return occasionRules{
			bucket:    utcDay,
			completed: dayCompleted,
			next:      func(t time.Time) time.Time { return addInterval(t, cfg.Interval, cfg.Period) },
		}, true
	default:
		return occasionRules{}, false
	}
}

// nextScheduledWeekday returns the nearest date within the following
// seven days whose weekday is scheduled, or the zero time when the set
// is empty.
func nextScheduledWeekday(t time.Time, days map[int]bool) time.Time {
	for i := 1; i <= 7; i++ {
		next := t.AddDate(0, 0, i)
		if days[int(next.Weekday())] {
			return next
		}
	}
	return time.Time{}
}

func addInterval(t time.Time, interval int, period entity.Period) time.Time {
	switch period {
	case entity.PeriodDay:
		return t.AddDate(0, 0, interval)
	case entity.PeriodWeek:
		return t.AddDate(0, 0, 7*interval)
	case entity.PeriodMonth:
		return addMonthsClamped(t, interval)
	case entity.PeriodYear:
		return addMonthsClamped(t, 12*interval)
	}
	return time.Time{}
}

// addMonthsClamped steps whole calendar months, clamping the day to the
// end of the target month. Go's AddDate would normalize Jan 31 + 1
// month into Mar 3, which breaks monthly chains completed on month-end
// dates; the expected occasion after Jan 31 is Feb 28 (or 29).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
	if lastDay := target.AddDate(0, 1, -1).Day(); d > lastDay {
		d = lastDay
	}
	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, t.Location())
}

// utcDay is the canonical occasion key: the target date's UTC calendar
// day at midnight.
func utcDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func periodStart(t time.Time, period entity.Period) time.Time {
	day := utcDay(t)
	switch period {
	case entity.PeriodWeek:
		return day.AddDate(0, 0, -int(day.Weekday()))
	case entity.PeriodMonth:
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	case entity.PeriodYear:
		return time.Date(day.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}
