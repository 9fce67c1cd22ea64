package engine

import (
	"log/slog"
	"time"

	"github.com/limbo/habinook/pkg/entity"
)

// IsPeriodCompleted decides whether the logs of a single day (or period
// bucket) satisfy the frequency's schedule.
//
// Untimed habits need one completed log whose loggedAt landed on the
// same calendar day as its targetDate. Timed habits need a completed,
// in-tolerance log for every scheduled slot; any missing slot fails the
// whole day. A timed config without a timezone cannot be evaluated and
// fails closed.
func IsPeriodCompleted(logs []entity.HabitLog, scheduledTimes []string, timezoneID string, toleranceMinutes *int) bool {
	if len(scheduledTimes) == 0 {
		for _, l := range logs {
			if l.Status == entity.StatusCompleted && sameCalendarDay(l.LoggedAt, l.TargetDate) {
				return true
			}
		}
		return false
	}
	if timezoneID == "" {
		slog.Warn("time-based frequency has no timezone id, treating period as incomplete")
		return false
	}
	tolerance := DefaultToleranceMinutes
	if toleranceMinutes != nil {
		tolerance = *toleranceMinutes
	}
	for _, scheduled := range scheduledTimes {
		if !slotCompleted(logs, scheduled, timezoneID, tolerance) {
			return false
		}
	}
	return true
}

func slotCompleted(logs []entity.HabitLog, scheduled, timezoneID string, tolerance int) bool {
	for _, l := range logs {
		if l.Status != entity.StatusCompleted {
			continue
		}
		if l.TargetTimeSlot == nil || *l.TargetTimeSlot != scheduled {
			continue
		}
		if !sameCalendarDay(l.LoggedAt, l.TargetDate) {
			continue
		}
		if IsTimeWithinTolerance(l.LoggedAt, l.TargetDate, scheduled, timezoneID, tolerance) {
			return true
		}
	}
	return false
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
