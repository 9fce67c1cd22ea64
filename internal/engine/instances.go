package engine

import (
	"sort"
	"time"

	"github.com/limbo/habinook/pkg/entity"
)

// InstancesForDate expands a habit's frequencies into the per-slot
// instances for one calendar date. A habit not due on the date yields a
// single not_due instance. Timed habits get one instance per distinct
// scheduled slot across all due frequencies; untimed habits get one
// daily instance. Instances without a log are pending until the day has
// fully passed, then missed. When duplicate logs exist for a slot the
// first one found wins; completion semantics are evaluated elsewhere.
func InstancesForDate(freqs []entity.Frequency, logs []entity.HabitLog, date, now time.Time) []entity.Instance {
	var due []entity.Frequency
	for _, f := range freqs {
		if IsDueOnDate(&f, date) {
			due = append(due, f)
		}
	}
	if len(due) == 0 {
		return []entity.Instance{{Status: entity.InstanceNotDue}}
	}

	slots := make(map[string]bool)
	for _, f := range due {
		for _, t := range f.Config.Times {
			slots[t] = true
		}
	}

	dayKey := utcDay(date)
	passed := endOfDay(date).Before(now)
	fallback := entity.InstancePending
	if passed {
		fallback = entity.InstanceMissed
	}

	if len(slots) == 0 {
		status := fallback
		if l := findLog(logs, dayKey, nil); l != nil {
			status = entity.InstanceStatus(l.Status)
		}
		return []entity.Instance{{Status: status}}
	}

	ordered := make([]string, 0, len(slots))
	for s := range slots {
		ordered = append(ordered, s)
	}
	sort.Strings(ordered)

	instances := make([]entity.Instance, 0, len(ordered))
	for _, slot := range ordered {
		slot := slot
		status := fallback
		if l := findLog(logs, dayKey, &slot); l != nil {
			status = entity.InstanceStatus(l.Status)
		}
		instances = append(instances, entity.Instance{TimeSlot: &slot, Status: status})
	}
	return instances
}

func findLog(logs []entity.HabitLog, dayKey time.Time, slot *string) *entity.HabitLog {
	for i := range logs {
		l := &logs[i]
		if !utcDay(l.TargetDate).Equal(dayKey) {
			continue
		}
		if slot == nil {
			if l.TargetTimeSlot == nil {
				return l
			}
			continue
		}
		if l.TargetTimeSlot != nil && *l.TargetTimeSlot == *slot {
			return l
		}
	}
	return nil
}
