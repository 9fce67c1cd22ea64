package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Habit struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"uid"`
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"desc"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Category is a user-defined label habits can be grouped under.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Name      string    `json:"name"`
	Color     *string   `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GoalType string

const (
	GoalTarget GoalType = "target"
	GoalLimit  GoalType = "limit"
)

// Goal is a quantitative target or limit attached to a habit,
// versioned by activity window like frequencies are.
type Goal struct {
	ID          uuid.UUID  `json:"id"`
	HabitID     uuid.UUID  `json:"habit_id"`
	Type        GoalType   `json:"type"`
	Value       float64    `json:"value"`
	Unit        *string    `json:"unit,omitempty"`
	ActiveFrom  time.Time  `json:"active_from"`
	ActiveUntil *time.Time `json:"active_until,omitempty"`
}

type FrequencyType string

const (
	FrequencyDaily          FrequencyType = "daily"
	FrequencyDaysOfWeek     FrequencyType = "days_of_week"
	FrequencyTimesPerPeriod FrequencyType = "times_per_period"
	FrequencyEveryXPeriod   FrequencyType = "every_x_period"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// FrequencyConfig is the jsonb payload of a frequency row. Times,
// CompletionToleranceMinutes and TimezoneID are shared by all types;
// the remaining fields belong to the type named by Frequency.Type.
type FrequencyConfig struct {
	// "HH:MM" wall-clock slots in TimezoneID. When set, every slot must
	// be completed for the day to count.
	Times []string `json:"times,omitempty"`
	// Minutes around each slot within which a completion counts.
	// Nil means the 30-minute default.
	CompletionToleranceMinutes *int `json:"completion_tolerance_minutes,omitempty"`
	// IANA zone the slots are scheduled in, e.g. "Europe/Berlin".
	TimezoneID string `json:"timezone_id,omitempty"`

	// days_of_week: weekdays 0 (Sunday) through 6 (Saturday).
	Days []int `json:"days,omitempty"`
	// times_per_period: required completions per period.
	Count int `json:"count,omitempty"`
	// every_x_period: gap between occurrences, in periods.
	Interval int `json:"interval,omitempty"`
	// times_per_period / every_x_period period unit.
	Period Period `json:"period,omitempty"`
}

type Frequency struct {
	ID          uuid.UUID       `json:"id"`
	HabitID     uuid.UUID       `json:"habit_id"`
	Type        FrequencyType   `json:"type"`
	Config      FrequencyConfig `json:"config"`
	ActiveFrom  time.Time       `json:"active_from"`
	ActiveUntil *time.Time      `json:"active_until,omitempty"`
}

type LogStatus string

const (
	StatusCompleted        LogStatus = "completed"
	StatusSkipped          LogStatus = "skipped"
	StatusMissed           LogStatus = "missed"
	StatusPartialCompleted LogStatus = "partial_completed"
)

type HabitLog struct {
	ID             uuid.UUID `json:"id"`
	HabitID        uuid.UUID `json:"habit_id"`
	UserID         uuid.UUID `json:"uid"`
	TargetDate     time.Time `json:"target_date"`
	TargetTimeSlot *string   `json:"target_time_slot,omitempty"`
	LoggedAt       time.Time `json:"logged_at"`
	Status         LogStatus `json:"status"`
}

// Streak is a maximal run of consecutive completed occasions.
// EndDate == nil means the streak is still open.
type Streak struct {
	ID        uuid.UUID  `json:"id"`
	HabitID   uuid.UUID  `json:"habit_id"`
	UserID    uuid.UUID  `json:"uid"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Length    int        `json:"length"`
}

type InstanceStatus string

const (
	InstanceNotDue           InstanceStatus = "not_due"
	InstancePending          InstanceStatus = "pending"
	InstanceMissed           InstanceStatus = "missed"
	InstanceCompleted        InstanceStatus = InstanceStatus(StatusCompleted)
	InstanceSkipped          InstanceStatus = InstanceStatus(StatusSkipped)
	InstancePartialCompleted InstanceStatus = InstanceStatus(StatusPartialCompleted)
)

// Instance is one candidate completion unit of a habit on a date:
// a time slot for timed habits, the whole day otherwise.
type Instance struct {
	TimeSlot *string        `json:"time_slot,omitempty"`
	Status   InstanceStatus `json:"status"`
}
