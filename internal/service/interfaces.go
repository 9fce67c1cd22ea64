package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habinook/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Title       string
	Description string
	CategoryID  *uuid.UUID
}

type CreateCategoryRequest struct {
	Name  string
	Color *string
}

type UpdateCategoryRequest struct {
	CategoryID uuid.UUID
	Name       string
	Color      *string
}

type CreateGoalRequest struct {
	HabitID     uuid.UUID
	Type        entity.GoalType
	Value       float64
	Unit        *string
	ActiveFrom  time.Time
	ActiveUntil *time.Time
}

type UpdateGoalRequest struct {
	GoalID      uuid.UUID
	Type        entity.GoalType
	Value       float64
	Unit        *string
	ActiveUntil *time.Time
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type CreateFrequencyRequest struct {
	HabitID     uuid.UUID
	Type        entity.FrequencyType
	Config      entity.FrequencyConfig
	ActiveFrom  time.Time
	ActiveUntil *time.Time
}

type CreateLogRequest struct {
	HabitID        uuid.UUID
	TargetDate     time.Time
	TargetTimeSlot *string
	LoggedAt       time.Time
	Status         entity.LogStatus
}

type UpdateLogRequest struct {
	LogID    uuid.UUID
	LoggedAt time.Time
	Status   entity.LogStatus
}

// DueHabit pairs a habit with its schedule instances for one date.
type DueHabit struct {
	Habit     *entity.Habit
	Instances []entity.Instance
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
}

type CategoriesServiceI interface {
	// Validates the fields and stores a new category for the user
	CreateCategory(ctx context.Context, userID uuid.UUID, req CreateCategoryRequest) (*entity.Category, error)
	GetUserCategories(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)
	// Rewrites name and color of an owned category
	UpdateCategory(ctx context.Context, userID uuid.UUID, req UpdateCategoryRequest) (*entity.Category, error)
	// Removes an owned category, habits referencing it are detached
	DeleteCategory(ctx context.Context, categoryID, userID uuid.UUID) error
}

type GoalsServiceI interface {
	// Validates the fields and stores a new goal for an owned habit
	CreateGoal(ctx context.Context, userID uuid.UUID, req CreateGoalRequest) (*entity.Goal, error)
	// Lists every goal of an owned habit, newest first
	GetHabitGoals(ctx context.Context, habitID, userID uuid.UUID) ([]*entity.Goal, error)
	// Rewrites type, value, unit and active_until of an owned goal
	UpdateGoal(ctx context.Context, userID uuid.UUID, req UpdateGoalRequest) (*entity.Goal, error)
	// Removes an owned goal
	DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error
}

type FrequenciesServiceI interface {
	// Validates the config for the given type and stores a new frequency version
	CreateFrequency(ctx context.Context, userID uuid.UUID, req CreateFrequencyRequest) (*entity.Frequency, error)
	// Lists every frequency version of an owned habit, newest first
	GetHabitFrequencies(ctx context.Context, habitID, userID uuid.UUID) ([]*entity.Frequency, error)
}

type HabitLogsServiceI interface {
	// Records a log entry and triggers a streak recompute for the habit
	CreateLog(ctx context.Context, userID uuid.UUID, req CreateLogRequest) (*entity.HabitLog, error)
	// Rewrites status/logged_at of an owned log and triggers a recompute
	UpdateLog(ctx context.Context, userID uuid.UUID, req UpdateLogRequest) error
	// Removes an owned log and triggers a recompute
	DeleteLog(ctx context.Context, logID, userID uuid.UUID) error
	GetHabitLogs(ctx context.Context, habitID, userID uuid.UUID) ([]entity.HabitLog, error)
}

type StreaksServiceI interface {
	// Rebuilds the whole streak history of a habit from its logs and stores it
	Recompute(ctx context.Context, habitID, userID uuid.UUID, now time.Time) error
	// Returns the stored streak history of an owned habit
	GetStreaks(ctx context.Context, habitID, userID uuid.UUID) ([]entity.Streak, error)
}

type TodayServiceI interface {
	// Evaluates which of the user's habits are due on date with per-slot statuses
	DueHabits(ctx context.Context, userID uuid.UUID, date, now time.Time) ([]DueHabit, error)
}
