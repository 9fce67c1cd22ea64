package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habinook/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit in database. In habit only Title, UserID, Description are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type FrequenciesRepositoryI interface {
	// Creates new frequency version for a habit
	Create(ctx context.Context, frequency *entity.Frequency) (uuid.UUID, error)
	// Lists every frequency version of a habit, newest first
	GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]*entity.Frequency, error)
	// Returns the most recent frequency version of a habit
	GetLatestByHabitID(ctx context.Context, habitID uuid.UUID) (*entity.Frequency, error)
	// Deletes frequency with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitLogsRepositoryI interface {
	// Creates new log entry
	Create(ctx context.Context, log *entity.HabitLog) (uuid.UUID, error)
	// Searches log with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.HabitLog, error)
	// Lists every log of a habit ordered by target date
	GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.HabitLog, error)
	// Lists logs of a habit falling on a target date
	GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) ([]entity.HabitLog, error)
	// Updates status and logged_at of a log (ID is necessary)
	Update(ctx context.Context, log *entity.HabitLog) error
	// Deletes log with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type CategoriesRepositoryI interface {
	// Creates new category for a user
	Create(ctx context.Context, category *entity.Category) (uuid.UUID, error)
	// Searches category with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	// Lists categories owned by user with uid, oldest first
	GetByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Category, error)
	// Updates name and color of a category (ID is necessary)
	Update(ctx context.Context, category *entity.Category) error
	// Deletes category with id, habits keep living with no category
	Delete(ctx context.Context, id uuid.UUID) error
}

type GoalsRepositoryI interface {
	// Creates new goal for a habit
	Create(ctx context.Context, goal *entity.Goal) (uuid.UUID, error)
	// Searches goal with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)
	// Lists every goal of a habit, newest first
	GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]*entity.Goal, error)
	// Updates type, value, unit and active_until of a goal (ID is necessary)
	Update(ctx context.Context, goal *entity.Goal) error
	// Deletes goal with id
	Delete(ctx context.Context, id uuid.UUID) error
}

type HabitStreaksRepositoryI interface {
	// Lists stored streaks of a habit ordered by start date
	GetByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.Streak, error)
	// Atomically replaces every stored streak of a habit with the given set
	ReplaceForHabit(ctx context.Context, habitID uuid.UUID, streaks []entity.Streak) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
