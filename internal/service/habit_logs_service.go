package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/internal/repository"
	"github.com/limbo/habinook/pkg/entity"
)

type HabitLogsService struct {
	habitsRepo repository.HabitsRepositoryI
	logsRepo   repository.HabitLogsRepositoryI
	streaks    StreaksServiceI
}

func NewHabitLogsService(habitsRepo repository.HabitsRepositoryI, logsRepo repository.HabitLogsRepositoryI, streaks StreaksServiceI) *HabitLogsService {
	if habitsRepo == nil || logsRepo == nil || streaks == nil {
		log.Fatal("on habit logs service provided nil deps")
	}
	return &HabitLogsService{
		habitsRepo: habitsRepo,
		logsRepo:   logsRepo,
		streaks:    streaks,
	}
}

func (ls *HabitLogsService) CreateLog(ctx context.Context, userID uuid.UUID, req CreateLogRequest) (*entity.HabitLog, error) {
	habit, err := ls.habitsRepo.GetByID(ctx, req.HabitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	if req.TargetDate.After(time.Now()) {
		return nil, errorvalues.ErrLogDateNotAllowed
	}
	loggedAt := req.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now().UTC()
	}
	habitLog := entity.HabitLog{
		HabitID:        req.HabitID,
		UserID:         userID,
		TargetDate:     req.TargetDate,
		TargetTimeSlot: req.TargetTimeSlot,
		LoggedAt:       loggedAt,
		Status:         req.Status,
	}
	id, err := ls.logsRepo.Create(ctx, &habitLog)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("logs repository error: " + err.Error())
	}
	habitLog.ID = id
	if err := ls.recompute(ctx, req.HabitID, userID); err != nil {
		return &habitLog, err
	}
	return &habitLog, nil
}

func (ls *HabitLogsService) UpdateLog(ctx context.Context, userID uuid.UUID, req UpdateLogRequest) error {
	habitLog, err := ls.logsRepo.GetByID(ctx, req.LogID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("logs repository error: " + err.Error())
	}
	if habitLog.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	habitLog.Status = req.Status
	if !req.LoggedAt.IsZero() {
		habitLog.LoggedAt = req.LoggedAt
	}
	if err := ls.logsRepo.Update(ctx, habitLog); err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("logs repository error: " + err.Error())
	}
	return ls.recompute(ctx, habitLog.HabitID, userID)
}

func (ls *HabitLogsService) DeleteLog(ctx context.Context, logID, userID uuid.UUID) error {
	habitLog, err := ls.logsRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("logs repository error: " + err.Error())
	}
	if habitLog.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	if err := ls.logsRepo.Delete(ctx, logID); err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("logs repository error: " + err.Error())
	}
	return ls.recompute(ctx, habitLog.HabitID, userID)
}

func (ls *HabitLogsService) GetHabitLogs(ctx context.Context, habitID, userID uuid.UUID) ([]entity.HabitLog, error) {
	habit, err := ls.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	logs, err := ls.logsRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	return logs, nil
}

// recompute rebuilds the streak history after a log mutation. The log
// write already succeeded, so transient failures are logged and
// swallowed; the next mutation repairs the stored history. A missing
// frequency timezone is a configuration error that leaves the stored
// streaks stale until fixed, so that one propagates to the caller.
func (ls *HabitLogsService) recompute(ctx context.Context, habitID, userID uuid.UUID) error {
	err := ls.streaks.Recompute(ctx, habitID, userID, time.Now())
	if err == nil {
		return nil
	}
	if errors.Is(err, errorvalues.ErrMissingTimezone) {
		return err
	}
	slog.Warn("recomputing streaks failed",
		slog.String("habit_id", habitID.String()),
		slog.String("error", err.Error()),
	)
	return nil
}
