package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habinook/internal/engine"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/internal/repository"
	"github.com/limbo/habinook/pkg/entity"
)

type StreaksService struct {
	habitsRepo      repository.HabitsRepositoryI
	frequenciesRepo repository.FrequenciesRepositoryI
	logsRepo        repository.HabitLogsRepositoryI
	streaksRepo     repository.HabitStreaksRepositoryI

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewStreaksService(
	habitsRepo repository.HabitsRepositoryI,
	frequenciesRepo repository.FrequenciesRepositoryI,
	logsRepo repository.HabitLogsRepositoryI,
	streaksRepo repository.HabitStreaksRepositoryI,
) *StreaksService {
	if habitsRepo == nil || frequenciesRepo == nil || logsRepo == nil || streaksRepo == nil {
		log.Fatal("on streaks service provided nil repos")
	}
	return &StreaksService{
		habitsRepo:      habitsRepo,
		frequenciesRepo: frequenciesRepo,
		logsRepo:        logsRepo,
		streaksRepo:     streaksRepo,
		locks:           make(map[uuid.UUID]*sync.Mutex),
	}
}

// habitLock serializes concurrent recomputes of the same habit so the
// delete-then-insert replace never interleaves.
func (ss *StreaksService) habitLock(habitID uuid.UUID) *sync.Mutex {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	l, ok := ss.locks[habitID]
	if !ok {
		l = &sync.Mutex{}
		ss.locks[habitID] = l
	}
	return l
}

func (ss *StreaksService) Recompute(ctx context.Context, habitID, userID uuid.UUID, now time.Time) error {
	habit, err := ss.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}

	lock := ss.habitLock(habitID)
	lock.Lock()
	defer lock.Unlock()

	frequency, err := ss.frequenciesRepo.GetLatestByHabitID(ctx, habitID)
	if err != nil {
		// A habit without a schedule has no streak history to rebuild
		if errors.Is(err, errorvalues.ErrFrequencyNotFound) {
			return nil
		}
		return errors.New("frequencies repository error: " + err.Error())
	}
	logs, err := ss.logsRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return errors.New("logs repository error: " + err.Error())
	}
	streaks := engine.ReconstructStreaks(logs, frequency.Type, &frequency.Config)
	if len(streaks) == 0 {
		if err := ss.streaksRepo.ReplaceForHabit(ctx, habitID, nil); err != nil {
			return errors.New("streaks repository error: " + err.Error())
		}
		return nil
	}
	streaks, err = engine.FinalizeActiveStreak(streaks, frequency.Type, &frequency.Config, frequency.Config.TimezoneID, now)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissingTimezone) {
			return err
		}
		return errors.New("finalizing streaks error: " + err.Error())
	}
	for i := range streaks {
		streaks[i].HabitID = habitID
		streaks[i].UserID = userID
	}
	if err := ss.streaksRepo.ReplaceForHabit(ctx, habitID, streaks); err != nil {
		return errors.New("streaks repository error: " + err.Error())
	}
	return nil
}

func (ss *StreaksService) GetStreaks(ctx context.Context, habitID, userID uuid.UUID) ([]entity.Streak, error) {
	habit, err := ss.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	streaks, err := ss.streaksRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streaks, nil
}
