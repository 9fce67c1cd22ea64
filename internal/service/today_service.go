package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habinook/internal/engine"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/internal/repository"
	"github.com/limbo/habinook/pkg/entity"
)

const todayHabitsLimit = 200

type TodayService struct {
	habitsRepo      repository.HabitsRepositoryI
	frequenciesRepo repository.FrequenciesRepositoryI
	logsRepo        repository.HabitLogsRepositoryI
}

func NewTodayService(
	habitsRepo repository.HabitsRepositoryI,
	frequenciesRepo repository.FrequenciesRepositoryI,
	logsRepo repository.HabitLogsRepositoryI,
) *TodayService {
	if habitsRepo == nil || frequenciesRepo == nil || logsRepo == nil {
		log.Fatal("on today service provided nil repos")
	}
	return &TodayService{
		habitsRepo:      habitsRepo,
		frequenciesRepo: frequenciesRepo,
		logsRepo:        logsRepo,
	}
}

func (ts *TodayService) DueHabits(ctx context.Context, userID uuid.UUID, date, now time.Time) ([]DueHabit, error) {
	habits, err := ts.habitsRepo.GetByUserID(ctx, userID, todayHabitsLimit, 0)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	result := make([]DueHabit, 0, len(habits))
	for _, habit := range habits {
		frequency, err := ts.frequenciesRepo.GetLatestByHabitID(ctx, habit.ID)
		if err != nil {
			// A habit without a schedule never shows up as due
			if errors.Is(err, errorvalues.ErrFrequencyNotFound) {
				continue
			}
			return nil, errors.New("frequencies repository error: " + err.Error())
		}
		logs, err := ts.logsRepo.GetByHabitAndDate(ctx, habit.ID, date)
		if err != nil {
			return nil, errors.New("logs repository error: " + err.Error())
		}
		instances := engine.InstancesForDate([]entity.Frequency{*frequency}, logs, date, now)
		if len(instances) == 1 && instances[0].Status == entity.InstanceNotDue {
			continue
		}
		result = append(result, DueHabit{
			Habit:     habit,
			Instances: instances,
		})
	}
	return result, nil
}
