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

type FrequenciesService struct {
	habitsRepo      repository.HabitsRepositoryI
	frequenciesRepo repository.FrequenciesRepositoryI
}

func NewFrequenciesService(habitsRepo repository.HabitsRepositoryI, frequenciesRepo repository.FrequenciesRepositoryI) *FrequenciesService {
	if habitsRepo == nil || frequenciesRepo == nil {
		log.Fatal("on frequencies service provided nil repos")
	}
	return &FrequenciesService{
		habitsRepo:      habitsRepo,
		frequenciesRepo: frequenciesRepo,
	}
}

func (fs *FrequenciesService) CreateFrequency(ctx context.Context, userID uuid.UUID, req CreateFrequencyRequest) (*entity.Frequency, error) {
	habit, err := fs.habitsRepo.GetByID(ctx, req.HabitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	if err := validateFrequencyConfig(req.Type, &req.Config); err != nil {
		return nil, err
	}
	activeFrom := req.ActiveFrom
	if activeFrom.IsZero() {
		activeFrom = time.Now().UTC()
	}
	if req.ActiveUntil != nil && req.ActiveUntil.Before(activeFrom) {
		return nil, errorvalues.ErrInvalidFrequency
	}
	frequency := entity.Frequency{
		HabitID:     req.HabitID,
		Type:        req.Type,
		Config:      req.Config,
		ActiveFrom:  activeFrom,
		ActiveUntil: req.ActiveUntil,
	}
	id, err := fs.frequenciesRepo.Create(ctx, &frequency)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("frequencies repository error: " + err.Error())
	}
	frequency.ID = id
	return &frequency, nil
}

func (fs *FrequenciesService) GetHabitFrequencies(ctx context.Context, habitID, userID uuid.UUID) ([]*entity.Frequency, error) {
	habit, err := fs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	frequencies, err := fs.frequenciesRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("frequencies repository error: " + err.Error())
	}
	return frequencies, nil
}

func validateFrequencyConfig(ft entity.FrequencyType, cfg *entity.FrequencyConfig) error {
	if cfg.TimezoneID != "" {
		if _, err := time.LoadLocation(cfg.TimezoneID); err != nil {
			return errorvalues.ErrInvalidFrequency
		}
	}
	if cfg.CompletionToleranceMinutes != nil && *cfg.CompletionToleranceMinutes < 0 {
		return errorvalues.ErrInvalidFrequency
	}
	for _, clock := range cfg.Times {
		if !engine.ValidClock(clock) {
			return errorvalues.ErrInvalidFrequency
		}
	}
	// Timed schedules need a timezone to anchor the tolerance window
	if len(cfg.Times) > 0 && cfg.TimezoneID == "" {
		return errorvalues.ErrInvalidFrequency
	}
	switch ft {
	case entity.FrequencyDaily:
		return nil
	case entity.FrequencyDaysOfWeek:
		if len(cfg.Days) == 0 {
			return errorvalues.ErrInvalidFrequency
		}
		for _, d := range cfg.Days {
			if d < 0 || d > 6 {
				return errorvalues.ErrInvalidFrequency
			}
		}
		return nil
	case entity.FrequencyTimesPerPeriod:
		if cfg.Count < 1 || !validPeriod(cfg.Period) {
			return errorvalues.ErrInvalidFrequency
		}
		return nil
	case entity.FrequencyEveryXPeriod:
		if cfg.Interval < 1 || !validPeriod(cfg.Period) {
			return errorvalues.ErrInvalidFrequency
		}
		return nil
	default:
		return errorvalues.ErrInvalidFrequency
	}
}

func validPeriod(p entity.Period) bool {
	switch p {
	case entity.PeriodDay, entity.PeriodWeek, entity.PeriodMonth, entity.PeriodYear:
		return true
	}
	return false
}
