package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/internal/repository"
	"github.com/limbo/habinook/pkg/entity"
)

type GoalsService struct {
	habitsRepo repository.HabitsRepositoryI
	goalsRepo  repository.GoalsRepositoryI
}

func NewGoalsService(habitsRepo repository.HabitsRepositoryI, goalsRepo repository.GoalsRepositoryI) *GoalsService {
	if habitsRepo == nil || goalsRepo == nil {
		log.Fatal("on goals service provided nil repos")
	}
	return &GoalsService{
		habitsRepo: habitsRepo,
		goalsRepo:  goalsRepo,
	}
}

func (gs *GoalsService) CreateGoal(ctx context.Context, userID uuid.UUID, req CreateGoalRequest) (*entity.Goal, error) {
	habit, err := gs.habitsRepo.GetByID(ctx, req.HabitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	if err := validateGoalFields(req.Type, req.Value); err != nil {
		return nil, err
	}
	activeFrom := req.ActiveFrom
	if activeFrom.IsZero() {
		activeFrom = time.Now().UTC()
	}
	if req.ActiveUntil != nil && req.ActiveUntil.Before(activeFrom) {
		return nil, errorvalues.ErrInvalidGoal
	}
	goal := entity.Goal{
		HabitID:     req.HabitID,
		Type:        req.Type,
		Value:       req.Value,
		Unit:        req.Unit,
		ActiveFrom:  activeFrom,
		ActiveUntil: req.ActiveUntil,
	}
	id, err := gs.goalsRepo.Create(ctx, &goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal.ID = id
	return &goal, nil
}

func (gs *GoalsService) GetHabitGoals(ctx context.Context, habitID, userID uuid.UUID) ([]*entity.Goal, error) {
	habit, err := gs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	goals, err := gs.goalsRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalsService) UpdateGoal(ctx context.Context, userID uuid.UUID, req UpdateGoalRequest) (*entity.Goal, error) {
	goal, err := gs.goalsRepo.GetByID(ctx, req.GoalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if err := gs.checkHabitOwner(ctx, goal.HabitID, userID); err != nil {
		return nil, err
	}
	if err := validateGoalFields(req.Type, req.Value); err != nil {
		return nil, err
	}
	if req.ActiveUntil != nil && req.ActiveUntil.Before(goal.ActiveFrom) {
		return nil, errorvalues.ErrInvalidGoal
	}
	goal.Type = req.Type
	goal.Value = req.Value
	goal.Unit = req.Unit
	goal.ActiveUntil = req.ActiveUntil
	if err := gs.goalsRepo.Update(ctx, goal); err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalsService) DeleteGoal(ctx context.Context, goalID, userID uuid.UUID) error {
	goal, err := gs.goalsRepo.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	if err := gs.checkHabitOwner(ctx, goal.HabitID, userID); err != nil {
		return err
	}
	if err := gs.goalsRepo.Delete(ctx, goalID); err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalsService) checkHabitOwner(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := gs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	return nil
}

func validateGoalFields(gt entity.GoalType, value float64) error {
	switch gt {
	case entity.GoalTarget, entity.GoalLimit:
	default:
		return errorvalues.ErrInvalidGoal
	}
	if value <= 0 {
		return errorvalues.ErrInvalidGoal
	}
	return nil
}
