package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrUserHasHabit  = errors.New("user already has habit with such title")
	ErrOwnerNotFound = errors.New("habit owner doesn't exist")
	ErrWrongOwner    = errors.New("habit belongs to another user")

	ErrFrequencyNotFound = errors.New("habit has no frequency")
	ErrInvalidFrequency  = errors.New("invalid frequency config")
	ErrLogNotFound       = errors.New("habit log doesn't exist")
	ErrLogDateNotAllowed = errors.New("logging future dates is not allowed")
	ErrMissingTimezone   = errors.New("frequency config is missing timezone id")

	ErrCategoryNotFound = errors.New("category doesn't exist")
	ErrInvalidCategory  = errors.New("invalid category fields")
	ErrGoalNotFound     = errors.New("goal doesn't exist")
	ErrInvalidGoal      = errors.New("invalid goal fields")
)
