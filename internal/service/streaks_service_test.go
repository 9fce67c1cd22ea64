package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/internal/repository/mocks"
	"github.com/limbo/habinook/internal/service"
	"github.com/limbo/habinook/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayUTC(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func completedLog(d time.Time) entity.HabitLog {
	return entity.HabitLog{
		HabitID:    habitID,
		UserID:     userID,
		TargetDate: d,
		LoggedAt:   d.Add(12 * time.Hour),
		Status:     entity.StatusCompleted,
	}
}

func newStreaksFixture(t *testing.T) (*service.StreaksService, *mocks.MockHabitsRepositoryI, *mocks.MockFrequenciesRepositoryI, *mocks.MockHabitLogsRepositoryI, *mocks.MockHabitStreaksRepositoryI) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	frequenciesRepo := mocks.NewMockFrequenciesRepositoryI(ctrl)
	logsRepo := mocks.NewMockHabitLogsRepositoryI(ctrl)
	streaksRepo := mocks.NewMockHabitStreaksRepositoryI(ctrl)
	s := service.NewStreaksService(habitsRepo, frequenciesRepo, logsRepo, streaksRepo)
	return s, habitsRepo, frequenciesRepo, logsRepo, streaksRepo
}

func TestRecompute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 3, 15, 0, 0, 0, time.UTC)
	dailyFreq := &entity.Frequency{
		ID:         uuid.New(),
		HabitID:    habitID,
		Type:       entity.FrequencyDaily,
		Config:     entity.FrequencyConfig{TimezoneID: "UTC"},
		ActiveFrom: dayUTC(2025, 1, 1),
	}

	t.Run("rebuilds and stores an open streak", func(t *testing.T) {
		s, habitsRepo, frequenciesRepo, logsRepo, streaksRepo := newStreaksFixture(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		frequenciesRepo.EXPECT().GetLatestByHabitID(gomock.Any(), habitID).Return(dailyFreq, nil)
		logsRepo.EXPECT().GetByHabitID(gomock.Any(), habitID).Return([]entity.HabitLog{
			completedLog(dayUTC(2025, 1, 1)),
			completedLog(dayUTC(2025, 1, 2)),
			completedLog(dayUTC(2025, 1, 3)),
		}, nil)
		var stored []entity.Streak
		streaksRepo.EXPECT().ReplaceForHabit(gomock.Any(), habitID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, streaks []entity.Streak) error {
				stored = streaks
				return nil
			})
		err := s.Recompute(ctx, habitID, userID, now)
		assert.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, dayUTC(2025, 1, 1), stored[0].StartDate)
		assert.Nil(t, stored[0].EndDate)
		assert.Equal(t, 3, stored[0].Length)
		assert.Equal(t, habitID, stored[0].HabitID)
		assert.Equal(t, userID, stored[0].UserID)
	})

	t.Run("closes a stale streak", func(t *testing.T) {
		s, habitsRepo, frequenciesRepo, logsRepo, streaksRepo := newStreaksFixture(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		frequenciesRepo.EXPECT().GetLatestByHabitID(gomock.Any(), habitID).Return(dailyFreq, nil)
		logsRepo.EXPECT().GetByHabitID(gomock.Any(), habitID).Return([]entity.HabitLog{
			completedLog(dayUTC(2025, 1, 1)),
		}, nil)
		var stored []entity.Streak
		streaksRepo.EXPECT().ReplaceForHabit(gomock.Any(), habitID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, streaks []entity.Streak) error {
				stored = streaks
				return nil
			})
		err := s.Recompute(ctx, habitID, userID, now)
		assert.NoError(t, err)
		require.Len(t, stored, 1)
		require.NotNil(t, stored[0].EndDate)
		assert.Equal(t, dayUTC(2025, 1, 1), *stored[0].EndDate)
	})

	t.Run("no frequency is a no-op", func(t *testing.T) {
		s, habitsRepo, frequenciesRepo, _, _ := newStreaksFixture(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		frequenciesRepo.EXPECT().GetLatestByHabitID(gomock.Any(), habitID).Return(nil, errorvalues.ErrFrequencyNotFound)
		err := s.Recompute(ctx, habitID, userID, now)
		assert.NoError(t, err)
	})

	t.Run("no completed occasions clears stored streaks", func(t *testing.T) {
		s, habitsRepo, frequenciesRepo, logsRepo, streaksRepo := newStreaksFixture(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		frequenciesRepo.EXPECT().GetLatestByHabitID(gomock.Any(), habitID).Return(dailyFreq, nil)
		logsRepo.EXPECT().GetByHabitID(gomock.Any(), habitID).Return([]entity.HabitLog{}, nil)
		streaksRepo.EXPECT().ReplaceForHabit(gomock.Any(), habitID, gomock.Nil()).Return(nil)
		err := s.Recompute(ctx, habitID, userID, now)
		assert.NoError(t, err)
	})

	t.Run("missing timezone fails hard", func(t *testing.T) {
		s, habitsRepo, frequenciesRepo, logsRepo, _ := newStreaksFixture(t)
		noTZ := *dailyFreq
		noTZ.Config = entity.FrequencyConfig{}
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		frequenciesRepo.EXPECT().GetLatestByHabitID(gomock.Any(), habitID).Return(&noTZ, nil)
		logsRepo.EXPECT().GetByHabitID(gomock.Any(), habitID).Return([]entity.HabitLog{
			completedLog(dayUTC(2025, 1, 1)),
		}, nil)
		err := s.Recompute(ctx, habitID, userID, now)
		assert.ErrorIs(t, err, errorvalues.ErrMissingTimezone)
	})

	t.Run("wrong owner", func(t *testing.T) {
		s, habitsRepo, _, _, _ := newStreaksFixture(t)
		foreign := testHabit
		foreign.UserID = uuid.New()
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&foreign, nil)
		err := s.Recompute(ctx, habitID, userID, now)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})

	t.Run("unexist habit", func(t *testing.T) {
		s, habitsRepo, _, _, _ := newStreaksFixture(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
		err := s.Recompute(ctx, habitID, userID, now)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestGetStreaks(t *testing.T) {
	ctx := context.Background()
	end := dayUTC(2025, 1, 5)
	streaks := []entity.Streak{
		{
			ID:        uuid.New(),
			HabitID:   habitID,
			UserID:    userID,
			StartDate: dayUTC(2025, 1, 1),
			EndDate:   &end,
			Length:    5,
		},
	}
	t.Run("success", func(t *testing.T) {
		s, habitsRepo, _, _, streaksRepo := newStreaksFixture(t)
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		streaksRepo.EXPECT().GetByHabitID(gomock.Any(), habitID).Return(streaks, nil)
		result, err := s.GetStreaks(ctx, habitID, userID)
		assert.NoError(t, err)
		assert.Equal(t, streaks, result)
	})
	t.Run("wrong owner", func(t *testing.T) {
		s, habitsRepo, _, _, _ := newStreaksFixture(t)
		foreign := testHabit
		foreign.UserID = uuid.New()
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&foreign, nil)
		_, err := s.GetStreaks(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
