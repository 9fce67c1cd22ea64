package engine_test

import (
	"testing"
	"time"

	"github.com/limbo/habinook/internal/engine"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedStreak(start, end time.Time, length int) entity.Streak {
	return entity.Streak{StartDate: start, EndDate: &end, Length: length}
}

func TestFinalizeActiveStreakMissingTimezone(t *testing.T) {
	t.Parallel()
	streaks := []entity.Streak{closedStreak(day(2025, 1, 1), day(2025, 1, 5), 5)}
	_, err := engine.FinalizeActiveStreak(streaks, entity.FrequencyDaily, &entity.FrequencyConfig{}, "", time.Now())
	assert.ErrorIs(t, err, errorvalues.ErrMissingTimezone)
}

func TestFinalizeActiveStreakDaily(t *testing.T) {
	t.Parallel()
	cfg := &entity.FrequencyConfig{}
	now := time.Date(2025, 1, 6, 15, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc          string
		LastCompleted time.Time
		Active        bool
	}{
		{Desc: "completed today stays open", LastCompleted: day(2025, 1, 6), Active: true},
		{Desc: "completed yesterday stays open", LastCompleted: day(2025, 1, 5), Active: true},
		{Desc: "two days ago is closed", LastCompleted: day(2025, 1, 4), Active: false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			streaks := []entity.Streak{closedStreak(day(2025, 1, 1), tc.LastCompleted, 3)}
			result, err := engine.FinalizeActiveStreak(streaks, entity.FrequencyDaily, cfg, "UTC", now)
			require.NoError(t, err)
			require.Len(t, result, 1)
			if tc.Active {
				assert.Nil(t, result[0].EndDate)
			} else {
				require.NotNil(t, result[0].EndDate)
				assert.Equal(t, tc.LastCompleted, *result[0].EndDate)
			}
		})
	}
}

func TestFinalizeActiveStreakDaysOfWeek(t *testing.T) {
	t.Parallel()
	cfg := &entity.FrequencyConfig{Days: []int{1, 3, 5}} // Mon, Wed, Fri

	t.Run("next scheduled weekday is today", func(t *testing.T) {
		// Last completed Fri 2025-01-10; today Mon 2025-01-13.
		now := time.Date(2025, 1, 13, 9, 0, 0, 0, time.UTC)
		streaks := []entity.Streak{closedStreak(day(2025, 1, 6), day(2025, 1, 10), 3)}
		result, err := engine.FinalizeActiveStreak(streaks, entity.FrequencyDaysOfWeek, cfg, "UTC", now)
		require.NoError(t, err)
		assert.Nil(t, result[0].EndDate)
	})

	t.Run("past the next scheduled weekday", func(t *testing.T) {
		// Last completed Fri 2025-01-10; today Wed 2025-01-15, Monday missed.
		now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
		streaks := []entity.Streak{closedStreak(day(2025, 1, 6), day(2025, 1, 10), 3)}
		result, err := engine.FinalizeActiveStreak(streaks, entity.FrequencyDaysOfWeek, cfg, "UTC", now)
		require.NoError(t, err)
		require.NotNil(t, result[0].EndDate)
	})
}

func TestFinalizeActiveStreakTimesPerPeriod(t *testing.T) {
	t.Parallel()
	cfg := &entity.FrequencyConfig{Count: 3, Period: entity.PeriodWeek}
	// Last satisfied bucket is the week of Sunday 2025-01-05.
	lastBucket := day(2025, 1, 5)

	t.Run("same week stays open", func(t *testing.T) {
		now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		result, err := engine.FinalizeActiveStreak(
			[]entity.Streak{closedStreak(lastBucket, lastBucket, 1)},
			entity.FrequencyTimesPerPeriod, cfg, "UTC", now)
		require.NoError(t, err)
		assert.Nil(t, result[0].EndDate)
	})

	t.Run("following week is the grace period", func(t *testing.T) {
		now := time.Date(2025, 1, 14, 12, 0, 0, 0, time.UTC)
		result, err := engine.FinalizeActiveStreak(
			[]entity.Streak{closedStreak(lastBucket, lastBucket, 1)},
			entity.FrequencyTimesPerPeriod, cfg, "UTC", now)
		require.NoError(t, err)
		assert.Nil(t, result[0].EndDate)
	})

	t.Run("two weeks later is closed", func(t *testing.T) {
		now := time.Date(2025, 1, 21, 12, 0, 0, 0, time.UTC)
		result, err := engine.FinalizeActiveStreak(
			[]entity.Streak{closedStreak(lastBucket, lastBucket, 1)},
			entity.FrequencyTimesPerPeriod, cfg, "UTC", now)
		require.NoError(t, err)
		require.NotNil(t, result[0].EndDate)
	})
}

func TestFinalizeActiveStreakEveryXPeriod(t *testing.T) {
	t.Parallel()
	cfg := &entity.FrequencyConfig{Interval: 3, Period: entity.PeriodDay}

	t.Run("due again exactly today stays open", func(t *testing.T) {
		now := time.Date(2025, 1, 8, 8, 0, 0, 0, time.UTC)
		result, err := engine.FinalizeActiveStreak(
			[]entity.Streak{closedStreak(day(2025, 1, 2), day(2025, 1, 5), 2)},
			entity.FrequencyEveryXPeriod, cfg, "UTC", now)
		require.NoError(t, err)
		assert.Nil(t, result[0].EndDate)
	})

	t.Run("between occurrences is closed", func(t *testing.T) {
		now := time.Date(2025, 1, 7, 8, 0, 0, 0, time.UTC)
		result, err := engine.FinalizeActiveStreak(
			[]entity.Streak{closedStreak(day(2025, 1, 2), day(2025, 1, 5), 2)},
			entity.FrequencyEveryXPeriod, cfg, "UTC", now)
		require.NoError(t, err)
		require.NotNil(t, result[0].EndDate)
	})

	t.Run("monthly month-end clamps to the shorter month", func(t *testing.T) {
		// Last completed Jan 31; the next monthly occurrence is Feb 28.
		monthly := &entity.FrequencyConfig{Interval: 1, Period: entity.PeriodMonth}
		now := time.Date(2025, 2, 28, 8, 0, 0, 0, time.UTC)
		result, err := engine.FinalizeActiveStreak(
			[]entity.Streak{closedStreak(day(2025, 1, 31), day(2025, 1, 31), 1)},
			entity.FrequencyEveryXPeriod, monthly, "UTC", now)
		require.NoError(t, err)
		assert.Nil(t, result[0].EndDate)
	})
}

func TestFinalizeActiveStreakLeavesHistoryAlone(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 6, 15, 0, 0, 0, time.UTC)
	streaks := []entity.Streak{
		closedStreak(day(2024, 12, 1), day(2024, 12, 10), 10),
		closedStreak(day(2025, 1, 4), day(2025, 1, 6), 3),
	}
	result, err := engine.FinalizeActiveStreak(streaks, entity.FrequencyDaily, &entity.FrequencyConfig{}, "UTC", now)
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.NotNil(t, result[0].EndDate)
	assert.Equal(t, day(2024, 12, 10), *result[0].EndDate)
	assert.Nil(t, result[1].EndDate)
	// Input is untouched.
	assert.NotNil(t, streaks[1].EndDate)
}

func TestFinalizeActiveStreakIdempotent(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 1, 6, 15, 0, 0, 0, time.UTC)
	cfg := &entity.FrequencyConfig{}
	streaks := []entity.Streak{closedStreak(day(2025, 1, 1), day(2025, 1, 6), 6)}
	first, err := engine.FinalizeActiveStreak(streaks, entity.FrequencyDaily, cfg, "UTC", now)
	require.NoError(t, err)
	second, err := engine.FinalizeActiveStreak(first, entity.FrequencyDaily, cfg, "UTC", now)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFinalizeActiveStreakEmpty(t *testing.T) {
	t.Parallel()
	result, err := engine.FinalizeActiveStreak(nil, entity.FrequencyDaily, &entity.FrequencyConfig{}, "UTC", time.Now())
	require.NoError(t, err)
	assert.Empty(t, result)
}
