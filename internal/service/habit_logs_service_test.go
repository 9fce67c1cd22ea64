package service_test

import (
	"context"
	"errors"
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

// streaksRecorderMock counts recompute triggers instead of rebuilding anything.
type streaksRecorderMock struct {
	calls     int
	lastHabit uuid.UUID
	err       error
}

func (m *streaksRecorderMock) Recompute(ctx context.Context, habitID, userID uuid.UUID, now time.Time) error {
	m.calls++
	m.lastHabit = habitID
	return m.err
}

func (m *streaksRecorderMock) GetStreaks(ctx context.Context, habitID, userID uuid.UUID) ([]entity.Streak, error) {
	return nil, nil
}

func TestCreateLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	logsRepo := mocks.NewMockHabitLogsRepositoryI(ctrl)
	recorder := &streaksRecorderMock{}
	s := service.NewHabitLogsService(habitsRepo, logsRepo, recorder)
	ctx := context.Background()
	logID := uuid.New()
	targetDate := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	req := service.CreateLogRequest{
		HabitID:    habitID,
		TargetDate: targetDate,
		LoggedAt:   targetDate.Add(9 * time.Hour),
		Status:     entity.StatusCompleted,
	}
	t.Run("created and recompute triggered", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		logsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(logID, nil)
		habitLog, err := s.CreateLog(ctx, userID, req)
		assert.NoError(t, err)
		assert.Equal(t, logID, habitLog.ID)
		assert.Equal(t, 1, recorder.calls)
		assert.Equal(t, habitID, recorder.lastHabit)
	})
	t.Run("future target date rejected", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		future := req
		future.TargetDate = time.Now().AddDate(0, 0, 2)
		_, err := s.CreateLog(ctx, userID, future)
		assert.ErrorIs(t, err, errorvalues.ErrLogDateNotAllowed)
		assert.Equal(t, 1, recorder.calls)
	})
	t.Run("wrong owner", func(t *testing.T) {
		foreign := testHabit
		foreign.UserID = uuid.New()
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&foreign, nil)
		_, err := s.CreateLog(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("unexist habit", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
		_, err := s.CreateLog(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("transient recompute failure doesn't fail the write", func(t *testing.T) {
		recorder.err = errors.New("db down")
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		logsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(logID, nil)
		_, err := s.CreateLog(ctx, userID, req)
		assert.NoError(t, err)
	})
	t.Run("missing timezone surfaces with the created log", func(t *testing.T) {
		recorder.err = errorvalues.ErrMissingTimezone
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		logsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(logID, nil)
		habitLog, err := s.CreateLog(ctx, userID, req)
		assert.ErrorIs(t, err, errorvalues.ErrMissingTimezone)
		require.NotNil(t, habitLog)
		assert.Equal(t, logID, habitLog.ID)
	})
}

func TestUpdateLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	logsRepo := mocks.NewMockHabitLogsRepositoryI(ctrl)
	recorder := &streaksRecorderMock{}
	s := service.NewHabitLogsService(habitsRepo, logsRepo, recorder)
	ctx := context.Background()
	logID := uuid.New()
	stored := &entity.HabitLog{
		ID:         logID,
		HabitID:    habitID,
		UserID:     userID,
		TargetDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		LoggedAt:   time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
		Status:     entity.StatusCompleted,
	}
	t.Run("updated and recompute triggered", func(t *testing.T) {
		fresh := *stored
		logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(&fresh, nil)
		logsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		err := s.UpdateLog(ctx, userID, service.UpdateLogRequest{
			LogID:  logID,
			Status: entity.StatusSkipped,
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, recorder.calls)
	})
	t.Run("wrong owner", func(t *testing.T) {
		foreign := *stored
		foreign.UserID = uuid.New()
		logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(&foreign, nil)
		err := s.UpdateLog(ctx, userID, service.UpdateLogRequest{LogID: logID, Status: entity.StatusSkipped})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		assert.Equal(t, 1, recorder.calls)
	})
	t.Run("unexist log", func(t *testing.T) {
		logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(nil, errorvalues.ErrLogNotFound)
		err := s.UpdateLog(ctx, userID, service.UpdateLogRequest{LogID: logID, Status: entity.StatusSkipped})
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
	t.Run("missing timezone surfaces after the write", func(t *testing.T) {
		recorder.err = errorvalues.ErrMissingTimezone
		fresh := *stored
		logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(&fresh, nil)
		logsRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		err := s.UpdateLog(ctx, userID, service.UpdateLogRequest{LogID: logID, Status: entity.StatusSkipped})
		assert.ErrorIs(t, err, errorvalues.ErrMissingTimezone)
	})
}

func TestDeleteLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	logsRepo := mocks.NewMockHabitLogsRepositoryI(ctrl)
	recorder := &streaksRecorderMock{}
	s := service.NewHabitLogsService(habitsRepo, logsRepo, recorder)
	ctx := context.Background()
	logID := uuid.New()
	stored := &entity.HabitLog{
		ID:      logID,
		HabitID: habitID,
		UserID:  userID,
		Status:  entity.StatusCompleted,
	}
	t.Run("deleted and recompute triggered", func(t *testing.T) {
		logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(stored, nil)
		logsRepo.EXPECT().Delete(gomock.Any(), logID).Return(nil)
		err := s.DeleteLog(ctx, logID, userID)
		assert.NoError(t, err)
		assert.Equal(t, 1, recorder.calls)
	})
	t.Run("unexist log", func(t *testing.T) {
		logsRepo.EXPECT().GetByID(gomock.Any(), logID).Return(nil, errorvalues.ErrLogNotFound)
		err := s.DeleteLog(ctx, logID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrLogNotFound)
	})
}

func TestGetHabitLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	logsRepo := mocks.NewMockHabitLogsRepositoryI(ctrl)
	recorder := &streaksRecorderMock{}
	s := service.NewHabitLogsService(habitsRepo, logsRepo, recorder)
	ctx := context.Background()
	logs := []entity.HabitLog{
		{
			ID:         uuid.New(),
			HabitID:    habitID,
			UserID:     userID,
			TargetDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			Status:     entity.StatusCompleted,
		},
	}
	t.Run("success", func(t *testing.T) {
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&testHabit, nil)
		logsRepo.EXPECT().GetByHabitID(gomock.Any(), habitID).Return(logs, nil)
		result, err := s.GetHabitLogs(ctx, habitID, userID)
		assert.NoError(t, err)
		assert.Equal(t, logs, result)
	})
	t.Run("wrong owner", func(t *testing.T) {
		foreign := testHabit
		foreign.UserID = uuid.New()
		habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(&foreign, nil)
		_, err := s.GetHabitLogs(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}
