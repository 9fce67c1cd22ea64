package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/internal/service"
	"github.com/limbo/habinook/pkg/entity"
	"github.com/limbo/habinook/pkg/httputil"
)

type CreateFrequencyRequest struct {
	Type        entity.FrequencyType   `json:"type"`
	Config      entity.FrequencyConfig `json:"config"`
	ActiveFrom  time.Time              `json:"activeFrom"`
	ActiveUntil *time.Time             `json:"activeUntil,omitempty"`
}

type CreateLogRequest struct {
	HabitID        string           `json:"habitId"`
	TargetDate     time.Time        `json:"targetDate"`
	TargetTimeSlot *string          `json:"targetTimeSlot,omitempty"`
	LoggedAt       time.Time        `json:"loggedAt"`
	Status         entity.LogStatus `json:"status"`
}

type UpdateLogRequest struct {
	Status   entity.LogStatus `json:"status"`
	LoggedAt time.Time        `json:"loggedAt"`
}

type TodayHabitResponse struct {
	Habit     *entity.Habit     `json:"habit"`
	Instances []entity.Instance `json:"instances"`
}

type GetTodayResponse struct {
	Date   string               `json:"date"`
	Habits []TodayHabitResponse `json:"habits"`
}

func (s *Server) CreateFrequency(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create frequency error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("create frequency error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req CreateFrequencyRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create frequency error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	frequency, err := s.frequencyService.CreateFrequency(ctx, uid, service.CreateFrequencyRequest{
		HabitID:     habitID,
		Type:        req.Type,
		Config:      req.Config,
		ActiveFrom:  req.ActiveFrom,
		ActiveUntil: req.ActiveUntil,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidFrequency):
			logger.Error("create frequency error: invalid config")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid frequency config", nil)
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("create frequency error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("create frequency error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating frequency", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"frequency_id": frequency.ID.String()})
	logger.Info("frequency created")
}

func (s *Server) GetFrequencies(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get frequencies error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get frequencies error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	frequencies, err := s.frequencyService.GetHabitFrequencies(ctx, habitID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get frequencies error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("get frequencies error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting frequencies", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"frequencies": frequencies})
	logger.Info("frequencies provided")
}

func (s *Server) CreateLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		logger.Error("create log error: invalid habit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habitLog, err := s.logService.CreateLog(ctx, uid, service.CreateLogRequest{
		HabitID:        habitID,
		TargetDate:     req.TargetDate,
		TargetTimeSlot: req.TargetTimeSlot,
		LoggedAt:       req.LoggedAt,
		Status:         req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrLogDateNotAllowed):
			logger.Error("create log error: target date in the future")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "cannot log a future date", nil)
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("create log error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrMissingTimezone):
			logger.Error("create log error: frequency has no timezone, streaks are stale")
			httputil.WriteErrorResponse(w, http.StatusConflict, "log saved, but the habit frequency has no timezone and streaks were not rebuilt", nil)
		default:
			logger.Error("create log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating log", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"log_id": habitLog.ID.String()})
	logger.Info("log created")
}

func (s *Server) UpdateLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	logID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update log error: invalid log id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid log id in path value", nil)
		return
	}
	var req UpdateLogRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.logService.UpdateLog(ctx, uid, service.UpdateLogRequest{
		LogID:    logID,
		LoggedAt: req.LoggedAt,
		Status:   req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrLogNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update log error: unexist log")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "log doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrMissingTimezone):
			logger.Error("update log error: frequency has no timezone, streaks are stale")
			httputil.WriteErrorResponse(w, http.StatusConflict, "log updated, but the habit frequency has no timezone and streaks were not rebuilt", nil)
		default:
			logger.Error("update log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating log", nil)
		}
		return
	}
	logger.Info("log updated")
}

func (s *Server) DeleteLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	logID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("log deletion error: invalid log id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid log id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.logService.DeleteLog(ctx, logID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrLogNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("log deletion error: unexist log")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "log doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrMissingTimezone):
			logger.Error("log deletion error: frequency has no timezone, streaks are stale")
			httputil.WriteErrorResponse(w, http.StatusConflict, "log deleted, but the habit frequency has no timezone and streaks were not rebuilt", nil)
		default:
			logger.Error("log deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting log", nil)
		}
		return
	}
	logger.Info("log deleted")
}

func (s *Server) GetLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get logs error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	logs, err := s.logService.GetHabitLogs(ctx, habitID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get logs error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("get logs error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting logs", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"logs": logs})
	logger.Info("logs provided")
}

func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get streaks error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get streaks error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	streaks, err := s.streakService.GetStreaks(ctx, habitID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("get streaks error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("get streaks error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streaks", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"streaks": streaks})
	logger.Info("streaks provided")
}

func (s *Server) GetToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get today error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			logger.Error("get today error: invalid date query param")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	dueHabits, err := s.todayService.DueHabits(ctx, uid, date, now)
	if err != nil {
		logger.Error("get today error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while evaluating due habits", nil)
		return
	}
	habits := make([]TodayHabitResponse, 0, len(dueHabits))
	for _, dh := range dueHabits {
		habits = append(habits, TodayHabitResponse{
			Habit:     dh.Habit,
			Instances: dh.Instances,
		})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetTodayResponse{
		Date:   date.Format("2006-01-02"),
		Habits: habits,
	})
	logger.Info("today list provided")
}
