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
	"github.com/limbo/habinook/pkg/httputil"
)

type CategoryRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color,omitempty"`
}

func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create category error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CategoryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create category error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	category, err := s.categoryService.CreateCategory(ctx, uid, service.CreateCategoryRequest{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidCategory):
			logger.Error("create category error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category fields", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create category error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create category: user doesn't exists", nil)
		default:
			logger.Error("create category error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating category", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"category_id": category.ID.String()})
	logger.Info("category created")
}

func (s *Server) GetCategories(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get categories error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	categories, err := s.categoryService.GetUserCategories(ctx, uid)
	if err != nil {
		logger.Error("get categories error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting categories", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"categories": categories})
	logger.Info("categories provided")
}

func (s *Server) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update category error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	categoryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("update category error: invalid category id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category id in path value", nil)
		return
	}
	var req CategoryRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update category error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	category, err := s.categoryService.UpdateCategory(ctx, uid, service.UpdateCategoryRequest{
		CategoryID: categoryID,
		Name:       req.Name,
		Color:      req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidCategory):
			logger.Error("update category error: invalid fields")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category fields", nil)
		case errors.Is(err, errorvalues.ErrCategoryNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("update category error: unexist category")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "category doesn't exist", nil)
		default:
			logger.Error("update category error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating category", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"category": category})
	logger.Info("category updated")
}

func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("category deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	categoryID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("category deletion error: invalid category id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid category id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.categoryService.DeleteCategory(ctx, categoryID, uid)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCategoryNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("category deletion error: unexist category")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "category doesn't exist", nil)
		default:
			logger.Error("category deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting category", nil)
		}
		return
	}
	logger.Info("category deleted")
}
