package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/internal/repository"
	"github.com/limbo/habinook/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestCreateCategory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCategoriesRepoWithConn(mock)
	category := entity.Category{
		UserID: userID,
		Name:   "health",
		Color:  strPtr("#00ff00"),
	}
	cid := uuid.New()
	ctx := context.Background()
	query := regexp.QuoteMeta(`INSERT INTO categories (user_id, name, color) VALUES ($1, $2, $3) RETURNING id;`)
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(category.UserID, category.Name, category.Color).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(cid))
		id, err := repo.Create(ctx, &category)
		assert.NoError(t, err)
		assert.Equal(t, cid, id)
	})
	t.Run("FK violation", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(category.UserID, category.Name, category.Color).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &category)
		assert.ErrorIs(t, err, errorvalues.ErrOwnerNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(category.UserID, category.Name, category.Color).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &category)
		assert.Error(t, err)
	})
}

func TestGetCategoryByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCategoriesRepoWithConn(mock)
	category := entity.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "health",
		Color:     strPtr("#00ff00"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT user_id, name, color, created_at, updated_at FROM categories WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(category.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "color", "created_at", "updated_at"}).
				AddRow(category.UserID, category.Name, category.Color, category.CreatedAt, category.UpdatedAt),
			)
		result, err := repo.GetByID(ctx, category.ID)
		assert.NoError(t, err)
		assert.Equal(t, category, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(category.ID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, category.ID)
		assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(category.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, category.ID)
		assert.Error(t, err)
	})
}

func TestGetCategoriesByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCategoriesRepoWithConn(mock)
	categories := []*entity.Category{
		{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      "health",
			Color:     strPtr("#00ff00"),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      "learning",
			CreatedAt: time.Now().Add(time.Hour),
			UpdatedAt: time.Now().Add(time.Hour),
		},
	}
	query := regexp.QuoteMeta(`SELECT id, user_id, name, color, created_at, updated_at
		FROM categories WHERE user_id = $1 ORDER BY created_at;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "user_id", "name", "color", "created_at", "updated_at"})
		for _, c := range categories {
			rows.AddRow(c.ID, c.UserID, c.Name, c.Color, c.CreatedAt, c.UpdatedAt)
		}
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, len(categories), len(result))
		for i := range result {
			assert.Equal(t, *categories[i], *result[i])
		}
	})
	t.Run("no categories", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "name", "color", "created_at", "updated_at"}))
		result, err := repo.GetByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(result))
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID)
		assert.Error(t, err)
	})
}

func TestUpdateCategory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCategoriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE categories SET name = $1, color = $2, updated_at = NOW() WHERE id = $3;`)
	category := entity.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "health",
		Color:  strPtr("#00ff00"),
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(category.Name, category.Color, category.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &category)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(category.Name, category.Color, category.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &category)
		assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(category.Name, category.Color, category.ID).
			WillReturnError(errors.New("db error"))
		err := repo.Update(ctx, &category)
		assert.Error(t, err)
	})
}

func TestDeleteCategory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCategoriesRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		err := repo.Delete(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		err := repo.Delete(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id).
			WillReturnError(errors.New("db error"))
		err := repo.Delete(ctx, id)
		assert.Error(t, err)
	})
}
