package service

import (
	"context"
	"errors"
	"log"
	"regexp"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habinook/internal/error_values"
	"github.com/limbo/habinook/internal/repository"
	"github.com/limbo/habinook/pkg/entity"
)

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CategoriesService struct {
	repo repository.CategoriesRepositoryI
}

func NewCategoriesService(categoriesRepo repository.CategoriesRepositoryI) *CategoriesService {
	if categoriesRepo == nil {
		log.Fatal("provided nil categoriesRepo")
	}
	return &CategoriesService{
		repo: categoriesRepo,
	}
}

func (cs *CategoriesService) CreateCategory(ctx context.Context, userID uuid.UUID, req CreateCategoryRequest) (*entity.Category, error) {
	if err := validateCategoryFields(req.Name, req.Color); err != nil {
		return nil, err
	}
	category := entity.Category{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
	}
	id, err := cs.repo.Create(ctx, &category)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("categories repository error: " + err.Error())
	}
	created, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, errors.New("categories repository error: " + err.Error())
	}
	return created, nil
}

func (cs *CategoriesService) GetUserCategories(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	categories, err := cs.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.New("categories repository error: " + err.Error())
	}
	return categories, nil
}

func (cs *CategoriesService) UpdateCategory(ctx context.Context, userID uuid.UUID, req UpdateCategoryRequest) (*entity.Category, error) {
	category, err := cs.repo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, errors.New("categories repository error: " + err.Error())
	}
	if category.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	if err := validateCategoryFields(req.Name, req.Color); err != nil {
		return nil, err
	}
	category.Name = req.Name
	category.Color = req.Color
	if err := cs.repo.Update(ctx, category); err != nil {
		if errors.Is(err, errorvalues.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, errors.New("categories repository error: " + err.Error())
	}
	return category, nil
}

func (cs *CategoriesService) DeleteCategory(ctx context.Context, categoryID, userID uuid.UUID) error {
	category, err := cs.repo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCategoryNotFound) {
			return err
		}
		return errors.New("categories repository error: " + err.Error())
	}
	if category.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	if err := cs.repo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, errorvalues.ErrCategoryNotFound) {
			return err
		}
		return errors.New("categories repository error: " + err.Error())
	}
	return nil
}

func validateCategoryFields(name string, color *string) error {
	if name == "" || len(name) > 100 {
		return errorvalues.ErrInvalidCategory
	}
	if color != nil && !hexColorRe.MatchString(*color) {
		return errorvalues.ErrInvalidCategory
	}
	return nil
}
