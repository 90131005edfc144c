package usecase

import (
	"context"
	"fmt"

	"remarket/internal/data/entity"
	"remarket/internal/data/repository"

	"go.uber.org/zap"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	log          *zap.Logger
}

func NewCategoryService(categoryRepo repository.CategoryRepository, log *zap.Logger) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		log:          log.With(zap.String("service", "category")),
	}
}

func (cs *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := cs.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}
