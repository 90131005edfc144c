package repository

import (
	"context"
	"fmt"

	"remarket/internal/data/entity"
	"remarket/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CategoryRepository is read-only: categories are a static lookup
// maintained outside this service.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*entity.Category, error)
}

type categoryRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewCategoryRepository(db *database.Mongo, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		col: db.Collection(colCategories),
		log: log.With(zap.String("repository", "category")),
	}
}

func (cr *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	cur, err := cr.col.Find(ctx, bson.M{})
	if err != nil {
		cr.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	var categories []*entity.Category
	if err := cur.All(ctx, &categories); err != nil {
		cr.log.Error("Failed to decode categories", zap.Error(err))
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	return categories, nil
}
