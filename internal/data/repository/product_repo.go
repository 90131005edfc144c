package repository

import (
	"context"
	"fmt"

	"remarket/internal/data/entity"
	"remarket/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)
	List(ctx context.Context, listing ProductListing) ([]*entity.ProductWithSeller, error)
	Count(ctx context.Context, listing ProductListing) (int64, error)
	ToggleSold(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type productRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewProductRepository(db *database.Mongo, log *zap.Logger) ProductRepository {
	return &productRepository{
		col: db.Collection(colProducts),
		log: log.With(zap.String("repository", "product")),
	}
}

func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	result, err := pr.col.InsertOne(ctx, product)
	if err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.String("user_email", product.UserEmail),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	var product entity.Product
	err := pr.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.Hex()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.Hex(), err)
	}

	return &product, nil
}

// List runs the listing pipeline. Products whose seller no longer
// exists are dropped by the unwind stage.
func (pr *productRepository) List(ctx context.Context, listing ProductListing) ([]*entity.ProductWithSeller, error) {
	cur, err := pr.col.Aggregate(ctx, listing.Pipeline())
	if err != nil {
		pr.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	products := []*entity.ProductWithSeller{}
	if err := cur.All(ctx, &products); err != nil {
		pr.log.Error("Failed to decode products", zap.Error(err))
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

// Count counts every document matching the listing filter, independent
// of the page window
func (pr *productRepository) Count(ctx context.Context, listing ProductListing) (int64, error) {
	count, err := pr.col.CountDocuments(ctx, listing.Filter())
	if err != nil {
		pr.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

// ToggleSold flips the isSold flag. Returns false if the product does
// not exist.
func (pr *productRepository) ToggleSold(ctx context.Context, id primitive.ObjectID) (bool, error) {
	var product entity.Product
	err := pr.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		pr.log.Error("Failed to load product for toggle",
			zap.Error(err),
			zap.String("product_id", id.Hex()),
		)
		return false, fmt.Errorf("load product %s: %w", id.Hex(), err)
	}

	_, err = pr.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isSold": !product.IsSold}},
	)
	if err != nil {
		pr.log.Error("Failed to toggle product status",
			zap.Error(err),
			zap.String("product_id", id.Hex()),
		)
		return false, fmt.Errorf("toggle product %s: %w", id.Hex(), err)
	}

	return true, nil
}
