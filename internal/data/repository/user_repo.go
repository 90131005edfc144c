package repository

import (
	"context"
	"fmt"

	"remarket/internal/data/entity"
	"remarket/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, status, search string) ([]*entity.User, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (bool, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status entity.UserStatus) (bool, error)
}

type userRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewUserRepository(db *database.Mongo, log *zap.Logger) UserRepository {
	return &userRepository{
		col: db.Collection(colUsers),
		log: log.With(zap.String("repository", "user")),
	}
}

// Create inserts a new user. A duplicate email trips the unique index
// and is reported as ErrDuplicateKey.
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	if user.Status == "" {
		user.Status = entity.StatusOrdinary
	}

	result, err := ur.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicateKey)
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}

	return nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := ur.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

// FindAll lists users newest first, optionally filtered by exact status
// and a case-insensitive email substring
func (ur *userRepository) FindAll(ctx context.Context, status, search string) ([]*entity.User, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	if search != "" {
		filter["email"] = bson.M{"$regex": search, "$options": "i"}
	}

	opts := options.Find().SetSort(bson.M{"_id": -1})
	cur, err := ur.col.Find(ctx, filter, opts)
	if err != nil {
		ur.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []*entity.User
	if err := cur.All(ctx, &users); err != nil {
		ur.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

// Update applies a partial $set to the user document. Returns false if
// no user matched the id.
func (ur *userRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (bool, error) {
	result, err := ur.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
		)
		return false, fmt.Errorf("update user %s: %w", id.Hex(), err)
	}

	return result.MatchedCount > 0, nil
}

func (ur *userRepository) SetStatus(ctx context.Context, id primitive.ObjectID, status entity.UserStatus) (bool, error) {
	result, err := ur.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		ur.log.Error("Failed to set user status",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("set user status %s: %w", id.Hex(), err)
	}

	return result.MatchedCount > 0, nil
}
