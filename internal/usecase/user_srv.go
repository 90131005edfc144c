package usecase

import (
	"context"
	"errors"
	"fmt"

	"remarket/internal/data/entity"
	"remarket/internal/data/repository"
	"remarket/internal/dto/request"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type UserService interface {
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context, params *request.UserListParams) ([]*entity.User, error)
	UpdateUser(ctx context.Context, id string, req *request.UpdateUserRequest) error
	SetUserStatus(ctx context.Context, id string, status string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

// CreateUser registers a new user. Duplicate emails surface as
// ErrConflict via the unique index, so two concurrent registrations
// can never both succeed.
func (us *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*entity.User, error) {
	status := entity.UserStatus(req.Status)
	if status == "" {
		status = entity.StatusOrdinary
	}

	user := &entity.User{
		Name:    req.Name,
		Email:   req.Email,
		Mobile:  req.Mobile,
		Status:  status,
		Image:   req.Image,
		Address: req.Address,
	}

	if err := us.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("user with email %s %w", req.Email, ErrConflict)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.log.Info("User created",
		zap.String("user_id", user.ID.Hex()),
		zap.String("email", user.Email),
	)

	return user, nil
}

func (us *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}

	return user, nil
}

func (us *userService) ListUsers(ctx context.Context, params *request.UserListParams) ([]*entity.User, error) {
	users, err := us.userRepo.FindAll(ctx, params.Status, params.Search)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (us *userService) UpdateUser(ctx context.Context, id string, req *request.UpdateUserRequest) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("user id %q: %w", id, ErrInvalidArgument)
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Mobile != nil {
		set["mobile"] = *req.Mobile
	}
	if req.Image != nil {
		set["img"] = *req.Image
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if len(set) == 0 {
		return fmt.Errorf("no fields to update: %w", ErrInvalidArgument)
	}

	found, err := us.userRepo.Update(ctx, oid, set)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if !found {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	us.log.Info("User updated", zap.String("user_id", id))

	return nil
}

func (us *userService) SetUserStatus(ctx context.Context, id string, status string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("user id %q: %w", id, ErrInvalidArgument)
	}

	found, err := us.userRepo.SetStatus(ctx, oid, entity.UserStatus(status))
	if err != nil {
		return fmt.Errorf("set user status: %w", err)
	}
	if !found {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	us.log.Info("User status changed",
		zap.String("user_id", id),
		zap.String("status", status),
	)

	return nil
}

// IsAdmin reports whether the email belongs to an admin. An
// unregistered email is simply not an admin.
func (us *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := us.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("admin check: %w", err)
	}

	return user != nil && user.IsAdmin(), nil
}
