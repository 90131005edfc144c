package usecase

import (
	"context"
	"fmt"
	"testing"

	"remarket/internal/data/entity"
	"remarket/internal/data/repository"
	"remarket/internal/dto/request"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestCreateUser(t *testing.T) {
	t.Run("defaults status to Ordinary", func(t *testing.T) {
		var inserted *entity.User
		repo := &stubUserRepo{
			createFn: func(_ context.Context, user *entity.User) error {
				inserted = user
				return nil
			},
		}
		svc := NewUserService(repo, zap.NewNop())

		user, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
			Name:  "Alice",
			Email: "alice@example.com",
		})
		require.NoError(t, err)
		require.Equal(t, entity.StatusOrdinary, user.Status)
		require.Equal(t, "alice@example.com", inserted.Email)
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		repo := &stubUserRepo{
			createFn: func(_ context.Context, _ *entity.User) error {
				return fmt.Errorf("create user: %w", repository.ErrDuplicateKey)
			},
		}
		svc := NewUserService(repo, zap.NewNop())

		_, err := svc.CreateUser(context.Background(), &request.CreateUserRequest{
			Name:  "Alice",
			Email: "alice@example.com",
		})
		require.ErrorIs(t, err, ErrConflict)
	})
}

func TestGetUserByEmail(t *testing.T) {
	t.Run("missing user is not found", func(t *testing.T) {
		repo := &stubUserRepo{
			findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
				return nil, nil
			},
		}
		svc := NewUserService(repo, zap.NewNop())

		_, err := svc.GetUserByEmail(context.Background(), "ghost@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("returns stored user", func(t *testing.T) {
		repo := &stubUserRepo{
			findByEmailFn: func(_ context.Context, email string) (*entity.User, error) {
				return &entity.User{Email: email, Status: entity.StatusAdmin}, nil
			},
		}
		svc := NewUserService(repo, zap.NewNop())

		user, err := svc.GetUserByEmail(context.Background(), "admin@example.com")
		require.NoError(t, err)
		require.Equal(t, "admin@example.com", user.Email)
	})
}

func TestUpdateUser(t *testing.T) {
	name := "Bob"
	mobile := "0123456789"

	t.Run("malformed id is invalid argument", func(t *testing.T) {
		svc := NewUserService(&stubUserRepo{}, zap.NewNop())

		err := svc.UpdateUser(context.Background(), "not-an-oid", &request.UpdateUserRequest{Name: &name})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("empty update is invalid argument", func(t *testing.T) {
		svc := NewUserService(&stubUserRepo{}, zap.NewNop())

		err := svc.UpdateUser(context.Background(), primitive.NewObjectID().Hex(), &request.UpdateUserRequest{})
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("only provided fields are set", func(t *testing.T) {
		var gotSet bson.M
		repo := &stubUserRepo{
			updateFn: func(_ context.Context, _ primitive.ObjectID, set bson.M) (bool, error) {
				gotSet = set
				return true, nil
			},
		}
		svc := NewUserService(repo, zap.NewNop())

		err := svc.UpdateUser(context.Background(), primitive.NewObjectID().Hex(), &request.UpdateUserRequest{
			Name:   &name,
			Mobile: &mobile,
		})
		require.NoError(t, err)
		require.Equal(t, bson.M{"name": "Bob", "mobile": "0123456789"}, gotSet)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		repo := &stubUserRepo{
			updateFn: func(_ context.Context, _ primitive.ObjectID, _ bson.M) (bool, error) {
				return false, nil
			},
		}
		svc := NewUserService(repo, zap.NewNop())

		err := svc.UpdateUser(context.Background(), primitive.NewObjectID().Hex(), &request.UpdateUserRequest{Name: &name})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSetUserStatus(t *testing.T) {
	t.Run("malformed id is invalid argument", func(t *testing.T) {
		svc := NewUserService(&stubUserRepo{}, zap.NewNop())

		err := svc.SetUserStatus(context.Background(), "xyz", "Admin")
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("status is passed through", func(t *testing.T) {
		var gotStatus entity.UserStatus
		repo := &stubUserRepo{
			setStatusFn: func(_ context.Context, _ primitive.ObjectID, status entity.UserStatus) (bool, error) {
				gotStatus = status
				return true, nil
			},
		}
		svc := NewUserService(repo, zap.NewNop())

		err := svc.SetUserStatus(context.Background(), primitive.NewObjectID().Hex(), "Admin")
		require.NoError(t, err)
		require.Equal(t, entity.StatusAdmin, gotStatus)
	})
}

func TestIsAdmin(t *testing.T) {
	cases := []struct {
		name string
		user *entity.User
		want bool
	}{
		{"admin user", &entity.User{Status: entity.StatusAdmin}, true},
		{"ordinary user", &entity.User{Status: entity.StatusOrdinary}, false},
		{"unregistered email", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubUserRepo{
				findByEmailFn: func(_ context.Context, _ string) (*entity.User, error) {
					return tc.user, nil
				},
			}
			svc := NewUserService(repo, zap.NewNop())

			isAdmin, err := svc.IsAdmin(context.Background(), "someone@example.com")
			require.NoError(t, err)
			require.Equal(t, tc.want, isAdmin)
		})
	}
}
