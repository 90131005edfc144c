package usecase

import (
	"context"

	"remarket/internal/data/entity"
	"remarket/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubUserRepo struct {
	createFn      func(ctx context.Context, user *entity.User) error
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
	findAllFn     func(ctx context.Context, status, search string) ([]*entity.User, error)
	updateFn      func(ctx context.Context, id primitive.ObjectID, set bson.M) (bool, error)
	setStatusFn   func(ctx context.Context, id primitive.ObjectID, status entity.UserStatus) (bool, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindAll(ctx context.Context, status, search string) ([]*entity.User, error) {
	return s.findAllFn(ctx, status, search)
}

func (s *stubUserRepo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (bool, error) {
	return s.updateFn(ctx, id, set)
}

func (s *stubUserRepo) SetStatus(ctx context.Context, id primitive.ObjectID, status entity.UserStatus) (bool, error) {
	return s.setStatusFn(ctx, id, status)
}

type stubProductRepo struct {
	createFn     func(ctx context.Context, product *entity.Product) error
	findByIDFn   func(ctx context.Context, id primitive.ObjectID) (*entity.Product, error)
	listFn       func(ctx context.Context, listing repository.ProductListing) ([]*entity.ProductWithSeller, error)
	countFn      func(ctx context.Context, listing repository.ProductListing) (int64, error)
	toggleSoldFn func(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func (s *stubProductRepo) Create(ctx context.Context, product *entity.Product) error {
	return s.createFn(ctx, product)
}

func (s *stubProductRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Product, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubProductRepo) List(ctx context.Context, listing repository.ProductListing) ([]*entity.ProductWithSeller, error) {
	return s.listFn(ctx, listing)
}

func (s *stubProductRepo) Count(ctx context.Context, listing repository.ProductListing) (int64, error) {
	return s.countFn(ctx, listing)
}

func (s *stubProductRepo) ToggleSold(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return s.toggleSoldFn(ctx, id)
}

type stubBookingRepo struct {
	createFn          func(ctx context.Context, booking *entity.Booking) error
	listFn            func(ctx context.Context, listing repository.BookingListing) ([]*entity.BookingWithCustomer, error)
	toggleConfirmedFn func(ctx context.Context, id primitive.ObjectID) (bool, error)
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	return s.createFn(ctx, booking)
}

func (s *stubBookingRepo) List(ctx context.Context, listing repository.BookingListing) ([]*entity.BookingWithCustomer, error) {
	return s.listFn(ctx, listing)
}

func (s *stubBookingRepo) ToggleConfirmed(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return s.toggleConfirmedFn(ctx, id)
}
