package repository

import (
	"errors"

	"remarket/pkg/database"

	"go.uber.org/zap"
)

// Collection names
const (
	colUsers      = "users"
	colCategories = "categories"
	colProducts   = "products"
	colBookings   = "bookings"
)

// ErrDuplicateKey is returned when an insert violates a unique index
var ErrDuplicateKey = errors.New("duplicate key")

type Repository struct {
	User     UserRepository
	Category CategoryRepository
	Product  ProductRepository
	Booking  BookingRepository
}

func NewRepository(db *database.Mongo, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
