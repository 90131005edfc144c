package usecase

import (
	"remarket/internal/data/repository"
	"remarket/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Category CategoryService
	Product  ProductService
	Booking  BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, config, log),
		User:     NewUserService(repo.User, log),
		Category: NewCategoryService(repo.Category, log),
		Product:  NewProductService(repo.Product, repo.User, log),
		Booking:  NewBookingService(repo.Booking, log),
	}
}
