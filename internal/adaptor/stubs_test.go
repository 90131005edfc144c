package adaptor

import (
	"context"

	"remarket/internal/data/entity"
	"remarket/internal/dto/request"
	"remarket/internal/dto/response"
)

type stubProductService struct {
	createFn func(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error)
	listFn   func(ctx context.Context, params *request.ProductListParams) (*response.ProductListResponse, error)
	getFn    func(ctx context.Context, id string) (*response.ProductDetailResponse, error)
	toggleFn func(ctx context.Context, id string) error
}

func (s *stubProductService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	return s.createFn(ctx, req)
}

func (s *stubProductService) ListProducts(ctx context.Context, params *request.ProductListParams) (*response.ProductListResponse, error) {
	return s.listFn(ctx, params)
}

func (s *stubProductService) GetProduct(ctx context.Context, id string) (*response.ProductDetailResponse, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) ToggleSoldStatus(ctx context.Context, id string) error {
	return s.toggleFn(ctx, id)
}

type stubBookingService struct {
	createFn func(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	listFn   func(ctx context.Context, params *request.BookingListParams) ([]*entity.BookingWithCustomer, error)
	toggleFn func(ctx context.Context, id string) error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	return s.createFn(ctx, req)
}

func (s *stubBookingService) ListBookings(ctx context.Context, params *request.BookingListParams) ([]*entity.BookingWithCustomer, error) {
	return s.listFn(ctx, params)
}

func (s *stubBookingService) ToggleConfirmedStatus(ctx context.Context, id string) error {
	return s.toggleFn(ctx, id)
}

type stubUserService struct {
	createFn    func(ctx context.Context, req *request.CreateUserRequest) (*entity.User, error)
	getFn       func(ctx context.Context, email string) (*entity.User, error)
	listFn      func(ctx context.Context, params *request.UserListParams) ([]*entity.User, error)
	updateFn    func(ctx context.Context, id string, req *request.UpdateUserRequest) error
	setStatusFn func(ctx context.Context, id string, status string) error
	isAdminFn   func(ctx context.Context, email string) (bool, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*entity.User, error) {
	return s.createFn(ctx, req)
}

func (s *stubUserService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.getFn(ctx, email)
}

func (s *stubUserService) ListUsers(ctx context.Context, params *request.UserListParams) ([]*entity.User, error) {
	return s.listFn(ctx, params)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id string, req *request.UpdateUserRequest) error {
	return s.updateFn(ctx, id, req)
}

func (s *stubUserService) SetUserStatus(ctx context.Context, id string, status string) error {
	return s.setStatusFn(ctx, id, status)
}

func (s *stubUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.isAdminFn(ctx, email)
}

type stubAuthService struct {
	issueFn func(ctx context.Context, email string) (string, error)
}

func (s *stubAuthService) IssueToken(ctx context.Context, email string) (string, error) {
	return s.issueFn(ctx, email)
}
