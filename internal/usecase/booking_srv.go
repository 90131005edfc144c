package usecase

import (
	"context"
	"fmt"
	"time"

	"remarket/internal/data/entity"
	"remarket/internal/data/repository"
	"remarket/internal/dto/request"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	ListBookings(ctx context.Context, params *request.BookingListParams) ([]*entity.BookingWithCustomer, error)
	ToggleConfirmedStatus(ctx context.Context, id string) error
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	log         *zap.Logger
}

func NewBookingService(bookingRepo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		log:         log.With(zap.String("service", "booking")),
	}
}

// CreateBooking inserts a new unconfirmed booking with a server-stamped
// creation time
func (bs *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	booking := &entity.Booking{
		ProductID:       req.ProductID,
		ProductName:     req.ProductName,
		Price:           req.Price,
		UserEmail:       req.UserEmail,
		MeetingLocation: req.MeetingLocation,
		IsConfirmed:     false,
		PostedTime:      time.Now().UTC(),
	}

	if err := bs.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	bs.log.Info("Booking created",
		zap.String("booking_id", booking.ID.Hex()),
		zap.String("product_id", booking.ProductID),
		zap.String("user_email", booking.UserEmail),
	)

	return booking, nil
}

func (bs *bookingService) ListBookings(ctx context.Context, params *request.BookingListParams) ([]*entity.BookingWithCustomer, error) {
	if params.Required && (params.UserEmail == "" || params.ProductID == "") {
		return nil, fmt.Errorf("userEmail and productId are required: %w", ErrInvalidArgument)
	}

	bookings, err := bs.bookingRepo.List(ctx, repository.BookingListing{
		UserEmail: params.UserEmail,
		ProductID: params.ProductID,
	})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, nil
}

func (bs *bookingService) ToggleConfirmedStatus(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("booking id %q: %w", id, ErrInvalidArgument)
	}

	found, err := bs.bookingRepo.ToggleConfirmed(ctx, oid)
	if err != nil {
		return fmt.Errorf("toggle confirmed status: %w", err)
	}
	if !found {
		return fmt.Errorf("booking %s: %w", id, ErrNotFound)
	}

	bs.log.Info("Booking confirmed status toggled", zap.String("booking_id", id))

	return nil
}
