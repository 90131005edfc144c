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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	List(ctx context.Context, listing BookingListing) ([]*entity.BookingWithCustomer, error)
	ToggleConfirmed(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type bookingRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewBookingRepository(db *database.Mongo, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		col: db.Collection(colBookings),
		log: log.With(zap.String("repository", "booking")),
	}
}

func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	result, err := br.col.InsertOne(ctx, booking)
	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("product_id", booking.ProductID),
			zap.String("user_email", booking.UserEmail),
		)
		return fmt.Errorf("create booking for product %s: %w", booking.ProductID, err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}

	return nil
}

// List runs the booking listing pipeline. Bookings whose user no
// longer exists are dropped by the unwind stage.
func (br *bookingRepository) List(ctx context.Context, listing BookingListing) ([]*entity.BookingWithCustomer, error) {
	cur, err := br.col.Aggregate(ctx, listing.Pipeline())
	if err != nil {
		br.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cur.Close(ctx)

	bookings := []*entity.BookingWithCustomer{}
	if err := cur.All(ctx, &bookings); err != nil {
		br.log.Error("Failed to decode bookings", zap.Error(err))
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	return bookings, nil
}

// ToggleConfirmed flips the isConfirmed flag. Returns false if the
// booking does not exist.
func (br *bookingRepository) ToggleConfirmed(ctx context.Context, id primitive.ObjectID) (bool, error) {
	var booking entity.Booking
	err := br.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		br.log.Error("Failed to load booking for toggle",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return false, fmt.Errorf("load booking %s: %w", id.Hex(), err)
	}

	_, err = br.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isConfirmed": !booking.IsConfirmed}},
	)
	if err != nil {
		br.log.Error("Failed to toggle booking status",
			zap.Error(err),
			zap.String("booking_id", id.Hex()),
		)
		return false, fmt.Errorf("toggle booking %s: %w", id.Hex(), err)
	}

	return true, nil
}
