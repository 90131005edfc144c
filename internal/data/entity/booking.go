package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductID       string             `bson:"productId" json:"productId"`
	ProductName     string             `bson:"productName,omitempty" json:"productName,omitempty"`
	Price           float64            `bson:"price,omitempty" json:"price,omitempty"`
	UserEmail       string             `bson:"userEmail" json:"userEmail"`
	MeetingLocation string             `bson:"meetingLocation,omitempty" json:"meetingLocation,omitempty"`
	IsConfirmed     bool               `bson:"isConfirmed" json:"isConfirmed"`
	PostedTime      time.Time          `bson:"postedTime" json:"postedTime"`
}

// BookingWithCustomer is a booking enriched with the booking user's
// public fields, image included.
type BookingWithCustomer struct {
	Booking      `bson:",inline"`
	CustomerInfo UserInfo `bson:"customerInfo" json:"customerInfo"`
}
