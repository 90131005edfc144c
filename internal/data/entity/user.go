package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStatus string

const (
	StatusOrdinary UserStatus = "Ordinary"
	StatusAdmin    UserStatus = "Admin"
)

type User struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	Mobile  string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Status  UserStatus         `bson:"status" json:"status"`
	Image   string             `bson:"img,omitempty" json:"img,omitempty"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Status == StatusAdmin
}

// UserInfo is the projected subset of public user fields embedded into
// listing results by the enrichment lookup. Image is only projected for
// bookings.
type UserInfo struct {
	ID     primitive.ObjectID `bson:"_id" json:"_id"`
	Name   string             `bson:"name" json:"name"`
	Email  string             `bson:"email" json:"email"`
	Mobile string             `bson:"mobile,omitempty" json:"mobile,omitempty"`
	Image  string             `bson:"img,omitempty" json:"img,omitempty"`
	Status UserStatus         `bson:"status" json:"status"`
}
