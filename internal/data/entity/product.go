package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Condition   string             `bson:"condition,omitempty" json:"condition,omitempty"`
	Image       string             `bson:"img,omitempty" json:"img,omitempty"`
	District    string             `bson:"district" json:"district"`
	CategoryID  string             `bson:"categoryId" json:"categoryId"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	IsSold      bool               `bson:"isSold" json:"isSold"`
	PostedTime  time.Time          `bson:"postedTime" json:"postedTime"`
}

// ProductWithSeller is a product enriched with the seller's public
// fields, as produced by the listing lookup stage.
type ProductWithSeller struct {
	Product    `bson:",inline"`
	SellerInfo UserInfo `bson:"sellerInfo" json:"sellerInfo"`
}
