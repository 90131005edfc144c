package repository

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ProductListing holds the optional parameters accepted by the product
// listing endpoint. Empty strings contribute no predicate; Size == 0
// disables the page window and returns every matching document.
type ProductListing struct {
	District   string
	CategoryID string
	Search     string
	UserEmail  string
	Page       int
	Size       int
}

// Filter builds the $match predicate. Every present parameter
// contributes exactly one condition and all conditions are ANDed.
func (l ProductListing) Filter() bson.M {
	filter := bson.M{}
	if l.District != "" {
		filter["district"] = l.District
	}
	if l.CategoryID != "" {
		filter["categoryId"] = l.CategoryID
	}
	if l.Search != "" {
		filter["name"] = bson.M{"$regex": l.Search, "$options": "i"}
	}
	if l.UserEmail != "" {
		filter["userEmail"] = l.UserEmail
	}
	return filter
}

// Pipeline builds the aggregation pipeline for the product listing:
// match, newest-first sort, optional page window, then the seller
// enrichment lookup.
func (l ProductListing) Pipeline() []bson.M {
	pipeline := []bson.M{
		{"$match": l.Filter()},
		{"$sort": bson.M{"_id": -1}},
	}

	if l.Size > 0 {
		page := l.Page
		if page < 0 {
			page = 0
		}
		pipeline = append(pipeline,
			bson.M{"$skip": int64(page * l.Size)},
			bson.M{"$limit": int64(l.Size)},
		)
	}

	return append(pipeline,
		lookupUserInfo("sellerInfo", false),
		unwindStage("$sellerInfo"),
	)
}

// BookingListing holds the optional parameters accepted by the booking
// listing endpoint. Bookings are never paginated.
type BookingListing struct {
	UserEmail string
	ProductID string
}

func (l BookingListing) Filter() bson.M {
	filter := bson.M{}
	if l.UserEmail != "" {
		filter["userEmail"] = l.UserEmail
	}
	if l.ProductID != "" {
		filter["productId"] = l.ProductID
	}
	return filter
}

func (l BookingListing) Pipeline() []bson.M {
	return []bson.M{
		{"$match": l.Filter()},
		{"$sort": bson.M{"_id": -1}},
		lookupUserInfo("customerInfo", true),
		unwindStage("$customerInfo"),
	}
}

// lookupUserInfo joins the users collection on the stored email
// reference and projects only the user's public fields. The image is
// projected for bookings only.
func lookupUserInfo(as string, withImage bool) bson.M {
	projection := bson.M{
		"_id":    1,
		"name":   1,
		"email":  1,
		"mobile": 1,
		"status": 1,
	}
	if withImage {
		projection["img"] = 1
	}

	return bson.M{"$lookup": bson.M{
		"from":         colUsers,
		"localField":   "userEmail",
		"foreignField": "email",
		"pipeline":     []bson.M{{"$project": projection}},
		"as":           as,
	}}
}

// unwindStage flattens the single-element lookup result. Without
// preserveNullAndEmptyArrays a document whose referenced user no
// longer exists is dropped from the result set entirely.
func unwindStage(path string) bson.M {
	return bson.M{"$unwind": path}
}
