package request

// ProductListParams are the recognized query parameters of the product
// listing endpoint. Anything else in the query string is ignored.
type ProductListParams struct {
	District   string
	CategoryID string
	Search     string
	Email      string
	Page       int
	Size       int
}

// BookingListParams are the recognized query parameters of the booking
// listing endpoint. When Required is set, both UserEmail and ProductID
// must be present.
type BookingListParams struct {
	UserEmail string
	ProductID string
	Required  bool
}

type UserListParams struct {
	Status string
	Search string
}
