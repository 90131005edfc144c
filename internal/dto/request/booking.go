package request

type CreateBookingRequest struct {
	ProductID       string  `json:"productId" validate:"required"`
	ProductName     string  `json:"productName" validate:"omitempty,max=120"`
	Price           float64 `json:"price" validate:"omitempty,gte=0"`
	UserEmail       string  `json:"userEmail" validate:"required,email"`
	MeetingLocation string  `json:"meetingLocation" validate:"omitempty,max=200"`
}
