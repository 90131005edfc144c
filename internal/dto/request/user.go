package request

type CreateUserRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=80"`
	Email   string `json:"email" validate:"required,email"`
	Mobile  string `json:"mobile" validate:"omitempty,max=20"`
	Status  string `json:"status" validate:"omitempty,oneof=Ordinary Admin"`
	Image   string `json:"img" validate:"omitempty,max=500"`
	Address string `json:"address" validate:"omitempty,max=200"`
}

// UpdateUserRequest is a partial update: only non-nil fields are
// written. Email and status are never updated through this request.
type UpdateUserRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=80"`
	Mobile  *string `json:"mobile" validate:"omitempty,max=20"`
	Image   *string `json:"img" validate:"omitempty,max=500"`
	Address *string `json:"address" validate:"omitempty,max=200"`
}

type SetUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Ordinary Admin"`
}
