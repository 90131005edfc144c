package request

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Condition   string  `json:"condition" validate:"omitempty,max=60"`
	Image       string  `json:"img" validate:"omitempty,max=500"`
	District    string  `json:"district" validate:"required,max=80"`
	CategoryID  string  `json:"categoryId" validate:"required"`
	UserEmail   string  `json:"userEmail" validate:"required,email"`
}
