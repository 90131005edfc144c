package wire

import (
	"remarket/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCategory(r chi.Router, categoryHandler *adaptor.CategoryHandler) {
	// GET /categories - list all categories (public)
	r.Get("/categories", categoryHandler.ListCategories)
}
