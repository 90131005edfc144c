package wire

import (
	"remarket/internal/adaptor"
	"remarket/pkg/middleware"
	"remarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /products - filtered, paginated, seller-enriched listing
	r.Get("/products", productHandler.ListProducts)

	// GET /products/{id} - one product with seller info
	r.Get("/products/{id}", productHandler.GetProduct)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		// POST /products - create product, server stamps creation time
		r.Post("/products", productHandler.CreateProduct)

		// PUT /products/status/{id} - toggle sold flag
		r.Put("/products/status/{id}", productHandler.ToggleSoldStatus)
	})
}
