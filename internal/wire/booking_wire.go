package wire

import (
	"remarket/internal/adaptor"
	"remarket/pkg/middleware"
	"remarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /bookings - filtered, customer-enriched listing
	r.Get("/bookings", bookingHandler.ListBookings)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		// POST /bookings - create booking, server stamps creation time
		r.Post("/bookings", bookingHandler.CreateBooking)

		// PUT /bookings/status/{id} - toggle confirmation flag
		r.Put("/bookings/status/{id}", bookingHandler.ToggleConfirmedStatus)
	})
}
