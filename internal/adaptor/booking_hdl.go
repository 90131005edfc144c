package adaptor

import (
	"encoding/json"
	"net/http"

	"remarket/internal/dto/request"
	"remarket/internal/usecase"
	"remarket/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /bookings (protected)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// ListBookings handles GET /bookings (public). With required=true both
// userEmail and productId must be supplied.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := &request.BookingListParams{
		UserEmail: query.Get("userEmail"),
		ProductID: query.Get("productId"),
		Required:  query.Get("required") != "",
	}

	bookings, err := h.service.ListBookings(r.Context(), params)
	if err != nil {
		handleServiceError(h.log, w, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ToggleConfirmedStatus handles PUT /bookings/status/{id} (protected)
func (h *BookingHandler) ToggleConfirmedStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	if err := h.service.ToggleConfirmedStatus(r.Context(), bookingID); err != nil {
		handleServiceError(h.log, w, err, "toggle confirmed status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
