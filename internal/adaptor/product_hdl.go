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

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// CreateProduct handles POST /products (protected)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create product")
		return
	}

	utils.ResponseCreated(w, "success", product)
}

// ListProducts handles GET /products (public). Every query parameter is
// optional; absent pagination returns the whole filtered set.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := &request.ProductListParams{
		District:   query.Get("district"),
		CategoryID: query.Get("categoryId"),
		Search:     query.Get("search"),
		Email:      query.Get("email"),
		Page:       utils.ParsePage(query.Get("page")),
		Size:       utils.ParseSize(query.Get("size")),
	}

	products, err := h.service.ListProducts(r.Context(), params)
	if err != nil {
		handleServiceError(h.log, w, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "success", products)
}

// GetProduct handles GET /products/{id} (public)
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		handleServiceError(h.log, w, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "success", product)
}

// ToggleSoldStatus handles PUT /products/status/{id} (protected)
func (h *ProductHandler) ToggleSoldStatus(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	if err := h.service.ToggleSoldStatus(r.Context(), productID); err != nil {
		handleServiceError(h.log, w, err, "toggle sold status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
