package adaptor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"remarket/internal/data/entity"
	"remarket/internal/dto/request"
	"remarket/internal/dto/response"
	"remarket/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func productRouter(svc usecase.ProductService) *chi.Mux {
	h := NewProductHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Get("/products", h.ListProducts)
	r.Get("/products/{id}", h.GetProduct)
	r.Post("/products", h.CreateProduct)
	r.Put("/products/status/{id}", h.ToggleSoldStatus)
	return r
}

func TestListProductsHandler(t *testing.T) {
	t.Run("query parameters become typed listing params", func(t *testing.T) {
		var gotParams *request.ProductListParams
		svc := &stubProductService{
			listFn: func(_ context.Context, params *request.ProductListParams) (*response.ProductListResponse, error) {
				gotParams = params
				return &response.ProductListResponse{Count: 1}, nil
			},
		}
		r := productRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products?district=Dhaka&categoryId=5&search=tv&email=a@x.com&page=2&size=10", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "Dhaka", gotParams.District)
		require.Equal(t, "5", gotParams.CategoryID)
		require.Equal(t, "tv", gotParams.Search)
		require.Equal(t, "a@x.com", gotParams.Email)
		require.Equal(t, 2, gotParams.Page)
		require.Equal(t, 10, gotParams.Size)
	})

	t.Run("missing pagination disables the window", func(t *testing.T) {
		var gotParams *request.ProductListParams
		svc := &stubProductService{
			listFn: func(_ context.Context, params *request.ProductListParams) (*response.ProductListResponse, error) {
				gotParams = params
				return &response.ProductListResponse{}, nil
			},
		}
		r := productRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, gotParams.Page)
		require.Equal(t, 0, gotParams.Size)
	})

	t.Run("malformed pagination falls back to defaults", func(t *testing.T) {
		var gotParams *request.ProductListParams
		svc := &stubProductService{
			listFn: func(_ context.Context, params *request.ProductListParams) (*response.ProductListResponse, error) {
				gotParams = params
				return &response.ProductListResponse{}, nil
			},
		}
		r := productRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products?page=abc&size=-5", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 0, gotParams.Page)
		require.Equal(t, 0, gotParams.Size)
	})
}

func TestGetProductHandler(t *testing.T) {
	t.Run("invalid argument maps to 400", func(t *testing.T) {
		svc := &stubProductService{
			getFn: func(_ context.Context, id string) (*response.ProductDetailResponse, error) {
				return nil, fmt.Errorf("product id %q: %w", id, usecase.ErrInvalidArgument)
			},
		}
		r := productRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products/not-an-oid", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		svc := &stubProductService{
			getFn: func(_ context.Context, id string) (*response.ProductDetailResponse, error) {
				return nil, fmt.Errorf("product %s: %w", id, usecase.ErrNotFound)
			},
		}
		r := productRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products/64f000000000000000000000", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unexpected errors map to 500", func(t *testing.T) {
		svc := &stubProductService{
			getFn: func(_ context.Context, _ string) (*response.ProductDetailResponse, error) {
				return nil, fmt.Errorf("mongo exploded")
			},
		}
		r := productRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/products/64f000000000000000000000", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestCreateProductHandler(t *testing.T) {
	t.Run("validation failure is 400 without touching the service", func(t *testing.T) {
		called := false
		svc := &stubProductService{
			createFn: func(_ context.Context, _ *request.CreateProductRequest) (*entity.Product, error) {
				called = true
				return nil, nil
			},
		}
		r := productRouter(svc)

		body := `{"name":"TV"}` // missing district, categoryId, userEmail
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.False(t, called)
	})

	t.Run("valid body creates and returns 201", func(t *testing.T) {
		var gotReq *request.CreateProductRequest
		svc := &stubProductService{
			createFn: func(_ context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
				gotReq = req
				return &entity.Product{Name: req.Name}, nil
			},
		}
		r := productRouter(svc)

		body := `{"name":"TV","district":"Dhaka","categoryId":"5","userEmail":"a@x.com","price":120}`
		req := httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "TV", gotReq.Name)
		require.Equal(t, "a@x.com", gotReq.UserEmail)
	})
}

func TestToggleSoldStatusHandler(t *testing.T) {
	t.Run("toggle of a missing product is 404", func(t *testing.T) {
		svc := &stubProductService{
			toggleFn: func(_ context.Context, id string) error {
				return fmt.Errorf("product %s: %w", id, usecase.ErrNotFound)
			},
		}
		r := productRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/products/status/64f000000000000000000000", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
