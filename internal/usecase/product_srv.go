package usecase

import (
	"context"
	"fmt"
	"time"

	"remarket/internal/data/entity"
	"remarket/internal/data/repository"
	"remarket/internal/dto/request"
	"remarket/internal/dto/response"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error)
	ListProducts(ctx context.Context, params *request.ProductListParams) (*response.ProductListResponse, error)
	GetProduct(ctx context.Context, id string) (*response.ProductDetailResponse, error)
	ToggleSoldStatus(ctx context.Context, id string) error
}

type productService struct {
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	log         *zap.Logger
}

func NewProductService(productRepo repository.ProductRepository, userRepo repository.UserRepository, log *zap.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		userRepo:    userRepo,
		log:         log.With(zap.String("service", "product")),
	}
}

// CreateProduct inserts a new unsold product. The creation timestamp is
// stamped by the server, never taken from the request.
func (ps *productService) CreateProduct(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	product := &entity.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Condition:   req.Condition,
		Image:       req.Image,
		District:    req.District,
		CategoryID:  req.CategoryID,
		UserEmail:   req.UserEmail,
		IsSold:      false,
		PostedTime:  time.Now().UTC(),
	}

	if err := ps.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	ps.log.Info("Product created",
		zap.String("product_id", product.ID.Hex()),
		zap.String("name", product.Name),
		zap.String("user_email", product.UserEmail),
	)

	return product, nil
}

func (ps *productService) ListProducts(ctx context.Context, params *request.ProductListParams) (*response.ProductListResponse, error) {
	listing := repository.ProductListing{
		District:   params.District,
		CategoryID: params.CategoryID,
		Search:     params.Search,
		UserEmail:  params.Email,
		Page:       params.Page,
		Size:       params.Size,
	}

	products, err := ps.productRepo.List(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	count, err := ps.productRepo.Count(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	return &response.ProductListResponse{
		Count:    count,
		Products: products,
	}, nil
}

// GetProduct fetches one product and attaches its seller's public
// fields. A missing seller yields a null sellerInfo, not an error.
func (ps *productService) GetProduct(ctx context.Context, id string) (*response.ProductDetailResponse, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product id %q: %w", id, ErrInvalidArgument)
	}

	product, err := ps.productRepo.FindByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	detail := &response.ProductDetailResponse{Product: *product}

	seller, err := ps.userRepo.FindByEmail(ctx, product.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("get product seller: %w", err)
	}
	if seller != nil {
		detail.SellerInfo = &entity.UserInfo{
			ID:     seller.ID,
			Name:   seller.Name,
			Email:  seller.Email,
			Mobile: seller.Mobile,
			Status: seller.Status,
		}
	}

	return detail, nil
}

func (ps *productService) ToggleSoldStatus(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("product id %q: %w", id, ErrInvalidArgument)
	}

	found, err := ps.productRepo.ToggleSold(ctx, oid)
	if err != nil {
		return fmt.Errorf("toggle sold status: %w", err)
	}
	if !found {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	ps.log.Info("Product sold status toggled", zap.String("product_id", id))

	return nil
}
