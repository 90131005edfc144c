package response

import (
	"remarket/internal/data/entity"
)

// ProductListResponse pairs the ordered page of enriched products with
// the total match count computed independently of the page window.
type ProductListResponse struct {
	Count    int64                       `json:"count"`
	Products []*entity.ProductWithSeller `json:"products"`
}

// ProductDetailResponse is a single product with its seller attached.
// SellerInfo is null when the referenced user no longer exists.
type ProductDetailResponse struct {
	entity.Product
	SellerInfo *entity.UserInfo `json:"sellerInfo"`
}
