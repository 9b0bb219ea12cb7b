package dto

import (
	"time"

	"github.com/allisson/store/internal/product/domain"
)

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverImage  string    `json:"cover_image"`
	Price       float64   `json:"price"`
	Quantity    int64     `json:"quantity"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListProductsResponse represents a page of products in API responses.
type ListProductsResponse struct {
	Data []ProductResponse `json:"data"`
}

// MapProductToResponse converts a domain product to an API response.
func MapProductToResponse(product *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID.String(),
		Title:       product.Title,
		Description: product.Description,
		CoverImage:  product.CoverImage,
		Price:       product.Price,
		Quantity:    product.Quantity,
		Owner:       product.Owner,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// MapProductsToListResponse converts a slice of domain products to a list response.
func MapProductsToListResponse(products []*domain.Product) ListProductsResponse {
	data := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		data = append(data, MapProductToResponse(product))
	}
	return ListProductsResponse{Data: data}
}
