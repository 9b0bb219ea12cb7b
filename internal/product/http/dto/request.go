// Package dto provides data transfer objects for the product HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/store/internal/product/domain"
	customValidation "github.com/allisson/store/internal/validation"
)

// ProductRequest is the body of product create and update requests.
// The owner is never taken from the body; it is the authenticated caller.
type ProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	CoverImage  string  `json:"cover_image"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
}

// Validate checks the request fields.
func (r *ProductRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Price, validation.Min(0.0)),
		validation.Field(&r.Quantity, validation.Min(int64(0))),
	)
}

// ToInput maps the request to the domain input.
func (r *ProductRequest) ToInput() domain.ProductInput {
	return domain.ProductInput{
		Title:       r.Title,
		Description: r.Description,
		CoverImage:  r.CoverImage,
		Price:       r.Price,
		Quantity:    r.Quantity,
	}
}
