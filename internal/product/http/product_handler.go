// Package http provides HTTP handlers for the store product catalogue.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/store/internal/auth/domain"
	authHTTP "github.com/allisson/store/internal/auth/http"
	"github.com/allisson/store/internal/httputil"
	"github.com/allisson/store/internal/product/http/dto"
	productUseCase "github.com/allisson/store/internal/product/usecase"
	customValidation "github.com/allisson/store/internal/validation"
)

// RemoveForbiddenMessage is returned when a caller deletes a product they do not own.
const RemoveForbiddenMessage = "You are not allowed to remove this product"

// ProductHandler handles HTTP requests for the product catalogue.
type ProductHandler struct {
	productUseCase productUseCase.UseCase
	logger         *slog.Logger
}

// NewProductHandler creates a new product handler with required dependencies.
func NewProductHandler(productUseCase productUseCase.UseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		logger:         logger,
	}
}

// ListHandler lists products, optionally filtered by a title substring.
// GET /store?title=Dune&offset=0&limit=50 - Public.
func (h *ProductHandler) ListHandler(c *gin.Context) {
	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	products, err := h.productUseCase.List(c.Request.Context(), c.Query("title"), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductsToListResponse(products))
}

// GetHandler returns a single product.
// GET /store/:id - Public.
func (h *ProductHandler) GetHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	product, err := h.productUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// CreateHandler publishes a product owned by the caller.
// POST /store - Requires authentication.
// Returns 201 Created.
func (h *ProductHandler) CreateHandler(c *gin.Context) {
	var req dto.ProductRequest
	if !h.bindProductRequest(c, &req) {
		return
	}

	identity := authHTTP.IdentityFrom(c.Request.Context())
	product, err := h.productUseCase.Create(c.Request.Context(), identity, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapProductToResponse(product))
}

// UpdateHandler replaces the mutable fields of a product.
// PUT /store/:id - Requires authentication.
func (h *ProductHandler) UpdateHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if !h.bindProductRequest(c, &req) {
		return
	}

	identity := authHTTP.IdentityFrom(c.Request.Context())
	product, err := h.productUseCase.Update(c.Request.Context(), identity, id, req.ToInput())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapProductToResponse(product))
}

// DeleteHandler removes a product owned by the caller.
// DELETE /store/:id - Requires authentication and ownership.
// Returns 204 No Content, 403 Forbidden when the caller is not the owner.
func (h *ProductHandler) DeleteHandler(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	identity := authHTTP.IdentityFrom(c.Request.Context())
	if err := h.productUseCase.Delete(c.Request.Context(), identity, id); err != nil {
		if authDomain.IsForbidden(err) {
			h.logger.Info("product removal denied",
				slog.String("product_id", id.String()),
				slog.String("username", identity.Username()),
			)
			c.JSON(http.StatusForbidden, httputil.ErrorResponse{
				Error: RemoveForbiddenMessage,
				Code:  "forbidden",
			})
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Data(http.StatusNoContent, "application/json", nil)
}

func (h *ProductHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, fmt.Errorf("invalid product id format: must be a valid UUID"), h.logger)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProductHandler) bindProductRequest(c *gin.Context, req *dto.ProductRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return false
	}
	return true
}
