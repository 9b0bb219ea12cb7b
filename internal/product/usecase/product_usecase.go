package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/store/internal/auth/domain"
	authUseCase "github.com/allisson/store/internal/auth/usecase"
	"github.com/allisson/store/internal/database"
	apperrors "github.com/allisson/store/internal/errors"
	"github.com/allisson/store/internal/product/domain"
	appValidation "github.com/allisson/store/internal/validation"
)

// productUseCase implements UseCase.
type productUseCase struct {
	txManager   database.TxManager
	productRepo ProductRepository
	authorizer  authUseCase.OwnershipAuthorizer
}

// NewProductUseCase creates a new product use case.
func NewProductUseCase(
	txManager database.TxManager,
	productRepo ProductRepository,
	authorizer authUseCase.OwnershipAuthorizer,
) UseCase {
	return &productUseCase{
		txManager:   txManager,
		productRepo: productRepo,
		authorizer:  authorizer,
	}
}

func validateProductInput(input domain.ProductInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Description, validation.Length(0, 4096)),
		validation.Field(&input.CoverImage, validation.Length(0, 2048)),
		validation.Field(&input.Price, validation.Min(0.0).Error("price must not be negative")),
		validation.Field(&input.Quantity, validation.Min(int64(0)).Error("quantity must not be negative")),
	)
	return appValidation.WrapValidationError(err)
}

// List returns a page of products, optionally filtered by title.
func (uc *productUseCase) List(ctx context.Context, title string, offset, limit int) ([]*domain.Product, error) {
	return uc.productRepo.List(ctx, strings.TrimSpace(title), offset, limit)
}

// Get returns a product by id.
func (uc *productUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return uc.productRepo.Get(ctx, id)
}

// Create stores a new product owned by the authenticated caller.
func (uc *productUseCase) Create(
	ctx context.Context,
	identity authDomain.Identity,
	input domain.ProductInput,
) (*domain.Product, error) {
	if !identity.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		CoverImage:  input.CoverImage,
		Price:       input.Price,
		Quantity:    input.Quantity,
		Owner:       identity.Username(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces the mutable fields of a product for an authenticated caller.
func (uc *productUseCase) Update(
	ctx context.Context,
	identity authDomain.Identity,
	id uuid.UUID,
	input domain.ProductInput,
) (*domain.Product, error) {
	if !identity.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *domain.Product
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := uc.productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		existing.Title = strings.TrimSpace(input.Title)
		existing.Description = input.Description
		existing.CoverImage = input.CoverImage
		existing.Price = input.Price
		existing.Quantity = input.Quantity

		if err := uc.productRepo.Update(ctx, existing); err != nil {
			return err
		}
		product = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// Delete removes a product after checking that the caller owns it.
func (uc *productUseCase) Delete(ctx context.Context, identity authDomain.Identity, id uuid.UUID) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		product, err := uc.productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := uc.authorizer.Authorize(identity, product); err != nil {
			return err
		}

		return uc.productRepo.Delete(ctx, id)
	})
}
