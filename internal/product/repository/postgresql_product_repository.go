// Package repository provides data persistence implementations for store products.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/store/internal/database"
	apperrors "github.com/allisson/store/internal/errors"
	"github.com/allisson/store/internal/product/domain"
)

const postgreSQLProductColumns = `id, title, description, cover_image, price, quantity, owner_username, created_at, updated_at`

// PostgreSQLProductRepository handles product persistence for PostgreSQL.
type PostgreSQLProductRepository struct {
	db *sql.DB
}

// NewPostgreSQLProductRepository creates a new PostgreSQLProductRepository.
func NewPostgreSQLProductRepository(db *sql.DB) *PostgreSQLProductRepository {
	return &PostgreSQLProductRepository{db: db}
}

// Create inserts a new product and fills CreatedAt and UpdatedAt from the database.
func (r *PostgreSQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, title, description, cover_image, price, quantity, owner_username, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err := querier.QueryRowContext(
		ctx,
		query,
		product.ID,
		product.Title,
		product.Description,
		product.CoverImage,
		product.Price,
		product.Quantity,
		product.Owner,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}
	return nil
}

// Get retrieves a product by id.
func (r *PostgreSQLProductRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + postgreSQLProductColumns + ` FROM products WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// GetForUpdate retrieves a product by id and locks its row until the surrounding transaction ends.
func (r *PostgreSQLProductRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + postgreSQLProductColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *PostgreSQLProductRepository) getOne(
	ctx context.Context,
	query string,
	id uuid.UUID,
) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	var product domain.Product
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Title,
		&product.Description,
		&product.CoverImage,
		&product.Price,
		&product.Quantity,
		&product.Owner,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product")
	}
	return &product, nil
}

// List returns products ordered by creation. A non-empty title keeps only titles containing it.
func (r *PostgreSQLProductRepository) List(
	ctx context.Context,
	title string,
	offset, limit int,
) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + postgreSQLProductColumns + ` FROM products
			  WHERE ($1 = '' OR strpos(title, $1) > 0)
			  ORDER BY created_at, id
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, title, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer func() { _ = rows.Close() }()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Title,
			&product.Description,
			&product.CoverImage,
			&product.Price,
			&product.Quantity,
			&product.Owner,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}
	return products, nil
}

// Update writes the mutable fields of a product. The owner column is never updated.
func (r *PostgreSQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products
			  SET title = $1, description = $2, cover_image = $3, price = $4, quantity = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`

	err := querier.QueryRowContext(
		ctx,
		query,
		product.Title,
		product.Description,
		product.CoverImage,
		product.Price,
		product.Quantity,
		product.ID,
	).Scan(&product.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		return apperrors.Wrap(err, "failed to update product")
	}
	return nil
}

// Delete removes a product by id.
func (r *PostgreSQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}
	return checkRowsAffected(result)
}

// checkRowsAffected maps a zero-row write to ErrProductNotFound.
func checkRowsAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
