package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/store/internal/database"
	apperrors "github.com/allisson/store/internal/errors"
	"github.com/allisson/store/internal/product/domain"
)

const mySQLProductColumns = `id, title, description, cover_image, price, quantity, owner_username, created_at, updated_at`

// MySQLProductRepository handles product persistence for MySQL.
type MySQLProductRepository struct {
	db *sql.DB
}

// NewMySQLProductRepository creates a new MySQLProductRepository.
func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

// Create inserts a new product.
func (r *MySQLProductRepository) Create(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO products (id, title, description, cover_image, price, quantity, owner_username, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	_, err = querier.ExecContext(
		ctx,
		query,
		uuidBytes,
		product.Title,
		product.Description,
		product.CoverImage,
		product.Price,
		product.Quantity,
		product.Owner,
		now,
		now,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create product")
	}

	product.CreatedAt = now
	product.UpdatedAt = now
	return nil
}

// Get retrieves a product by id.
func (r *MySQLProductRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + mySQLProductColumns + ` FROM products WHERE id = ?`
	return r.getOne(ctx, query, id)
}

// GetForUpdate retrieves a product by id and locks its row until the surrounding transaction ends.
func (r *MySQLProductRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT ` + mySQLProductColumns + ` FROM products WHERE id = ? FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *MySQLProductRepository) getOne(ctx context.Context, query string, id uuid.UUID) (*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	product, err := scanMySQLProduct(querier.QueryRowContext(ctx, query, uuidBytes))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get product")
	}
	return product, nil
}

// List returns products ordered by creation. A non-empty title keeps only titles containing it.
func (r *MySQLProductRepository) List(
	ctx context.Context,
	title string,
	offset, limit int,
) ([]*domain.Product, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mySQLProductColumns + ` FROM products
			  WHERE (? = '' OR LOCATE(?, title) > 0)
			  ORDER BY created_at, id
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, title, title, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list products")
	}
	defer func() { _ = rows.Close() }()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanMySQLProduct(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan product")
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate products")
	}
	return products, nil
}

// Update writes the mutable fields of a product. The owner column is never updated.
func (r *MySQLProductRepository) Update(ctx context.Context, product *domain.Product) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE products
			  SET title = ?, description = ?, cover_image = ?, price = ?, quantity = ?, updated_at = ?
			  WHERE id = ?`

	uuidBytes, err := product.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	result, err := querier.ExecContext(
		ctx,
		query,
		product.Title,
		product.Description,
		product.CoverImage,
		product.Price,
		product.Quantity,
		now,
		uuidBytes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update product")
	}
	if err := checkRowsAffected(result); err != nil {
		return err
	}

	product.UpdatedAt = now
	return nil
}

// Delete removes a product by id.
func (r *MySQLProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	uuidBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, uuidBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete product")
	}
	return checkRowsAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMySQLProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	var idBytes []byte

	if err := row.Scan(
		&idBytes,
		&product.Title,
		&product.Description,
		&product.CoverImage,
		&product.Price,
		&product.Quantity,
		&product.Owner,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}

	// Convert bytes back to UUID
	if err := product.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	return &product, nil
}
