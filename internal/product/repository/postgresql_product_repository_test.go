package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/store/internal/product/domain"
)

var productColumns = []string{
	"id", "title", "description", "cover_image", "price", "quantity", "owner_username", "created_at", "updated_at",
}

func newTestProduct() *domain.Product {
	return &domain.Product{
		ID:          uuid.Must(uuid.NewV7()),
		Title:       "Dune",
		Description: "Desert planet",
		CoverImage:  "dune.png",
		Price:       9.99,
		Quantity:    3,
		Owner:       "alice",
	}
}

func TestPostgreSQLProductRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLProductRepository(db)
	product := newTestProduct()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(sqlmock.AnyArg(), "Dune", "Desert planet", "dune.png", 9.99, int64(3), "alice").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err = repo.Create(context.Background(), product)
	require.NoError(t, err)
	assert.True(t, now.Equal(product.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLProductRepository_Get(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		expected := newTestProduct()
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1$").
			WillReturnRows(sqlmock.NewRows(productColumns).AddRow(
				expected.ID.String(), "Dune", "Desert planet", "dune.png", 9.99, int64(3), "alice", now, now,
			))

		product, err := repo.Get(context.Background(), expected.ID)
		require.NoError(t, err)
		assert.Equal(t, expected.ID, product.ID)
		assert.Equal(t, "alice", product.OwnerUsername())
		assert.Equal(t, int64(3), product.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		mock.ExpectQuery("SELECT (.+) FROM products").WillReturnRows(sqlmock.NewRows(productColumns))

		product, err := repo.Get(context.Background(), uuid.Must(uuid.NewV7()))
		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestPostgreSQLProductRepository_GetForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := NewPostgreSQLProductRepository(db)
	expected := newTestProduct()
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1 FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(productColumns).AddRow(
			expected.ID.String(), "Dune", "", "", 1.0, int64(1), "alice", now, now,
		))

	product, err := repo.GetForUpdate(context.Background(), expected.ID)
	require.NoError(t, err)
	assert.Equal(t, expected.ID, product.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLProductRepository_List(t *testing.T) {
	t.Run("Success_WithTitleFilter", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		now := time.Now().UTC()
		id1 := uuid.Must(uuid.NewV7())
		id2 := uuid.Must(uuid.NewV7())

		mock.ExpectQuery("SELECT (.+) FROM products WHERE (.+) ORDER BY created_at, id LIMIT").
			WithArgs("Dun", 10, 0).
			WillReturnRows(sqlmock.NewRows(productColumns).
				AddRow(id1.String(), "Dune", "", "", 9.99, int64(3), "alice", now, now).
				AddRow(id2.String(), "Dune Messiah", "", "", 7.5, int64(1), "bob", now, now),
			)

		products, err := repo.List(context.Background(), "Dun", 0, 10)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, id1, products[0].ID)
		assert.Equal(t, "bob", products[1].Owner)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success_Empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		mock.ExpectQuery("SELECT (.+) FROM products").
			WithArgs("", 50, 0).
			WillReturnRows(sqlmock.NewRows(productColumns))

		products, err := repo.List(context.Background(), "", 0, 50)
		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})

	t.Run("Error_Query", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		mock.ExpectQuery("SELECT (.+) FROM products").WillReturnError(errors.New("connection reset"))

		products, err := repo.List(context.Background(), "", 0, 50)
		assert.Nil(t, products)
		assert.Error(t, err)
	})
}

func TestPostgreSQLProductRepository_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		product := newTestProduct()
		now := time.Now().UTC()

		mock.ExpectQuery("UPDATE products SET (.+) WHERE id = \\$6 RETURNING updated_at").
			WithArgs("Dune", "Desert planet", "dune.png", 9.99, int64(3), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

		err = repo.Update(context.Background(), product)
		require.NoError(t, err)
		assert.True(t, now.Equal(product.UpdatedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		mock.ExpectQuery("UPDATE products").WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		err = repo.Update(context.Background(), newTestProduct())
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestPostgreSQLProductRepository_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		mock.ExpectExec("DELETE FROM products WHERE id = \\$1").WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Delete(context.Background(), uuid.Must(uuid.NewV7()))
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewPostgreSQLProductRepository(db)
		mock.ExpectExec("DELETE FROM products").WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.Delete(context.Background(), uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
