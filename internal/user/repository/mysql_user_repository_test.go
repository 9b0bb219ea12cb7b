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

	"github.com/allisson/store/internal/user/domain"
)

func TestMySQLUserRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewMySQLUserRepository(db)
		user := &domain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Username:  "alice",
			Pseudonym: "Alice",
			Password:  "$argon2id$hash",
		}
		idBytes, err := user.ID.MarshalBinary()
		require.NoError(t, err)

		mock.ExpectExec("INSERT INTO users").
			WithArgs(idBytes, "alice", "Alice", "$argon2id$hash", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Create(context.Background(), user)
		require.NoError(t, err)
		assert.False(t, user.CreatedAt.IsZero())
		assert.True(t, user.CreatedAt.Equal(user.UpdatedAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateEntry", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewMySQLUserRepository(db)
		mock.ExpectExec("INSERT INTO users").
			WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice' for key 'users.username'"))

		err = repo.Create(context.Background(), &domain.User{ID: uuid.Must(uuid.NewV7()), Username: "alice"})
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestMySQLUserRepository_GetByUsername(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewMySQLUserRepository(db)
		id := uuid.Must(uuid.NewV7())
		idBytes, err := id.MarshalBinary()
		require.NoError(t, err)
		now := time.Now().UTC()

		mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ?").
			WithArgs("alice").
			WillReturnRows(
				sqlmock.NewRows([]string{"id", "username", "pseudonym", "password", "created_at", "updated_at"}).
					AddRow(idBytes, "alice", "Alice", "$argon2id$hash", now, now),
			)

		user, err := repo.GetByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "Alice", user.Pseudonym)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewMySQLUserRepository(db)
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.GetByUsername(context.Background(), "nobody")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Error_InvalidUUIDBytes", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		repo := NewMySQLUserRepository(db)
		now := time.Now().UTC()
		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnRows(
				sqlmock.NewRows([]string{"id", "username", "pseudonym", "password", "created_at", "updated_at"}).
					AddRow([]byte{0x01, 0x02}, "alice", "Alice", "hash", now, now),
			)

		user, err := repo.GetByUsername(context.Background(), "alice")
		assert.Nil(t, user)
		assert.Error(t, err)
	})
}
