package repository_test

import (
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewWishlistRepo(db)
	ctx := t.Context()

	t.Run("ListWishlist", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(`FROM wishlist w`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "product_id", "name", "price", "image_url"}).
				AddRow(1, 2, 3, "Gold Ring", "25.00", nil))

		// Act
		items, err := repo.ListWishlist(ctx, 2)

		// Assert
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(3), items[0].ProductID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AddItem - duplicate pair", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wishlist (user_id, product_id) VALUES ($1, $2) RETURNING id`)).
			WithArgs(int64(2), int64(3)).
			WillReturnError(&pq.Error{Code: "23505"})

		// Act
		_, err := repo.AddItem(ctx, 2, 3)

		// Assert
		require.Error(t, err)
		assert.True(t, repository.IsUniqueViolation(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RemoveItem - missing", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(`DELETE FROM wishlist`).
			WithArgs(int64(2), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.RemoveItem(ctx, 2, 3)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
