package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "name", "price", "image_url", "description", "category_id", "category_name"}

func TestProductRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	t.Run("ListProducts", func(t *testing.T) {
		t.Run("Success - joins category name", func(t *testing.T) {
			// Arrange
			rows := sqlmock.NewRows(productCols).
				AddRow(1, "Gold Ring", "25.00", "/img/ring.jpg", "18k", 2, "Rings").
				AddRow(2, "Silver Chain", "10.50", nil, nil, nil, nil)

			mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN categories c ON p.category_id = c.id`) + `\s+ORDER BY p.id`).
				WillReturnRows(rows)

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.NoError(t, err)
			require.Len(t, products, 2)
			assert.Equal(t, "Gold Ring", products[0].Name)
			assert.True(t, products[0].Price.Equal(decimal.RequireFromString("25")))
			require.NotNil(t, products[0].CategoryName)
			assert.Equal(t, "Rings", *products[0].CategoryName)
			assert.Nil(t, products[1].ImageURL)
			assert.Nil(t, products[1].CategoryID)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Success - empty catalog returns empty slice", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(`FROM products p`).WillReturnRows(sqlmock.NewRows(productCols))

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.NoError(t, err)
			assert.NotNil(t, products)
			assert.Empty(t, products)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Error", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(`FROM products p`).WillReturnError(errors.New("connection reset"))

			// Act
			products, err := repo.ListProducts(ctx)

			// Assert
			require.Error(t, err)
			assert.Nil(t, products)
			assert.Contains(t, err.Error(), "connection reset")
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetProductByID", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.id = $1`)).
				WithArgs(int64(3)).
				WillReturnRows(sqlmock.NewRows(productCols).AddRow(3, "Pearl Earrings", "25.00", "/img/pearl.jpg", "Freshwater", 1, "Earrings"))

			// Act
			product, err := repo.GetProductByID(ctx, 3)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, int64(3), product.ID)
			assert.Equal(t, "Pearl Earrings", product.Name)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Not Found", func(t *testing.T) {
			// Arrange
			mock.ExpectQuery(regexp.QuoteMeta(`WHERE p.id = $1`)).
				WithArgs(int64(99)).
				WillReturnRows(sqlmock.NewRows(productCols))

			// Act
			product, err := repo.GetProductByID(ctx, 99)

			// Assert
			assert.Nil(t, product)
			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ProductExists", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`)).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		// Act
		exists, err := repo.ProductExists(ctx, 5)

		// Assert
		require.NoError(t, err)
		assert.False(t, exists)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetProductForOrder", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, price, image_url FROM products WHERE id = $1 FOR SHARE`)).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price", "image_url"}).AddRow(5, "Bangle", "10.00", nil))

		// Act
		product, err := repo.GetProductForOrder(ctx, 5)

		// Assert
		require.NoError(t, err)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(10)))
		assert.Nil(t, product.ImageURL)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCategoryRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewCategoryRepo(db)
	ctx := t.Context()

	t.Run("ListCategories", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM categories ORDER BY id`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Rings").AddRow(2, "Necklaces"))

		// Act
		categories, err := repo.ListCategories(ctx)

		// Assert
		require.NoError(t, err)
		require.Len(t, categories, 2)
		assert.Equal(t, "Necklaces", categories[1].Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetCategoryByID - Not Found", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM categories WHERE id = $1`)).
			WithArgs(int64(8)).
			WillReturnError(sql.ErrNoRows)

		// Act
		category, err := repo.GetCategoryByID(ctx, 8)

		// Assert
		assert.Nil(t, category)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
