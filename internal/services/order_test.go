package service_test

import (
	"database/sql"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/jewelry-storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lockCartQuery     = `SELECT id FROM cart WHERE user_id = $1 FOR UPDATE`
	orderProductQuery = `SELECT id, name, price, image_url FROM products WHERE id = $1 FOR SHARE`
	insertOrderQuery  = `INSERT INTO orders (user_id, total, shipping, items)`
	insertItemQuery   = `INSERT INTO order_items (order_id, product_id, quantity, price)`
	clearCartQuery    = `DELETE FROM cart WHERE user_id = $1`
)

var orderProductCols = []string{"id", "name", "price", "image_url"}

func newOrderService(t *testing.T) (service.OrderService, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return service.NewOrderService(repository.NewOrderRepo(db), repository.NewTxRunner(db)), mock
}

func TestPlaceOrder(t *testing.T) {
	req := &models.PlaceOrderRequest{
		Cart: []models.OrderLine{
			{ProductID: 3, Quantity: 2},
			{ProductID: 5, Quantity: 1, Variant: strPtr("silver")},
		},
		Shipping: models.ShippingInfo{FullName: "<b>Ada</b> Lovelace", Address: "1 Main St", City: "Paris", Phone: "555-0100"},
		Payment:  &models.PaymentInfo{Method: "card", CardNumber: "4242424242424242"},
	}

	t.Run("Success - Totals from catalog prices plus shipping", func(t *testing.T) {
		// Arrange
		svc, mock := newOrderService(t)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockCartQuery)).WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectQuery(regexp.QuoteMeta(orderProductQuery)).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(orderProductCols).AddRow(3, "Gold Ring", "25.00", "/img/ring.jpg"))
		mock.ExpectQuery(regexp.QuoteMeta(orderProductQuery)).WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(orderProductCols).AddRow(5, "Silver Chain", "10.00", nil))
		mock.ExpectQuery(regexp.QuoteMeta(insertOrderQuery)).
			WithArgs(int64(1), decimalEq("65.00"), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(41, now))
		mock.ExpectQuery(regexp.QuoteMeta(insertItemQuery)).
			WithArgs(int64(41), int64(3), 2, decimalEq("25.00")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
		mock.ExpectQuery(regexp.QuoteMeta(insertItemQuery)).
			WithArgs(int64(41), int64(5), 1, decimalEq("10.00")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))
		mock.ExpectExec(regexp.QuoteMeta(clearCartQuery)).WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		// Act
		order, err := svc.PlaceOrder(testContext(t), 1, req)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(41), order.ID)
		assert.Equal(t, "65.00", order.Total.StringFixed(2))
		require.Len(t, order.Items, 2)
		assert.Equal(t, int64(100), order.Items[0].ID)
		assert.Equal(t, "silver", *order.Snapshot[1].Variant)
		assert.Equal(t, "Ada Lovelace", order.Shipping.FullName)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Missing product rolls back", func(t *testing.T) {
		// Arrange
		svc, mock := newOrderService(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockCartQuery)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectQuery(regexp.QuoteMeta(orderProductQuery)).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(orderProductCols).AddRow(3, "Gold Ring", "25.00", nil))
		mock.ExpectQuery(regexp.QuoteMeta(orderProductQuery)).WithArgs(int64(5)).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		// Act
		order, err := svc.PlaceOrder(testContext(t), 1, req)

		// Assert
		assert.Nil(t, order)
		requireAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound, "Product ID 5 not found")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Item insert error rolls back", func(t *testing.T) {
		// Arrange
		svc, mock := newOrderService(t)
		dbErr := errors.New("foreign key violation")

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(lockCartQuery)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(regexp.QuoteMeta(orderProductQuery)).
			WillReturnRows(sqlmock.NewRows(orderProductCols).AddRow(3, "Gold Ring", "25.00", nil))
		mock.ExpectQuery(regexp.QuoteMeta(insertOrderQuery)).
			WithArgs(int64(1), decimalEq("30.00"), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, time.Now()))
		mock.ExpectQuery(regexp.QuoteMeta(insertItemQuery)).WillReturnError(dbErr)
		mock.ExpectRollback()

		// Act
		_, err := svc.PlaceOrder(testContext(t), 1, &models.PlaceOrderRequest{
			Cart: []models.OrderLine{{ProductID: 3, Quantity: 1}},
		})

		// Assert
		requireAppError(t, err, appErrors.ErrCodeDatabaseError, http.StatusInternalServerError, "Database error")
		assert.ErrorIs(t, err, dbErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Invalid cart", func(t *testing.T) {
		// Arrange
		svc, mock := newOrderService(t)

		// Act
		_, errEmpty := svc.PlaceOrder(testContext(t), 1, &models.PlaceOrderRequest{})
		_, errLine := svc.PlaceOrder(testContext(t), 1, &models.PlaceOrderRequest{
			Cart: []models.OrderLine{{ProductID: 3, Quantity: 0}},
		})

		// Assert
		requireAppError(t, errEmpty, appErrors.ErrCodeValidation, http.StatusBadRequest, "Valid cart items required")
		requireAppError(t, errLine, appErrors.ErrCodeValidation, http.StatusBadRequest, "Invalid cart item data")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListOrders(t *testing.T) {
	itemCols := []string{"id", "order_id", "product_id", "quantity", "price", "name", "image_url"}

	t.Run("Success - Orders with nested items", func(t *testing.T) {
		// Arrange
		svc, mock := newOrderService(t)
		now := time.Now()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(`FROM orders`)).WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total", "created_at", "shipping", "items"}).
				AddRow(42, 1, "30.00", now, []byte(`{"fullName":"Ada"}`), []byte(`[]`)).
				AddRow(41, 1, "65.00", now.Add(-time.Hour), nil, nil))
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE oi.order_id = $1 ORDER BY oi.id`)).WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(itemCols).AddRow(102, 42, 3, 1, "25.00", "Gold Ring", nil))
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE oi.order_id = $1 ORDER BY oi.id`)).WithArgs(int64(41)).
			WillReturnRows(sqlmock.NewRows(itemCols).
				AddRow(100, 41, 3, 2, "25.00", "Gold Ring", nil).
				AddRow(101, 41, 5, 1, "10.00", "Silver Chain", nil))
		mock.ExpectCommit()

		// Act
		orders, err := svc.ListOrders(testContext(t), 1)

		// Assert
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, int64(42), orders[0].ID)
		assert.Equal(t, "Ada", orders[0].Shipping.FullName)
		assert.Len(t, orders[0].Items, 1)
		assert.Len(t, orders[1].Items, 2)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No orders", func(t *testing.T) {
		// Arrange
		svc, mock := newOrderService(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`FROM orders`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "total", "created_at", "shipping", "items"}))
		mock.ExpectCommit()

		// Act
		orders, err := svc.ListOrders(testContext(t), 1)

		// Assert
		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.NotNil(t, orders)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Order items - Not owned", func(t *testing.T) {
		// Arrange
		svc, mock := newOrderService(t)

		mock.ExpectQuery(regexp.QuoteMeta(`AND EXISTS (SELECT 1 FROM orders o`)).WithArgs(int64(41), int64(2)).
			WillReturnRows(sqlmock.NewRows(itemCols))

		// Act
		items, err := svc.ListOrderItems(testContext(t), 2, 41)

		// Assert
		assert.Nil(t, items)
		requireAppError(t, err, appErrors.ErrCodeNotFound, http.StatusNotFound, "No items found for this order")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
