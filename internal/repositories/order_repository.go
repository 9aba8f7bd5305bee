package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error)
	ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)
	// ListOrderItemsForUser returns nothing unless the order belongs to userID.
	ListOrderItemsForUser(ctx context.Context, orderID, userID int64) ([]models.OrderItem, error)
}

type orderRepository struct {
	DB DBTX
}

func NewOrderRepo(db DBTX) OrderRepository {
	return &orderRepository{DB: db}
}

func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	shippingJSON, err := json.Marshal(order.Shipping)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping info: %w", err)
	}

	snapshotJSON, err := json.Marshal(order.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal order snapshot: %w", err)
	}

	query := `
		INSERT INTO orders (user_id, total, shipping, items)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = r.DB.QueryRowContext(dbCtx, query, order.UserID, order.Total, shippingJSON, snapshotJSON).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return logQueryError(ctx, query, err, order.UserID, order.Total)
	}

	return nil
}

func (r *orderRepository) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.DB.QueryRowContext(dbCtx, query, item.OrderID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)
	if err != nil {
		return logQueryError(ctx, query, err, item.OrderID, item.ProductID, item.Quantity, item.Price)
	}

	return nil
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_id, total, created_at, shipping, items
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, logQueryError(ctx, query, err, userID)
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		var order models.Order
		var shippingJSON, snapshotJSON []byte

		if err := rows.Scan(&order.ID, &order.UserID, &order.Total, &order.CreatedAt, &shippingJSON, &snapshotJSON); err != nil {
			return nil, logQueryError(ctx, query, err, userID)
		}

		if len(shippingJSON) > 0 {
			if err := json.Unmarshal(shippingJSON, &order.Shipping); err != nil {
				return nil, fmt.Errorf("failed to unmarshal shipping for order %d: %w", order.ID, err)
			}
		}

		if len(snapshotJSON) > 0 {
			if err := json.Unmarshal(snapshotJSON, &order.Snapshot); err != nil {
				return nil, fmt.Errorf("failed to unmarshal snapshot for order %d: %w", order.ID, err)
			}
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, logQueryError(ctx, query, err, userID)
	}

	return orders, nil
}

const orderItemColumns = `
	SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, p.name, p.image_url
	FROM order_items oi
	JOIN products p ON oi.product_id = p.id
`

func (r *orderRepository) ListOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	query := orderItemColumns + `WHERE oi.order_id = $1 ORDER BY oi.id`

	return r.queryItems(ctx, query, orderID)
}

func (r *orderRepository) ListOrderItemsForUser(ctx context.Context, orderID, userID int64) ([]models.OrderItem, error) {
	query := orderItemColumns + `
		WHERE oi.order_id = $1
		AND EXISTS (SELECT 1 FROM orders o WHERE o.id = oi.order_id AND o.user_id = $2)
		ORDER BY oi.id`

	return r.queryItems(ctx, query, orderID, userID)
}

func (r *orderRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.OrderItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, logQueryError(ctx, query, err, args...)
	}
	defer rows.Close()

	items := []models.OrderItem{}

	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price, &item.Name, &item.ImageURL); err != nil {
			return nil, logQueryError(ctx, query, err, args...)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, logQueryError(ctx, query, err, args...)
	}

	return items, nil
}
