package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

// ShippingFee is the flat surcharge added to every order.
var ShippingFee = decimal.RequireFromString("5.00")

type OrderService interface {
	PlaceOrder(ctx context.Context, userID int64, req *models.PlaceOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context, userID int64) ([]models.Order, error)
	ListOrderItems(ctx context.Context, userID, orderID int64) ([]models.OrderItem, error)
}

type orderService struct {
	repo   repository.OrderRepository
	tx     repository.TxRunner
	policy *bluemonday.Policy
}

func NewOrderService(repo repository.OrderRepository, tx repository.TxRunner) OrderService {
	return &orderService{repo: repo, tx: tx, policy: bluemonday.StrictPolicy()}
}

// PlaceOrder re-prices every line from the catalog, stores the order with its
// items and empties the caller's cart in one transaction.
func (s *orderService) PlaceOrder(ctx context.Context, userID int64, req *models.PlaceOrderRequest) (*models.Order, error) {

	logger := middleware.LoggerFromContext(ctx)

	if len(req.Cart) == 0 {
		return nil, appErrors.ValidationError("Valid cart items required")
	}

	for _, line := range req.Cart {
		if line.ProductID <= 0 || line.Quantity < 1 {
			return nil, appErrors.ValidationError("Invalid cart item data")
		}
	}

	order := &models.Order{
		UserID:   userID,
		Shipping: s.sanitizeShipping(req.Shipping),
		Snapshot: make([]models.OrderSnapshotItem, 0, len(req.Cart)),
		Items:    make([]models.OrderItem, 0, len(req.Cart)),
	}

	err := s.tx.WithinTx(ctx, func(store *repository.Store) error {

		// serializes concurrent checkouts against the same cart
		if err := store.Cart.LockCart(ctx, userID); err != nil {
			return err
		}

		subtotal := decimal.Zero

		for _, line := range req.Cart {
			product, err := store.Products.GetProductForOrder(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return appErrors.NotFoundError(fmt.Sprintf("Product ID %d not found", line.ProductID)).WithError(err)
				}
				return err
			}

			subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))

			order.Snapshot = append(order.Snapshot, models.OrderSnapshotItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Variant:   utils.NormalizeVariant(line.Variant),
				Price:     product.Price,
				Name:      product.Name,
				ImageURL:  product.ImageURL,
			})
		}

		order.Total = models.NewMoney(subtotal.Add(ShippingFee))

		if err := store.Orders.CreateOrder(ctx, order); err != nil {
			return err
		}

		for _, line := range order.Snapshot {
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
				Name:      line.Name,
				ImageURL:  line.ImageURL,
			}

			if err := store.Orders.CreateOrderItem(ctx, &item); err != nil {
				return err
			}

			order.Items = append(order.Items, item)
		}

		if _, err := store.Cart.ClearCart(ctx, userID); err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return nil, wrapErr(err, appErrors.DatabaseError("Database error"))
	}

	attrs := []any{
		slog.Int64("order_id", order.ID),
		slog.String("total", order.Total.StringFixed(2)),
		slog.Int("lines", len(order.Items)),
	}
	if req.Payment != nil {
		attrs = append(attrs, slog.String("payment_method", req.Payment.Method), slog.String("account_last4", req.Payment.Last4()))
	}
	logger.Info("Order placed", attrs...)

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {

	var orders []models.Order

	err := s.tx.WithinTx(ctx, func(store *repository.Store) error {

		var err error
		orders, err = store.Orders.ListOrdersByUser(ctx, userID)
		if err != nil {
			return err
		}

		for i := range orders {
			items, err := store.Orders.ListOrderItems(ctx, orders[i].ID)
			if err != nil {
				return err
			}
			orders[i].Items = items
		}

		return nil
	})

	if err != nil {
		return nil, wrapErr(err, appErrors.DatabaseError("Database error"))
	}

	return orders, nil
}

func (s *orderService) ListOrderItems(ctx context.Context, userID, orderID int64) ([]models.OrderItem, error) {

	items, err := s.repo.ListOrderItemsForUser(ctx, orderID, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	if len(items) == 0 {
		return nil, appErrors.NotFoundError("No items found for this order")
	}

	return items, nil
}

func (s *orderService) sanitizeShipping(in models.ShippingInfo) *models.ShippingInfo {
	return &models.ShippingInfo{
		FullName: s.policy.Sanitize(in.FullName),
		Address:  s.policy.Sanitize(in.Address),
		City:     s.policy.Sanitize(in.City),
		Phone:    s.policy.Sanitize(in.Phone),
	}
}
