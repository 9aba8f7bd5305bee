package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type CartService interface {
	ListCart(ctx context.Context, userID int64) ([]models.CartItem, error)
	AddToCart(ctx context.Context, userID, productID int64, quantity int, variant *string) error
	// UpdateCart sets the quantity of one (product, variant) line; zero removes the line.
	UpdateCart(ctx context.Context, userID, productID int64, quantity int, variant *string) error
	RemoveFromCart(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) error
}

type cartService struct {
	repo repository.CartRepository
	tx   repository.TxRunner
}

func NewCartService(repo repository.CartRepository, tx repository.TxRunner) CartService {
	return &cartService{repo: repo, tx: tx}
}

func (s *cartService) ListCart(ctx context.Context, userID int64) ([]models.CartItem, error) {

	items, err := s.repo.ListCart(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	return items, nil
}

func (s *cartService) AddToCart(ctx context.Context, userID, productID int64, quantity int, variant *string) error {

	if productID <= 0 || quantity < 1 {
		return appErrors.ValidationError("Product ID and valid quantity are required")
	}

	variant = utils.NormalizeVariant(variant)

	err := s.tx.WithinTx(ctx, func(store *repository.Store) error {

		exists, err := store.Products.ProductExists(ctx, productID)
		if err != nil {
			return err
		}
		if !exists {
			return appErrors.NotFoundError("Product not found")
		}

		total, err := store.Cart.UpsertItem(ctx, userID, productID, quantity, variant)
		if err != nil {
			return err
		}

		middleware.LoggerFromContext(ctx).Info("Cart line saved",
			slog.Int64("product_id", productID),
			slog.Int("added", quantity),
			slog.Int("quantity", total),
		)

		return nil
	})

	if err != nil {
		return wrapErr(err, appErrors.DatabaseError("Database error"))
	}

	return nil
}

func (s *cartService) UpdateCart(ctx context.Context, userID, productID int64, quantity int, variant *string) error {

	if quantity < 0 {
		return appErrors.ValidationError("Valid quantity is required")
	}

	variant = utils.NormalizeVariant(variant)

	var err error
	if quantity == 0 {
		err = s.repo.DeleteLine(ctx, userID, productID, variant)
	} else {
		err = s.repo.UpdateQuantity(ctx, userID, productID, variant, quantity)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found in cart").WithError(err)
		}
		return appErrors.DatabaseError("Database error").WithError(err)
	}

	return nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID int64) error {

	if err := s.repo.RemoveProduct(ctx, userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found in cart").WithError(err)
		}
		return appErrors.DatabaseError("Database error").WithError(err)
	}

	return nil
}

func (s *cartService) ClearCart(ctx context.Context, userID int64) error {

	removed, err := s.repo.ClearCart(ctx, userID)
	if err != nil {
		return appErrors.DatabaseError("Database error").WithError(err)
	}

	middleware.LoggerFromContext(ctx).Debug("Cart cleared", slog.Int64("removed", removed))

	return nil
}
