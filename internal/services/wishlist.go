package service

import (
	"context"
	"database/sql"
	"errors"

	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
)

type WishlistService interface {
	ListWishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error)
	AddToWishlist(ctx context.Context, userID, productID int64) error
	RemoveFromWishlist(ctx context.Context, userID, productID int64) error
}

type wishlistService struct {
	repo repository.WishlistRepository
	tx   repository.TxRunner
}

func NewWishlistService(repo repository.WishlistRepository, tx repository.TxRunner) WishlistService {
	return &wishlistService{repo: repo, tx: tx}
}

func (s *wishlistService) ListWishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error) {

	items, err := s.repo.ListWishlist(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	return items, nil
}

func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID int64) error {

	if productID <= 0 {
		return appErrors.ValidationError("Product ID is required")
	}

	err := s.tx.WithinTx(ctx, func(store *repository.Store) error {

		exists, err := store.Products.ProductExists(ctx, productID)
		if err != nil {
			return err
		}
		if !exists {
			return appErrors.NotFoundError("Product not found")
		}

		if _, err := store.Wishlist.AddItem(ctx, userID, productID); err != nil {
			if repository.IsUniqueViolation(err) {
				return appErrors.DuplicateEntryError("Product already in wishlist").WithError(err)
			}
			return err
		}

		return nil
	})

	if err != nil {
		return wrapErr(err, appErrors.DatabaseError("Database error"))
	}

	return nil
}

func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID int64) error {

	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Item not found in wishlist").WithError(err)
		}
		return appErrors.DatabaseError("Database error").WithError(err)
	}

	return nil
}
