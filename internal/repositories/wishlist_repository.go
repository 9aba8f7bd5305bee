package repository

import (
	"context"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type WishlistRepository interface {
	ListWishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error)
	AddItem(ctx context.Context, userID, productID int64) (int64, error)
	RemoveItem(ctx context.Context, userID, productID int64) error
}

type wishlistRepository struct {
	DB DBTX
}

func NewWishlistRepo(db DBTX) WishlistRepository {
	return &wishlistRepository{DB: db}
}

func (r *wishlistRepository) ListWishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT w.id, w.user_id, w.product_id, p.name, p.price, p.image_url
		FROM wishlist w
		JOIN products p ON w.product_id = p.id
		WHERE w.user_id = $1
		ORDER BY w.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, logQueryError(ctx, query, err, userID)
	}
	defer rows.Close()

	items := []models.WishlistItem{}

	for rows.Next() {
		var item models.WishlistItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Name, &item.Price, &item.ImageURL); err != nil {
			return nil, logQueryError(ctx, query, err, userID)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, logQueryError(ctx, query, err, userID)
	}

	return items, nil
}

// AddItem fails with a unique violation when the pair is already present.
func (r *wishlistRepository) AddItem(ctx context.Context, userID, productID int64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO wishlist (user_id, product_id) VALUES ($1, $2) RETURNING id`

	var id int64

	if err := r.DB.QueryRowContext(dbCtx, query, userID, productID).Scan(&id); err != nil {
		return 0, logQueryError(ctx, query, err, userID, productID)
	}

	return id, nil
}

func (r *wishlistRepository) RemoveItem(ctx context.Context, userID, productID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, userID, productID)
	if err != nil {
		return logQueryError(ctx, query, err, userID, productID)
	}

	return checkAffected(result)
}
