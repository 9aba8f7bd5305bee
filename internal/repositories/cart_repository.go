package repository

import (
	"context"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type CartRepository interface {
	ListCart(ctx context.Context, userID int64) ([]models.CartItem, error)
	// UpsertItem inserts a new line or adds quantity to the line with the same
	// (user, product, variant), returning the resulting quantity.
	UpsertItem(ctx context.Context, userID, productID int64, quantity int, variant *string) (int, error)
	UpdateQuantity(ctx context.Context, userID, productID int64, variant *string, quantity int) error
	DeleteLine(ctx context.Context, userID, productID int64, variant *string) error
	RemoveProduct(ctx context.Context, userID, productID int64) error
	ClearCart(ctx context.Context, userID int64) (int64, error)
	// LockCart takes row locks on every line of the user's cart.
	LockCart(ctx context.Context, userID int64) error
}

type cartRepository struct {
	DB DBTX
}

func NewCartRepo(db DBTX) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) ListCart(ctx context.Context, userID int64) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.user_id, c.product_id, c.quantity, c.variant, p.name, p.price, p.image_url
		FROM cart c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.id
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, logQueryError(ctx, query, err, userID)
	}
	defer rows.Close()

	items := []models.CartItem{}

	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.Variant, &item.Name, &item.Price, &item.ImageURL); err != nil {
			return nil, logQueryError(ctx, query, err, userID)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, logQueryError(ctx, query, err, userID)
	}

	return items, nil
}

func (r *cartRepository) UpsertItem(ctx context.Context, userID, productID int64, quantity int, variant *string) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart (user_id, product_id, quantity, variant)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, product_id, (COALESCE(variant, '')))
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
		RETURNING quantity
	`

	var total int

	if err := r.DB.QueryRowContext(dbCtx, query, userID, productID, quantity, variant).Scan(&total); err != nil {
		return 0, logQueryError(ctx, query, err, userID, productID, quantity, variant)
	}

	return total, nil
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, productID int64, variant *string, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart SET quantity = $1
		WHERE user_id = $2 AND product_id = $3 AND variant IS NOT DISTINCT FROM $4
	`

	result, err := r.DB.ExecContext(dbCtx, query, quantity, userID, productID, variant)
	if err != nil {
		return logQueryError(ctx, query, err, quantity, userID, productID, variant)
	}

	return checkAffected(result)
}

func (r *cartRepository) DeleteLine(ctx context.Context, userID, productID int64, variant *string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart WHERE user_id = $1 AND product_id = $2 AND variant IS NOT DISTINCT FROM $3`

	result, err := r.DB.ExecContext(dbCtx, query, userID, productID, variant)
	if err != nil {
		return logQueryError(ctx, query, err, userID, productID, variant)
	}

	return checkAffected(result)
}

func (r *cartRepository) RemoveProduct(ctx context.Context, userID, productID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart WHERE user_id = $1 AND product_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, userID, productID)
	if err != nil {
		return logQueryError(ctx, query, err, userID, productID)
	}

	return checkAffected(result)
}

func (r *cartRepository) ClearCart(ctx context.Context, userID int64) (int64, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart WHERE user_id = $1`

	result, err := r.DB.ExecContext(dbCtx, query, userID)
	if err != nil {
		return 0, logQueryError(ctx, query, err, userID)
	}

	return result.RowsAffected()
}

func (r *cartRepository) LockCart(ctx context.Context, userID int64) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id FROM cart WHERE user_id = $1 FOR UPDATE`

	if _, err := r.DB.ExecContext(dbCtx, query, userID); err != nil {
		return logQueryError(ctx, query, err, userID)
	}

	return nil
}
