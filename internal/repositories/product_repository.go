package repository

import (
	"context"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)
	ProductExists(ctx context.Context, id int64) (bool, error)
	// GetProductForOrder reads the pricing columns and holds a share lock until the transaction ends.
	GetProductForOrder(ctx context.Context, id int64) (*models.Product, error)
}

type productRepository struct {
	DB DBTX
}

func NewProductRepo(db DBTX) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `
	SELECT p.id, p.name, p.price, p.image_url, p.description, p.category_id, c.name AS category_name
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
`

func scanProduct(row interface{ Scan(dest ...any) error }, product *models.Product) error {
	return row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.ImageURL,
		&product.Description,
		&product.CategoryID,
		&product.CategoryName,
	)
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := productColumns + `ORDER BY p.id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, logQueryError(ctx, query, err)
	}
	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		var product models.Product
		if err := scanProduct(rows, &product); err != nil {
			return nil, logQueryError(ctx, query, err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, logQueryError(ctx, query, err)
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := productColumns + `WHERE p.id = $1`

	product := &models.Product{}

	if err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id), product); err != nil {
		return nil, logQueryError(ctx, query, err, id)
	}

	return product, nil
}

func (r *productRepository) ProductExists(ctx context.Context, id int64) (bool, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`

	var exists bool

	if err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&exists); err != nil {
		return false, logQueryError(ctx, query, err, id)
	}

	return exists, nil
}

func (r *productRepository) GetProductForOrder(ctx context.Context, id int64) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, price, image_url FROM products WHERE id = $1 FOR SHARE`

	product := &models.Product{}

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&product.ID, &product.Name, &product.Price, &product.ImageURL)
	if err != nil {
		return nil, logQueryError(ctx, query, err, id)
	}

	return product, nil
}
