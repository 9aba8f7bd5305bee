package repository

import (
	"context"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*models.Category, error)
}

type categoryRepository struct {
	DB DBTX
}

func NewCategoryRepo(db DBTX) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name FROM categories ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, logQueryError(ctx, query, err)
	}
	defer rows.Close()

	categories := []models.Category{}

	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, logQueryError(ctx, query, err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, logQueryError(ctx, query, err)
	}

	return categories, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int64) (*models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name FROM categories WHERE id = $1`

	category := &models.Category{}

	if err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&category.ID, &category.Name); err != nil {
		return nil, logQueryError(ctx, query, err, id)
	}

	return category, nil
}
