package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/cache"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
}

type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      cache.Cache
	ttl        time.Duration
}

// NewCatalogService serves catalog reads through c. Cache failures are logged
// and fall back to the database.
func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository, c cache.Cache, ttl time.Duration) CatalogService {
	if c == nil {
		c = cache.NewNoopCache()
	}
	return &catalogService{products: products, categories: categories, cache: c, ttl: ttl}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {

	var products []models.Product

	if s.fromCache(ctx, cache.ProductListKey, &products) {
		return products, nil
	}

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	if len(products) == 0 {
		return nil, appErrors.NotFoundError("No products found")
	}

	s.toCache(ctx, cache.ProductListKey, products)

	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, strconv.FormatInt(id, 10))

	var cached models.Product
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	product, err := s.products.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	s.toCache(ctx, key, product)

	return product, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	var categories []models.Category

	if s.fromCache(ctx, cache.CategoryListKey, &categories) {
		return categories, nil
	}

	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	if len(categories) == 0 {
		return nil, appErrors.NotFoundError("No categories found")
	}

	s.toCache(ctx, cache.CategoryListKey, categories)

	return categories, nil
}

func (s *catalogService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {

	key := cache.Key(cache.CategoryKeyPrefix, strconv.FormatInt(id, 10))

	var cached models.Category
	if s.fromCache(ctx, key, &cached) {
		return &cached, nil
	}

	category, err := s.categories.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Category not found").WithError(err)
		}
		return nil, appErrors.DatabaseError("Database error").WithError(err)
	}

	s.toCache(ctx, key, category)

	return category, nil
}

func (s *catalogService) fromCache(ctx context.Context, key string, dest any) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return found
}

func (s *catalogService) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
