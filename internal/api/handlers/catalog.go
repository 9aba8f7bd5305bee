package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	service "github.com/aaravmahajanofficial/jewelry-storefront/internal/services"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts godoc
//
//	@Summary	List all products
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}		models.Product
//	@Failure	404	{object}	response.ErrorResponse	"No products found"
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/products [get]
func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.ListProducts(r.Context())
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Products listed", slog.Int("count", len(products)))
		response.Success(w, http.StatusOK, products)
	}
}

// GetProduct godoc
//
//	@Summary	Get a product by ID
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	models.Product
//	@Failure	404	{object}	response.ErrorResponse	"Product not found"
//	@Router		/products/{id} [get]
func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		// an unparsable id can never match a row
		id, ok := pathID(w, r, "id", appErrors.NotFoundError("Product not found"))
		if !ok {
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.Int64("product_id", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list categories", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)
	}
}

func (h *CatalogHandler) GetCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := pathID(w, r, "id", appErrors.NotFoundError("Category not found"))
		if !ok {
			return
		}

		category, err := h.catalogService.GetCategory(r.Context(), id)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to get category", slog.Int64("category_id", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, category)
	}
}
