package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	service "github.com/aaravmahajanofficial/jewelry-storefront/internal/services"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		List the caller's cart
//	@Description	Lines are joined with the current product name, price and image.
//	@Tags			Cart
//	@Produce		json
//	@Param			userId	query		int	false	"Caller id (development only)"
//	@Success		200		{array}		models.CartItem
//	@Failure		401		{object}	response.ErrorResponse
//	@Failure		500		{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		userID, ok := callerID(w, r, nil)
		if !ok {
			return
		}

		items, err := h.cartService.ListCart(r.Context(), userID)
		if err != nil {
			logger.Error("Failed to list cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// AddToCart godoc
//
//	@Summary	Add a product to the cart
//	@Tags		Cart
//	@Accept		json
//	@Produce	json
//	@Param		item	body		models.AddToCartRequest	true	"Cart line"
//	@Success	200		{object}	response.MessageResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Security	BearerAuth
//	@Router		/cart/add [post]
func (h *CartHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddToCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Product ID and valid quantity are required") {
			return
		}

		userID, ok := callerID(w, r, req.UserID)
		if !ok {
			return
		}

		if err := h.cartService.AddToCart(r.Context(), userID, req.ProductID, req.Quantity, req.Variant); err != nil {
			logger.Warn("Failed to add to cart", slog.Int64("product_id", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Added to cart")
	}
}

// UpdateCart godoc
//
//	@Summary		Set the quantity of a cart line
//	@Description	A quantity of zero removes the line.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Product ID"
//	@Param			item	body		models.UpdateCartRequest	true	"New quantity"
//	@Success		200		{object}	response.MessageResponse
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse	"Item not found in cart"
//	@Security		BearerAuth
//	@Router			/cart/update/{id} [put]
func (h *CartHandler) UpdateCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, ok := pathID(w, r, "id", appErrors.ValidationError("Invalid product ID"))
		if !ok {
			return
		}

		var req models.UpdateCartRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Valid quantity is required") {
			return
		}

		userID, ok := callerID(w, r, req.UserID)
		if !ok {
			return
		}

		if err := h.cartService.UpdateCart(r.Context(), userID, productID, *req.Quantity, req.Variant); err != nil {
			logger.Warn("Failed to update cart", slog.Int64("product_id", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Cart updated")
	}
}

func (h *CartHandler) RemoveFromCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		productID, ok := pathID(w, r, "id", appErrors.ValidationError("Invalid product ID"))
		if !ok {
			return
		}

		userID, ok := callerID(w, r, nil)
		if !ok {
			return
		}

		if err := h.cartService.RemoveFromCart(r.Context(), userID, productID); err != nil {
			logger.Warn("Failed to remove from cart", slog.Int64("product_id", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Removed from cart")
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := callerID(w, r, nil)
		if !ok {
			return
		}

		if err := h.cartService.ClearCart(r.Context(), userID); err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to clear cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Cart cleared")
	}
}
