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

type WishlistHandler struct {
	wishlistService service.WishlistService
	validator       *validator.Validate
}

func NewWishlistHandler(wishlistService service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistService: wishlistService, validator: validator.New()}
}

func (h *WishlistHandler) GetWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := callerID(w, r, nil)
		if !ok {
			return
		}

		items, err := h.wishlistService.ListWishlist(r.Context(), userID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list wishlist", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}

// AddToWishlist godoc
//
//	@Summary	Add a product to the wishlist
//	@Tags		Wishlist
//	@Accept		json
//	@Produce	json
//	@Param		item	body		models.AddToWishlistRequest	true	"Product"
//	@Success	200		{object}	response.MessageResponse
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse	"Product not found"
//	@Failure	409		{object}	response.ErrorResponse	"Product already in wishlist"
//	@Security	BearerAuth
//	@Router		/wishlist/add [post]
func (h *WishlistHandler) AddToWishlist() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddToWishlistRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Product ID is required") {
			return
		}

		userID, ok := callerID(w, r, req.UserID)
		if !ok {
			return
		}

		if err := h.wishlistService.AddToWishlist(r.Context(), userID, req.ProductID); err != nil {
			logger.Warn("Failed to add to wishlist", slog.Int64("product_id", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Added to wishlist")
	}
}

func (h *WishlistHandler) RemoveFromWishlist() http.HandlerFunc {
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

		if err := h.wishlistService.RemoveFromWishlist(r.Context(), userID, productID); err != nil {
			logger.Warn("Failed to remove from wishlist", slog.Int64("product_id", productID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Removed from wishlist")
	}
}
