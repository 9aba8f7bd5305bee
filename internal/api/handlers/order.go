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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// PlaceOrder godoc
//
//	@Summary		Place an order
//	@Description	Prices every line from the catalog, adds the flat shipping fee, stores the order and empties the cart.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.PlaceOrderRequest	true	"Cart lines, shipping and payment details"
//	@Success		200		{object}	models.PlaceOrderResponse
//	@Failure		400		{object}	response.ErrorResponse	"Invalid cart"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Failure		500		{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) PlaceOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.PlaceOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Valid cart items required") {
			return
		}

		userID, ok := callerID(w, r, req.UserID)
		if !ok {
			return
		}

		order, err := h.orderService.PlaceOrder(r.Context(), userID, &req)
		if err != nil {
			logger.Error("Failed to place order", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PlaceOrderResponse{Message: "Order placed", OrderID: order.ID})
	}
}

func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userID, ok := callerID(w, r, nil)
		if !ok {
			return
		}

		orders, err := h.orderService.ListOrders(r.Context(), userID)
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to list orders", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)
	}
}

func (h *OrderHandler) ListOrderItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID, ok := pathID(w, r, "orderId", appErrors.ValidationError("Invalid order ID"))
		if !ok {
			return
		}

		userID, ok := callerID(w, r, nil)
		if !ok {
			return
		}

		items, err := h.orderService.ListOrderItems(r.Context(), userID, orderID)
		if err != nil {
			logger.Warn("Failed to list order items", slog.Int64("order_id", orderID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, items)
	}
}
