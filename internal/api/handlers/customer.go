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

type CustomerHandler struct {
	customerService service.CustomerService
	validator       *validator.Validate
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, validator: validator.New()}
}

// Signup godoc
//
//	@Summary	Create a customer account
//	@Tags		Customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		models.SignupRequest	true	"Name, email and password"
//	@Success	200			{object}	response.MessageResponse
//	@Failure	400			{object}	response.ErrorResponse	"Invalid input or email already in use"
//	@Router		/customers/signup [post]
func (h *CustomerHandler) Signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SignupRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Valid name, email, and password (min 6 chars) required") {
			return
		}

		customer, err := h.customerService.Signup(r.Context(), &req)
		if err != nil {
			logger.Warn("Signup failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Customer registered", slog.Int64("customer_id", customer.ID))
		response.Message(w, "Account created")
	}
}

// Login godoc
//
//	@Summary	Exchange credentials for a bearer token
//	@Tags		Customers
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		models.LoginRequest	true	"Email and password"
//	@Success	200			{object}	models.LoginResponse
//	@Failure	401			{object}	response.ErrorResponse	"Invalid email or password"
//	@Failure	429			{object}	response.ErrorResponse
//	@Router		/customers/login [post]
func (h *CustomerHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Valid email and password required") {
			return
		}

		resp, err := h.customerService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, resp)
	}
}

func (h *CustomerHandler) UpdateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := h.ownedCustomerID(w, r)
		if !ok {
			return
		}

		var req models.UpdateCustomerRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Valid name and email required") {
			return
		}

		if err := h.customerService.UpdateCustomer(r.Context(), id, &req); err != nil {
			logger.Warn("Customer update failed", slog.Int64("customer_id", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Customer info updated")
	}
}

func (h *CustomerHandler) UpdatePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := h.ownedCustomerID(w, r)
		if !ok {
			return
		}

		var req models.UpdatePasswordRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Passwords do not match or are too short (min 6 chars)") {
			return
		}

		if err := h.customerService.UpdatePassword(r.Context(), id, &req); err != nil {
			logger.Warn("Password update failed", slog.Int64("customer_id", id), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Password updated")
	}
}

// ownedCustomerID reads the customer id from the path. A token-authenticated
// caller may only change its own account.
func (h *CustomerHandler) ownedCustomerID(w http.ResponseWriter, r *http.Request) (int64, bool) {

	id, ok := pathID(w, r, "id", appErrors.ValidationError("Invalid customer ID"))
	if !ok {
		return 0, false
	}

	if identity, found := middleware.IdentityFromContext(r.Context()); found && identity.Source == middleware.SourceToken && identity.UserID != id {
		middleware.LoggerFromContext(r.Context()).Warn("Attempted to modify another customer", slog.Int64("customer_id", id))
		response.Error(w, appErrors.ForbiddenError("You don't have permission to modify this customer"))
		return 0, false
	}

	return id, true
}
