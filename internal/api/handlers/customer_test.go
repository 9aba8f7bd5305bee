package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupCustomerTest() (*mocks.CustomerService, *handlers.CustomerHandler) {
	mockService := new(mocks.CustomerService)
	return mockService, handlers.NewCustomerHandler(mockService)
}

func TestSignup(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCustomerTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/customers/signup",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"secret1"}`), nil)
		recorder := httptest.NewRecorder()

		mockService.On("Signup", mock.Anything, &models.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"}).
			Return(&models.Customer{ID: 7, Name: "Ada"}, nil).Once()

		// Act
		handler.Signup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Account created", decodeMessage(t, recorder))
		assert.NotContains(t, recorder.Body.String(), "secret1")
		mockService.AssertExpectations(t)
	})

	t.Run("Failure - Short password", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCustomerTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/customers/signup",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"123"}`), nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.Signup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Valid name, email, and password (min 6 chars) required")
		mockService.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Email in use", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCustomerTest()
		req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/customers/signup",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"secret1"}`), nil)
		recorder := httptest.NewRecorder()

		mockService.On("Signup", mock.Anything, mock.Anything).Return(nil, appErrors.EmailInUseError("Email already in use")).Once()

		// Act
		handler.Signup()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Email already in use")
	})
}

func TestLoginHandler(t *testing.T) {
	// Arrange
	mockService, handler := setupCustomerTest()
	req := testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/customers/login",
		strings.NewReader(`{"email":"ada@example.com","password":"secret1"}`), nil)
	recorder := httptest.NewRecorder()

	mockService.On("Login", mock.Anything, mock.Anything).
		Return(&models.LoginResponse{Token: "signed.jwt.token", ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	// Act
	handler.Login()(recorder, req)

	// Assert
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"token":"signed.jwt.token"`)
}

func TestUpdateCustomerHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCustomerTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/customers/7",
			strings.NewReader(`{"name":"Ada L","email":"ada@example.com"}`), testutils.TokenIdentity(7), map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		mockService.On("UpdateCustomer", mock.Anything, int64(7), mock.Anything).Return(nil).Once()

		// Act
		handler.UpdateCustomer()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Customer info updated", decodeMessage(t, recorder))
	})

	t.Run("Failure - Another customer's account", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCustomerTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/customers/8",
			strings.NewReader(`{"name":"Eve","email":"eve@example.com"}`), testutils.TokenIdentity(7), map[string]string{"id": "8"})
		recorder := httptest.NewRecorder()

		// Act
		handler.UpdateCustomer()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		mockService.AssertNotCalled(t, "UpdateCustomer", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCustomerTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/customers/99",
			strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`), testutils.DefaultIdentity(1), map[string]string{"id": "99"})
		recorder := httptest.NewRecorder()

		mockService.On("UpdateCustomer", mock.Anything, int64(99), mock.Anything).Return(appErrors.NotFoundError("Customer not found")).Once()

		// Act
		handler.UpdateCustomer()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestUpdatePasswordHandler(t *testing.T) {
	t.Run("Failure - Mismatch", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCustomerTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/customers/7/password",
			strings.NewReader(`{"newPassword":"longer1","confirmPassword":"longer2"}`), testutils.TokenIdentity(7), map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		// Act
		handler.UpdatePassword()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Passwords do not match or are too short (min 6 chars)")
		mockService.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockService, handler := setupCustomerTest()
		req := testutils.CreateTestRequestWithContext(http.MethodPut, "/api/customers/7/password",
			strings.NewReader(`{"newPassword":"longer1","confirmPassword":"longer1"}`), testutils.TokenIdentity(7), map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		mockService.On("UpdatePassword", mock.Anything, int64(7), mock.Anything).Return(nil).Once()

		// Act
		handler.UpdatePassword()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Password updated", decodeMessage(t, recorder))
	})
}
