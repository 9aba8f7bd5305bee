package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/services/mocks"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWishlistHandler(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.WishlistService)
		handler := handlers.NewWishlistHandler(mockService)
		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/wishlist?userId=2", nil, middleware.Identity{UserID: 2, Source: middleware.SourceQuery}, nil)
		recorder := httptest.NewRecorder()

		mockService.On("ListWishlist", mock.Anything, int64(2)).Return([]models.WishlistItem{}, nil).Once()

		// Act
		handler.GetWishlist()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, `[]`, recorder.Body.String())
		mockService.AssertExpectations(t)
	})

	t.Run("Add - Duplicate", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.WishlistService)
		handler := handlers.NewWishlistHandler(mockService)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/wishlist/add", strings.NewReader(`{"product_id":3}`), testutils.TokenIdentity(4), nil)
		recorder := httptest.NewRecorder()

		mockService.On("AddToWishlist", mock.Anything, int64(4), int64(3)).
			Return(appErrors.DuplicateEntryError("Product already in wishlist")).Once()

		// Act
		handler.AddToWishlist()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Product already in wishlist")
	})

	t.Run("Add - Missing product id", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.WishlistService)
		handler := handlers.NewWishlistHandler(mockService)
		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/wishlist/add", strings.NewReader(`{"userId":4}`), testutils.TokenIdentity(4), nil)
		recorder := httptest.NewRecorder()

		// Act
		handler.AddToWishlist()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Product ID is required")
		mockService.AssertNotCalled(t, "AddToWishlist", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Remove", func(t *testing.T) {
		// Arrange
		mockService := new(mocks.WishlistService)
		handler := handlers.NewWishlistHandler(mockService)
		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/wishlist/remove/3", nil, testutils.TokenIdentity(4), map[string]string{"id": "3"})
		recorder := httptest.NewRecorder()

		mockService.On("RemoveFromWishlist", mock.Anything, int64(4), int64(3)).Return(nil).Once()

		// Act
		handler.RemoveFromWishlist()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "Removed from wishlist", decodeMessage(t, recorder))
	})
}
