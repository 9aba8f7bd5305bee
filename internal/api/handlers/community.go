package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	service "github.com/aaravmahajanofficial/jewelry-storefront/internal/services"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// CommunityHandler serves the newsletter and feedback forms.
type CommunityHandler struct {
	newsletterService service.NewsletterService
	feedbackService   service.FeedbackService
	validator         *validator.Validate
}

func NewCommunityHandler(newsletterService service.NewsletterService, feedbackService service.FeedbackService) *CommunityHandler {
	return &CommunityHandler{
		newsletterService: newsletterService,
		feedbackService:   feedbackService,
		validator:         validator.New(),
	}
}

func (h *CommunityHandler) Subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.SubscribeRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "Valid name and email required") {
			return
		}

		if err := h.newsletterService.Subscribe(r.Context(), &req); err != nil {
			logger.Warn("Newsletter subscription failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Subscribed to newsletter")
	}
}

func (h *CommunityHandler) SubmitFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.FeedbackRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator, logger, "All fields are required with valid email") {
			return
		}

		if err := h.feedbackService.SubmitFeedback(r.Context(), &req); err != nil {
			logger.Warn("Feedback submission failed", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Message(w, "Feedback submitted")
	}
}
