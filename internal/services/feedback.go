package service

import (
	"context"
	"strings"

	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

type FeedbackService interface {
	SubmitFeedback(ctx context.Context, req *models.FeedbackRequest) error
}

type feedbackService struct {
	repo   repository.FeedbackRepository
	policy *bluemonday.Policy
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo, policy: bluemonday.StrictPolicy()}
}

func (s *feedbackService) SubmitFeedback(ctx context.Context, req *models.FeedbackRequest) error {

	feedback := &models.Feedback{
		Name:         strings.TrimSpace(s.policy.Sanitize(req.Name)),
		Email:        normalizeEmail(req.Email),
		FeedbackType: strings.TrimSpace(s.policy.Sanitize(req.FeedbackType)),
		Comments:     strings.TrimSpace(s.policy.Sanitize(req.Comments)),
	}

	if feedback.Name == "" || feedback.FeedbackType == "" || feedback.Comments == "" {
		return appErrors.ValidationError("All fields are required with valid email")
	}

	if err := s.repo.CreateFeedback(ctx, feedback); err != nil {
		return appErrors.DatabaseError("Database error").WithError(err)
	}

	return nil
}
