package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/jewelry-storefront/internal/errors"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	repository "github.com/aaravmahajanofficial/jewelry-storefront/internal/repositories"
	"github.com/microcosm-cc/bluemonday"
)

// bounds the best-effort welcome mail so a slow provider cannot hold up subscribe
const welcomeMailTimeout = 5 * time.Second

type Mailer interface {
	Send(ctx context.Context, msg *models.EmailMessage) error
}

type NewsletterService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) error
}

type newsletterService struct {
	repo   repository.NewsletterRepository
	mailer Mailer
	policy *bluemonday.Policy
}

// NewNewsletterService sends a welcome mail after each subscription when mailer is non-nil.
// Mail failures never fail the subscription.
func NewNewsletterService(repo repository.NewsletterRepository, mailer Mailer) NewsletterService {
	return &newsletterService{repo: repo, mailer: mailer, policy: bluemonday.StrictPolicy()}
}

func (s *newsletterService) Subscribe(ctx context.Context, req *models.SubscribeRequest) error {

	logger := middleware.LoggerFromContext(ctx)

	subscriber := &models.NewsletterSubscriber{
		Name:  strings.TrimSpace(s.policy.Sanitize(req.Name)),
		Email: normalizeEmail(req.Email),
	}

	if subscriber.Name == "" {
		return appErrors.ValidationError("Valid name and email required")
	}

	if err := s.repo.Subscribe(ctx, subscriber); err != nil {
		if repository.IsUniqueViolation(err) {
			return appErrors.EmailInUseError("Email already subscribed").WithError(err)
		}
		return appErrors.DatabaseError("Database error").WithError(err)
	}

	if s.mailer == nil {
		return nil
	}

	msg := &models.EmailMessage{
		To:      subscriber.Email,
		ToName:  subscriber.Name,
		Subject: "Welcome to our jewelry newsletter",
		Text:    fmt.Sprintf("Hi %s, thanks for subscribing! You'll be the first to hear about new collections.", subscriber.Name),
	}

	mailCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), welcomeMailTimeout)
	defer cancel()

	if err := s.mailer.Send(mailCtx, msg); err != nil {
		logger.Warn("Failed to send welcome email", slog.Int64("subscriber_id", subscriber.ID), slog.String("error", err.Error()))
	}

	return nil
}
