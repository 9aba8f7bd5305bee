package repository

import (
	"context"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error
}

type feedbackRepository struct {
	DB DBTX
}

func NewFeedbackRepo(db DBTX) FeedbackRepository {
	return &feedbackRepository{DB: db}
}

func (r *feedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO feedback (name, email, feedback_type, comments)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.DB.QueryRowContext(dbCtx, query, feedback.Name, feedback.Email, feedback.FeedbackType, feedback.Comments).Scan(&feedback.ID)
	if err != nil {
		return logQueryError(ctx, query, err, feedback.Name, feedback.Email, feedback.FeedbackType)
	}

	return nil
}
