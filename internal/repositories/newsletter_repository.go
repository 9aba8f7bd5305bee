package repository

import (
	"context"

	"github.com/aaravmahajanofficial/jewelry-storefront/internal/models"
	"github.com/aaravmahajanofficial/jewelry-storefront/internal/utils"
)

type NewsletterRepository interface {
	Subscribe(ctx context.Context, subscriber *models.NewsletterSubscriber) error
}

type newsletterRepository struct {
	DB DBTX
}

func NewNewsletterRepo(db DBTX) NewsletterRepository {
	return &newsletterRepository{DB: db}
}

func (r *newsletterRepository) Subscribe(ctx context.Context, subscriber *models.NewsletterSubscriber) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO newsletter (name, email) VALUES ($1, $2) RETURNING id, created_at`

	err := r.DB.QueryRowContext(dbCtx, query, subscriber.Name, subscriber.Email).Scan(&subscriber.ID, &subscriber.CreatedAt)
	if err != nil {
		return logQueryError(ctx, query, err, subscriber.Name, subscriber.Email)
	}

	return nil
}
