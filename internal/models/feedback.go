package models

type Feedback struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	FeedbackType string `json:"feedback_type"`
	Comments     string `json:"comments"`
}

type FeedbackRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email"`
	FeedbackType string `json:"feedback_type" validate:"required,max=50"`
	Comments     string `json:"comments" validate:"required,max=5000"`
}
