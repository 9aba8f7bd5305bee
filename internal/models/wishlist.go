package models

type WishlistItem struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     Money   `json:"price"`
	ImageURL  *string `json:"image_url"`
}

type AddToWishlistRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	UserID    *int64 `json:"userId,omitempty"`
}
