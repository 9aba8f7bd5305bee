package models

// CartItem is a cart line joined with the current product name, price and image.
type CartItem struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Variant   *string `json:"variant"`
	Name      string  `json:"name"`
	Price     Money   `json:"price"`
	ImageURL  *string `json:"image_url"`
}

type AddToCartRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Variant   *string `json:"variant,omitempty" validate:"omitempty,max=100"`
	UserID    *int64  `json:"userId,omitempty"`
}

type UpdateCartRequest struct {
	Quantity *int    `json:"quantity" validate:"required"`
	Variant  *string `json:"variant,omitempty" validate:"omitempty,max=100"`
	UserID   *int64  `json:"userId,omitempty"`
}
