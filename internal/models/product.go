package models

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is a catalog row joined with its category name.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        Money   `json:"price"`
	ImageURL     *string `json:"image_url"`
	Description  *string `json:"description"`
	CategoryID   *int64  `json:"category_id"`
	CategoryName *string `json:"category_name"`
}
