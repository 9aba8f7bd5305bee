package models

import "time"

type ShippingInfo struct {
	FullName string `json:"fullName" validate:"max=200"`
	Address  string `json:"address" validate:"max=500"`
	City     string `json:"city" validate:"max=200"`
	Phone    string `json:"phone" validate:"max=50"`
}

// PaymentInfo is accepted from the checkout form but never charged or stored.
type PaymentInfo struct {
	Method        string `json:"method,omitempty"`
	CardNumber    string `json:"cardNumber,omitempty"`
	Expiry        string `json:"expiry,omitempty"`
	CVV           string `json:"cvv,omitempty"`
	Email         string `json:"email,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
}

// Last4 returns the trailing four digits of whichever account number was sent.
func (p *PaymentInfo) Last4() string {
	number := p.CardNumber
	if number == "" {
		number = p.AccountNumber
	}
	if len(number) > 4 {
		return number[len(number)-4:]
	}
	return number
}

type OrderLine struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Variant   *string `json:"variant,omitempty"`
}

// OrderSnapshotItem is one priced line of the serialized cart kept on the order row.
type OrderSnapshotItem struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Variant   *string `json:"variant,omitempty"`
	Price     Money   `json:"price"`
	Name      string  `json:"name"`
	ImageURL  *string `json:"image_url"`
}

type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     Money   `json:"price"`
	Name      string  `json:"name,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}

type Order struct {
	ID        int64               `json:"id"`
	UserID    int64               `json:"user_id"`
	Total     Money               `json:"total"`
	Shipping  *ShippingInfo       `json:"shipping"`
	Snapshot  []OrderSnapshotItem `json:"snapshot,omitempty"`
	Items     []OrderItem         `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

type PlaceOrderRequest struct {
	UserID   *int64       `json:"userId,omitempty"`
	Cart     []OrderLine  `json:"cart" validate:"required,min=1"`
	Shipping ShippingInfo `json:"shipping"`
	Payment  *PaymentInfo `json:"payment,omitempty"`
}

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}
