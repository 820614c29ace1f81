package models

import "time"

// Order statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem represents a single item within an order.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"` // Price at the time of order
}

// Order represents a placed customer order.
type Order struct {
	ID                  string      `json:"id" gorm:"primaryKey;type:varchar(32)"`
	UserID              string      `json:"userId,omitempty" gorm:"index;type:varchar(36)"`
	CustomerName        string      `json:"customerName"`
	Email               string      `json:"email" gorm:"index;type:varchar(255)"`
	Phone               string      `json:"phone"`
	Address             string      `json:"address"`
	Items               []OrderItem `json:"items" gorm:"serializer:json"`
	Subtotal            float64     `json:"subtotal"`
	Shipping            float64     `json:"shipping"`
	TotalAmount         float64     `json:"totalAmount"`
	PaymentMethod       string      `json:"paymentMethod"`
	Status              string      `json:"status" gorm:"type:varchar(20)"`
	SpecialInstructions string      `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time   `json:"createdAt"`
	UpdatedAt           time.Time   `json:"updatedAt"`
}

// CustomerInfo is the delivery contact captured on the checkout form.
type CustomerInfo struct {
	FirstName string `json:"firstName" validate:"required,max=50"`
	LastName  string `json:"lastName" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required,min=10,max=15"`
	Address   string `json:"address" validate:"required,max=300"`
	Landmark  string `json:"landmark" validate:"omitempty,max=100"`
	City      string `json:"city" validate:"required,max=100"`
	State     string `json:"state" validate:"required,max=100"`
	Pincode   string `json:"pincode" validate:"required,numeric,len=6"`
	Country   string `json:"country" validate:"omitempty,max=60"`
}

// CheckoutRequest is the body of a place-order call.
type CheckoutRequest struct {
	CartID              string       `json:"cartId" validate:"required,uuid"`
	Customer            CustomerInfo `json:"customer"`
	PaymentMethod       string       `json:"paymentMethod" validate:"required,oneof=cod upi card netbanking"`
	SpecialInstructions string       `json:"specialInstructions" validate:"omitempty,max=500"`
	AgreeToTerms        bool         `json:"agreeToTerms" validate:"required"`
}
