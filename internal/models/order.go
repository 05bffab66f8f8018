package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Price fields serialize as JSON numbers, matching the public API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// Payment methods accepted at checkout.
const (
	PaymentMethodPayPal   = "PayPal"
	PaymentMethodRazorpay = "Razorpay"
)

// OrderItem is a line item captured as a snapshot at order-creation time.
// It is decoupled from the live product record so later price or stock
// changes never alter historical orders.
type OrderItem struct {
	ID        string          `json:"-" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string          `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string          `json:"product" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Qty       int             `json:"qty" validate:"required,gt=0"`
}

// ShippingAddress is the free-text delivery address captured with the order.
type ShippingAddress struct {
	FullName   string `json:"fullName" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required"`
	Country    string `json:"country" validate:"required"`
}

// PaymentResult records the verified payment proof. It is present if and
// only if the order is paid.
type PaymentResult struct {
	ExternalID string `json:"externalId"`
	Status     string `json:"status"`
	UpdateTime string `json:"updateTime"`
	PayerEmail string `json:"payerEmail"`
}

// UserRef is the owner summary populated on single-order fetches.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order is the central entity: an immutable snapshot of a checkout plus its
// payment and delivery status. Pricing fields are fixed at creation and never
// recomputed server-side from the items.
type Order struct {
	ID     string   `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID string   `json:"userId" gorm:"index;type:varchar(36)"`
	User   *UserRef `json:"user,omitempty" gorm:"-"`

	Items           []OrderItem     `json:"orderItems" gorm:"foreignKey:OrderID"`
	ShippingAddress ShippingAddress `json:"shippingAddress" gorm:"embedded;embeddedPrefix:ship_"`
	PaymentMethod   string          `json:"paymentMethod" validate:"required,oneof=PayPal Razorpay"`

	ItemsPrice    decimal.Decimal `json:"itemsPrice" gorm:"type:decimal(12,2)"`
	ShippingPrice decimal.Decimal `json:"shippingPrice" gorm:"type:decimal(12,2)"`
	TaxPrice      decimal.Decimal `json:"taxPrice" gorm:"type:decimal(12,2)"`
	TotalPrice    decimal.Decimal `json:"totalPrice" gorm:"type:decimal(12,2)"`

	IsPaid        bool           `json:"isPaid"`
	PaidAt        *time.Time     `json:"paidAt,omitempty"`
	PaymentResult *PaymentResult `json:"paymentResult,omitempty" gorm:"embedded;embeddedPrefix:payment_"`

	IsDelivered bool       `json:"isDelivered"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// GatewayOrder is the opaque provider-side handle created to drive the
// Razorpay client payment flow. Amount is in the smallest currency subunit.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
