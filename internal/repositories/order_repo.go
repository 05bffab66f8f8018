package repositories

import (
	"time"

	"proshop/internal/models"
)

// OrderRepository defines the interface for order data access.
//
// Mutations after creation go through the field-limited MarkPaid and
// MarkDelivered updates, so each state transition can only ever touch the
// columns it owns. There is no generic save; orders are never deleted.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUser(userID string) ([]models.Order, error)
	GetAll() ([]models.Order, error)
	// MarkPaid sets isPaid, paidAt and the payment result. It overwrites any
	// previous payment result: re-confirmation is last-write-wins.
	MarkPaid(id string, paidAt time.Time, result models.PaymentResult) error
	// MarkDelivered sets isDelivered and deliveredAt.
	MarkDelivered(id string, deliveredAt time.Time) error
}
