package repositories

import (
	"errors"
	"fmt"
	"time"

	"proshop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create persists a new order together with its line items.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// normalizePayment drops the scanned payment columns on unpaid orders, so
// paymentResult is present if and only if the order is paid.
func normalizePayment(order *models.Order) {
	if !order.IsPaid {
		order.PaymentResult = nil
	}
}

// GetByID retrieves a single order with its items.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	normalizePayment(&order)
	return &order, nil
}

// GetByUser retrieves all orders owned by the given user, oldest first.
func (r *GORMOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Where("user_id = ?", userID).Order("created_at").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	for i := range orders {
		normalizePayment(&orders[i])
	}
	return orders, nil
}

// GetAll retrieves every order.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Order("created_at").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	for i := range orders {
		normalizePayment(&orders[i])
	}
	return orders, nil
}

// MarkPaid updates only the payment columns of an order.
func (r *GORMOrderRepository) MarkPaid(id string, paidAt time.Time, result models.PaymentResult) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_paid":             true,
		"paid_at":             paidAt,
		"payment_external_id": result.ExternalID,
		"payment_status":      result.Status,
		"payment_update_time": result.UpdateTime,
		"payment_payer_email": result.PayerEmail,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to mark order %s paid: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

// MarkDelivered updates only the delivery columns of an order.
func (r *GORMOrderRepository) MarkDelivered(id string, deliveredAt time.Time) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_delivered": true,
		"delivered_at": deliveredAt,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to mark order %s delivered: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}
