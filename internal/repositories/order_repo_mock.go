package repositories

import (
	"sync"
	"time"

	"proshop/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// Insertion order is preserved so listings are stable across runs.
type MockOrderRepository struct {
	orders map[string]models.Order
	ids    []string
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	r.orders[order.ID] = *order
	r.ids = append(r.ids, order.ID)
	return nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return &order, nil
}

// GetByUser returns all orders owned by the given user in insertion order.
func (r *MockOrderRepository) GetByUser(userID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0)
	for _, id := range r.ids {
		if order := r.orders[id]; order.UserID == userID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}

// GetAll returns all orders in insertion order.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.ids))
	for _, id := range r.ids {
		orderList = append(orderList, r.orders[id])
	}
	return orderList, nil
}

// MarkPaid sets the payment fields of an order, overwriting any previous
// payment result.
func (r *MockOrderRepository) MarkPaid(id string, paidAt time.Time, result models.PaymentResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.IsPaid = true
	order.PaidAt = &paidAt
	order.PaymentResult = &result
	r.orders[id] = order
	return nil
}

// MarkDelivered sets the delivery fields of an order.
func (r *MockOrderRepository) MarkDelivered(id string, deliveredAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.IsDelivered = true
	order.DeliveredAt = &deliveredAt
	r.orders[id] = order
	return nil
}
