package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"proshop/internal/invoice"
	"proshop/internal/models"
	"proshop/internal/payment"
	"proshop/internal/repositories"

	"github.com/shopspring/decimal"
)

// EventPublisher publishes order lifecycle events. Satisfied by the rabbitmq
// client; nil disables publishing.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService is the order state machine. It orchestrates creation, payment
// confirmation and delivery confirmation, and enforces the invariants around
// them. All durable state lives in the repository; each call is an
// independent unit of work.
type OrderService struct {
	orderRepo repositories.OrderRepository
	userRepo  repositories.UserRepository
	verifier  *payment.Verifier
	gateway   payment.GatewayClient
	mqClient  EventPublisher
	now       func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	userRepo repositories.UserRepository,
	verifier *payment.Verifier,
	gateway payment.GatewayClient,
	mqClient EventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		userRepo:  userRepo,
		verifier:  verifier,
		gateway:   gateway,
		mqClient:  mqClient,
		now:       time.Now,
	}
}

// CreateOrder persists a new order from a cart snapshot. The item sequence
// and the pricing fields are taken as given from the caller; totals are a
// documented trust boundary and are not recomputed here.
func (s *OrderService) CreateOrder(order *models.Order, ownerID string) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, models.ErrNoOrderItems
	}

	order.ID = ""
	order.UserID = ownerID
	order.IsPaid = false
	order.PaidAt = nil
	order.PaymentResult = nil
	order.IsDelivered = false
	order.DeliveredAt = nil
	order.CreatedAt = s.now()

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishEvent("order.created", map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"total":   order.TotalPrice,
	})

	return order, nil
}

// GetOrder returns an order with its owner's name and email populated. Any
// authenticated caller may fetch any order by id.
func (s *OrderService) GetOrder(id string) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if owner, err := s.userRepo.GetByID(order.UserID); err == nil {
		order.User = &models.UserRef{ID: owner.ID, Name: owner.Name, Email: owner.Email}
	}
	return order, nil
}

// ListMine returns all orders owned by the given user.
func (s *OrderService) ListMine(ownerID string) ([]models.Order, error) {
	return s.orderRepo.GetByUser(ownerID)
}

// ListAll returns every order.
func (s *OrderService) ListAll() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// CreateGatewayOrder creates a Razorpay-side payment order for the given
// order's total, with the amount converted to the smallest currency subunit.
// Only the order's owner may initiate the gateway flow.
func (s *OrderService) CreateGatewayOrder(ctx context.Context, orderID, callerID string) (*models.GatewayOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != callerID {
		return nil, models.ErrNotAuthorized
	}

	amount := order.TotalPrice.Mul(decimal.NewFromInt(100)).IntPart()
	receipt := fmt.Sprintf("receipt_order_%s", order.ID)

	gatewayOrder, err := s.gateway.CreateOrder(ctx, amount, receipt)
	if err != nil {
		return nil, err
	}
	return gatewayOrder, nil
}

// ConfirmPayment verifies a payment proof and marks the order paid. On
// verification failure the order is left untouched. Re-confirming an already
// paid order re-applies the update: the last write wins and the previous
// payment result is overwritten.
func (s *OrderService) ConfirmPayment(orderID string, proof payment.Proof) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	// The Razorpay proof carries no payer info, so the owner's email is
	// recorded in the payment result.
	var payerEmail string
	if owner, err := s.userRepo.GetByID(order.UserID); err == nil {
		payerEmail = owner.Email
	}

	result, err := s.verifier.Verify(proof, payerEmail)
	if err != nil {
		return nil, err
	}

	paidAt := s.now()
	if err := s.orderRepo.MarkPaid(order.ID, paidAt, *result); err != nil {
		return nil, err
	}

	s.publishEvent("order.paid", map[string]interface{}{
		"orderID":   order.ID,
		"paymentID": result.ExternalID,
	})

	return s.orderRepo.GetByID(order.ID)
}

// ConfirmDelivery marks the order delivered. There is no precondition on
// payment state: an unpaid order can be marked delivered.
func (s *OrderService) ConfirmDelivery(orderID string) (*models.Order, error) {
	deliveredAt := s.now()
	if err := s.orderRepo.MarkDelivered(orderID, deliveredAt); err != nil {
		return nil, err
	}

	s.publishEvent("order.delivered", map[string]interface{}{
		"orderID": orderID,
	})

	return s.orderRepo.GetByID(orderID)
}

// RenderInvoice builds and encodes the PDF invoice for a paid order. Unpaid
// or unknown orders are rejected before any rendering happens.
func (s *OrderService) RenderInvoice(orderID string) ([]byte, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	doc, err := invoice.Build(order)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.EncodePDF(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode invoice for order %s: %w", orderID, err)
	}
	return buf.Bytes(), nil
}

// publishEvent sends an order event if a publisher is configured. Publishing
// failures are logged and never fail the request.
func (s *OrderService) publishEvent(routingKey string, data map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(data)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish("orders", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
