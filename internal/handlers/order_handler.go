package handlers

import (
	"errors"
	"fmt"
	"log"

	"proshop/internal/middleware"
	"proshop/internal/models"
	"proshop/internal/payment"
	"proshop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app. All routes
// assume AuthRequired already ran on the group.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandleCreateOrder)
	// "/mine" must be registered before "/:id".
	orderRoutes.Get("/mine", h.HandleGetMyOrders)
	orderRoutes.Get("/", middleware.AdminRequired(), h.HandleGetAllOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/:id/gateway", h.HandleCreateGatewayOrder)
	orderRoutes.Put("/:id/pay", h.HandlePayOrder)
	orderRoutes.Put("/:id/deliver", middleware.AdminRequired(), h.HandleDeliverOrder)
	orderRoutes.Get("/:id/invoice", h.HandleGetInvoice)
}

// statusForAppError maps the domain error taxonomy to HTTP status codes.
func statusForAppError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.ErrCodeValidation, models.ErrCodeInvalidSignature:
		return fiber.StatusBadRequest
	case models.ErrCodeNotFound, models.ErrCodeInvoiceNotAvailable:
		return fiber.StatusNotFound
	case models.ErrCodeAuthorization:
		return fiber.StatusForbidden
	case models.ErrCodeGateway:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes the domain error's message with its mapped status.
func respondError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return c.Status(statusForAppError(err)).JSON(fiber.Map{
			"message": appErr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Internal server error",
		"error":   err.Error(),
	})
}

// HandleCreateOrder creates a new order from the caller's cart snapshot.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var order models.Order
	if err := c.BodyParser(&order); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	// Empty carts are rejected before any field validation.
	if len(order.Items) == 0 {
		return respondError(c, models.ErrNoOrderItems)
	}

	if err := h.validate.Struct(order); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	createdOrder, err := h.service.CreateOrder(&order, user.ID)
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleGetMyOrders lists the caller's own orders.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	orders, err := h.service.ListMine(user.ID)
	if err != nil {
		log.Printf("Error listing orders for user %s: %v", user.ID, err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetAllOrders lists every order. Admin only.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListAll()
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return respondError(c, err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order with its owner populated.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrder(orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleCreateGatewayOrder creates a Razorpay payment order for checkout.
func (h *OrderHandler) HandleCreateGatewayOrder(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	orderID := c.Params("id")

	gatewayOrder, err := h.service.CreateGatewayOrder(c.Context(), orderID, user.ID)
	if err != nil {
		log.Printf("Error creating gateway order for order %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(gatewayOrder)
}

// HandlePayOrder confirms a payment proof and marks the order paid.
func (h *OrderHandler) HandlePayOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req payment.ProofRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment proof body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	order, err := h.service.ConfirmPayment(orderID, payment.ParseProof(req))
	if err != nil {
		log.Printf("Error confirming payment for order %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleDeliverOrder marks an order delivered. Admin only.
func (h *OrderHandler) HandleDeliverOrder(c *fiber.Ctx) error {
	orderID := c.Params("id")

	order, err := h.service.ConfirmDelivery(orderID)
	if err != nil {
		log.Printf("Error confirming delivery for order %s: %v", orderID, err)
		return respondError(c, err)
	}
	return c.JSON(order)
}

// HandleGetInvoice renders the PDF invoice for a paid order.
func (h *OrderHandler) HandleGetInvoice(c *fiber.Ctx) error {
	orderID := c.Params("id")

	body, err := h.service.RenderInvoice(orderID)
	if err != nil {
		log.Printf("Error rendering invoice for order %s: %v", orderID, err)
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=invoice-%s.pdf", orderID))
	return c.Send(body)
}
