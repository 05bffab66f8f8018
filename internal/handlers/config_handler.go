package handlers

import (
	"proshop/internal/config"

	"github.com/gofiber/fiber/v2"
)

// ConfigHandler exposes the publishable payment keys the storefront needs to
// start a checkout flow. Secrets never leave the server.
type ConfigHandler struct {
	cfg *config.Config
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(cfg *config.Config) *ConfigHandler {
	return &ConfigHandler{cfg: cfg}
}

// RegisterRoutes registers the public config routes.
func (h *ConfigHandler) RegisterRoutes(router fiber.Router) {
	configRoutes := router.Group("/config")
	configRoutes.Get("/paypal", func(c *fiber.Ctx) error {
		return c.SendString(h.cfg.PayPal.ClientID)
	})
	configRoutes.Get("/razorpay", func(c *fiber.Ctx) error {
		return c.SendString(h.cfg.Razorpay.KeyID)
	})
}
