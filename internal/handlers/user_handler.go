package handlers

import (
	"log"
	"strings"

	"proshop/internal/middleware"
	"proshop/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles admin HTTP requests for user management.
type UserHandler struct {
	service *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// RegisterRoutes registers the user management routes. All of them are
// admin only.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users", middleware.AdminRequired())
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

// HandleGetUsers lists all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return respondError(c, err)
	}
	return c.JSON(users)
}

// HandleGetUserByID retrieves a single user.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	user, err := h.service.GetUserByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// HandleUpdateUser updates a user's profile and admin status, subject to the
// main-admin protections.
func (h *UserHandler) HandleUpdateUser(c *fiber.Ctx) error {
	caller := middleware.CurrentUser(c)

	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		IsAdmin *bool  `json:"isAdmin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	user, err := h.service.UpdateUser(c.Params("id"), caller.ID, req.Name, req.Email, req.IsAdmin)
	if err != nil {
		log.Printf("Error updating user %s: %v", c.Params("id"), err)
		if strings.HasPrefix(err.Error(), "cannot") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
	})
}

// HandleDeleteUser removes a user, subject to the main-admin protections.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	caller := middleware.CurrentUser(c)

	if err := h.service.DeleteUser(c.Params("id"), caller.ID); err != nil {
		log.Printf("Error deleting user %s: %v", c.Params("id"), err)
		if strings.HasPrefix(err.Error(), "cannot") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User removed"})
}
