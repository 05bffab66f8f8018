package services_test

import (
	"testing"

	"proshop/internal/models"
	"proshop/internal/repositories"
	"proshop/internal/services"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func setupUserService(t *testing.T) (*services.UserService, *repositories.MockUserRepository, *models.User, *models.User) {
	t.Helper()

	userRepo := repositories.NewMockUserRepository()
	mainAdmin := &models.User{Name: "Root Admin", Email: "root@example.com", Password: "hash", IsAdmin: true}
	admin := &models.User{Name: "Admin", Email: "admin@example.com", Password: "hash", IsAdmin: true}
	assert.NoError(t, userRepo.Create(mainAdmin))
	assert.NoError(t, userRepo.Create(admin))

	service := services.NewUserService(userRepo, []string{"root@example.com"})
	return service, userRepo, mainAdmin, admin
}

func TestUserService_UpdateUser(t *testing.T) {
	service, userRepo, _, admin := setupUserService(t)

	customer := &models.User{Name: "Customer", Email: "customer@example.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(customer))

	// Promote a customer to admin
	updated, err := service.UpdateUser(customer.ID, admin.ID, "", "", boolPtr(true))
	assert.NoError(t, err)
	assert.True(t, updated.IsAdmin)

	// Empty fields leave the existing values untouched
	assert.Equal(t, "Customer", updated.Name)
	assert.Equal(t, "customer@example.com", updated.Email)
}

func TestUserService_UpdateUser_MainAdminProtected(t *testing.T) {
	service, _, mainAdmin, admin := setupUserService(t)

	_, err := service.UpdateUser(mainAdmin.ID, admin.ID, "Renamed", "", boolPtr(false))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot edit a main admin")
}

func TestUserService_UpdateUser_NoSelfDemotion(t *testing.T) {
	service, _, _, admin := setupUserService(t)

	_, err := service.UpdateUser(admin.ID, admin.ID, "", "", boolPtr(false))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot remove your own admin privileges")
}

func TestUserService_DeleteUser(t *testing.T) {
	service, userRepo, _, admin := setupUserService(t)

	customer := &models.User{Name: "Customer", Email: "customer@example.com", Password: "hash"}
	assert.NoError(t, userRepo.Create(customer))

	assert.NoError(t, service.DeleteUser(customer.ID, admin.ID))

	_, err := userRepo.GetByID(customer.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserService_DeleteUser_Protections(t *testing.T) {
	service, _, mainAdmin, admin := setupUserService(t)

	// Main admins cannot be deleted
	err := service.DeleteUser(mainAdmin.ID, admin.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete a main admin")

	// An admin cannot delete their own account
	err = service.DeleteUser(admin.ID, admin.ID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete your own admin account")

	// Unknown users report not found
	err = service.DeleteUser("missing", admin.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
