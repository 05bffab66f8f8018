package services

import (
	"fmt"

	"proshop/internal/models"
	"proshop/internal/repositories"
)

// UserService handles admin-side user management. A configured set of main
// admin accounts can never be edited or deleted, and an admin can never
// remove their own privileges or account.
type UserService struct {
	userRepo   repositories.UserRepository
	mainAdmins map[string]bool
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, mainAdminEmails []string) *UserService {
	mainAdmins := make(map[string]bool, len(mainAdminEmails))
	for _, email := range mainAdminEmails {
		mainAdmins[email] = true
	}
	return &UserService{
		userRepo:   userRepo,
		mainAdmins: mainAdmins,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// UpdateUser updates a user's name, email and admin status on behalf of the
// calling admin. Main admins cannot be edited, and the caller cannot strip
// their own admin flag.
func (s *UserService) UpdateUser(id, callerID string, name, email string, isAdmin *bool) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if s.mainAdmins[user.Email] {
		return nil, fmt.Errorf("cannot edit a main admin")
	}
	if isAdmin != nil && user.ID == callerID && user.IsAdmin && !*isAdmin {
		return nil, fmt.Errorf("cannot remove your own admin privileges")
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if isAdmin != nil {
		user.IsAdmin = *isAdmin
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user. Main admins and the caller's own account are
// protected.
func (s *UserService) DeleteUser(id, callerID string) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}

	if s.mainAdmins[user.Email] {
		return fmt.Errorf("cannot delete a main admin")
	}
	if user.ID == callerID {
		return fmt.Errorf("cannot delete your own admin account")
	}

	return s.userRepo.Delete(id)
}
