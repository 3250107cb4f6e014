package service

import (
	"flashbot/internal/domain"
	"flashbot/internal/repository"
)

// UserService handles user registration and lookup
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates the user record if it doesn't exist yet
func (s *UserService) Register(chatID int64, username string) error {
	return s.userRepo.Register(chatID, username)
}

// GetByChatID resolves the chat identity to a registered user.
// Returns domain.ErrUnregistered for unknown chats.
func (s *UserService) GetByChatID(chatID int64) (*domain.User, error) {
	return s.userRepo.GetByChatID(chatID)
}
