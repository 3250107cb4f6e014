package service

import (
	"testing"

	"flashbot/internal/domain"
	"flashbot/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestUserService_Register(t *testing.T) {
	mockRepo := new(testutil.MockUserRepository)
	mockRepo.On("Register", int64(123), "alice").Return(nil)

	service := NewUserService(mockRepo)

	err := service.Register(123, "alice")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetByChatID(t *testing.T) {
	tests := []struct {
		name          string
		chatID        int64
		mockUser      *domain.User
		mockError     error
		expectedError error
	}{
		{
			name:     "registered user",
			chatID:   123,
			mockUser: testutil.NewTestUser(7, 123, "alice"),
		},
		{
			name:          "unregistered user",
			chatID:        456,
			mockError:     domain.ErrUnregistered,
			expectedError: domain.ErrUnregistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockUserRepository)
			mockRepo.On("GetByChatID", tt.chatID).Return(tt.mockUser, tt.mockError)

			service := NewUserService(mockRepo)

			user, err := service.GetByChatID(tt.chatID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockUser, user)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
