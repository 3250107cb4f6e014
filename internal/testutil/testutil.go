package testutil

import (
	"time"

	"flashbot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id int, chatID int64, username string) *domain.User {
	return &domain.User{
		ID:        id,
		ChatID:    chatID,
		Username:  username,
		CreatedAt: time.Now(),
	}
}

// NewGlobalWord creates a test word from the shared preset
func NewGlobalWord(id int, word, translation string) domain.Word {
	return domain.Word{
		ID:          id,
		Word:        word,
		Translation: translation,
	}
}

// NewOwnWord creates a test word owned by a user
func NewOwnWord(id, ownerID int, word, translation string) domain.Word {
	return domain.Word{
		ID:          id,
		Word:        word,
		Translation: translation,
		AddedBy:     &ownerID,
	}
}
