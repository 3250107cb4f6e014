package repository

import (
	"flashbot/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	Register(chatID int64, username string) error
	GetByChatID(chatID int64) (*domain.User, error)
}

// WordRepository defines word data operations
type WordRepository interface {
	VisibleWords(userID int) ([]domain.Word, error)
	OwnWords(userID int) ([]domain.Word, error)
	SaveWord(userID int, word, translation string) error
	DeleteOwnWord(userID int, word string) (bool, error)
	HasDuplicate(userID int, word, translation string) (bool, error)
	CountVisible(userID int) (int, error)
	SeedDefaults(pairs []domain.WordPair) error
}

// ProgressRepository defines per-user solved-word operations
type ProgressRepository interface {
	SolvedWordIDs(userID int) ([]int, error)
	MarkSolved(userID, wordID int) error
	ResetProgress(userID int) error
}
