package testutil

import (
	"flashbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Register(chatID int64, username string) error {
	args := m.Called(chatID, username)
	return args.Error(0)
}

func (m *MockUserRepository) GetByChatID(chatID int64) (*domain.User, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) VisibleWords(userID int) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) OwnWords(userID int) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) SaveWord(userID int, word, translation string) error {
	args := m.Called(userID, word, translation)
	return args.Error(0)
}

func (m *MockWordRepository) DeleteOwnWord(userID int, word string) (bool, error) {
	args := m.Called(userID, word)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) HasDuplicate(userID int, word, translation string) (bool, error) {
	args := m.Called(userID, word, translation)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) CountVisible(userID int) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) SeedDefaults(pairs []domain.WordPair) error {
	args := m.Called(pairs)
	return args.Error(0)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) SolvedWordIDs(userID int) ([]int, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockProgressRepository) MarkSolved(userID, wordID int) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockProgressRepository) ResetProgress(userID int) error {
	args := m.Called(userID)
	return args.Error(0)
}
