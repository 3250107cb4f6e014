package service

import (
	"fmt"

	"flashbot/internal/domain"
	"flashbot/internal/repository"
)

// WordService handles the user's personal vocabulary
type WordService struct {
	wordRepo repository.WordRepository
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository) *WordService {
	return &WordService{wordRepo: wordRepo}
}

// AddWord inserts a personal word pair and returns the new total of
// visible words. The word and the translation must each be unique
// within the user's visible vocabulary (exact, case-sensitive match);
// a collision on either field fails with domain.ErrDuplicateWord.
func (s *WordService) AddWord(userID int, word, translation string) (int, error) {
	if word == "" || translation == "" {
		return 0, fmt.Errorf("word and translation cannot be empty")
	}

	duplicate, err := s.wordRepo.HasDuplicate(userID, word, translation)
	if err != nil {
		return 0, err
	}
	if duplicate {
		return 0, domain.ErrDuplicateWord
	}

	if err := s.wordRepo.SaveWord(userID, word, translation); err != nil {
		return 0, err
	}

	return s.wordRepo.CountVisible(userID)
}

// DeleteWord removes the user's own word by exact text.
// Fails with domain.ErrWordNotFound when the word doesn't exist or
// belongs to the global preset.
func (s *WordService) DeleteWord(userID int, word string) error {
	deleted, err := s.wordRepo.DeleteOwnWord(userID, word)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrWordNotFound
	}
	return nil
}

// OwnWords lists the words the user added themselves
func (s *WordService) OwnWords(userID int) ([]domain.Word, error) {
	return s.wordRepo.OwnWords(userID)
}
