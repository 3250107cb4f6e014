package service

import (
	"math/rand"
	"strings"

	"flashbot/internal/domain"
	"flashbot/internal/repository"

	"go.uber.org/zap"
)

// distractorCount is the number of wrong options shown next to the answer
const distractorCount = 3

// QuizService owns card selection and per-round progress tracking
type QuizService struct {
	wordRepo     repository.WordRepository
	progressRepo repository.ProgressRepository
	logger       *zap.Logger
}

// NewQuizService creates a new quiz service
func NewQuizService(
	wordRepo repository.WordRepository,
	progressRepo repository.ProgressRepository,
	logger *zap.Logger,
) *QuizService {
	return &QuizService{
		wordRepo:     wordRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// NextCard picks a random unsolved word for the user and builds the
// four answer options for it.
//
// When the user has solved every visible word, the round resets: all
// solved records are cleared first and selection runs over the full set.
// Returns domain.ErrNoWords when nothing is visible at all, and
// domain.ErrSmallPool when fewer than four words exist (quizzing is
// blocked rather than degraded to a short option list).
func (s *QuizService) NextCard(userID int) (*domain.Card, []string, error) {
	visible, err := s.wordRepo.VisibleWords(userID)
	if err != nil {
		return nil, nil, err
	}
	if len(visible) == 0 {
		return nil, nil, domain.ErrNoWords
	}

	solved, err := s.solvedSet(userID, visible)
	if err != nil {
		return nil, nil, err
	}

	// Round completed: start over from a clean slate
	if len(solved) >= len(visible) {
		s.logger.Info("Round completed, resetting progress",
			zap.Int("user_id", userID),
			zap.Int("word_count", len(visible)),
		)
		if err := s.progressRepo.ResetProgress(userID); err != nil {
			return nil, nil, err
		}
		solved = map[int]struct{}{}
	}

	pool := make([]domain.Word, 0, len(visible))
	for _, w := range visible {
		if _, ok := solved[w.ID]; !ok {
			pool = append(pool, w)
		}
	}

	pick := pool[rand.Intn(len(pool))]

	options, err := buildOptions(visible, pick)
	if err != nil {
		return nil, nil, err
	}

	card := &domain.Card{
		WordID:      pick.ID,
		Word:        pick.Word,
		Translation: pick.Translation,
	}
	return card, options, nil
}

// solvedSet returns the user's solved word ids restricted to the
// visible set, so stale records for deleted words never inflate the count
func (s *QuizService) solvedSet(userID int, visible []domain.Word) (map[int]struct{}, error) {
	ids, err := s.progressRepo.SolvedWordIDs(userID)
	if err != nil {
		return nil, err
	}

	visibleIDs := make(map[int]struct{}, len(visible))
	for _, w := range visible {
		visibleIDs[w.ID] = struct{}{}
	}

	solved := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := visibleIDs[id]; ok {
			solved[id] = struct{}{}
		}
	}
	return solved, nil
}

// buildOptions samples three distractors without replacement from the
// visible set minus the correct word, appends the answer and shuffles.
// All four options are guaranteed distinct.
func buildOptions(visible []domain.Word, correct domain.Word) ([]string, error) {
	alternatives := make([]string, 0, len(visible))
	for _, w := range visible {
		if w.ID != correct.ID {
			alternatives = append(alternatives, w.Word)
		}
	}

	if len(alternatives) < distractorCount {
		return nil, domain.ErrSmallPool
	}

	rand.Shuffle(len(alternatives), func(i, j int) {
		alternatives[i], alternatives[j] = alternatives[j], alternatives[i]
	})

	options := append(alternatives[:distractorCount:distractorCount], correct.Word)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}

// CheckAnswer compares the user's input to the card's word,
// case-insensitively
func (s *QuizService) CheckAnswer(card *domain.Card, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), card.Word)
}

// RecordSolved marks the card's word solved for the user. Idempotent.
func (s *QuizService) RecordSolved(userID, wordID int) error {
	return s.progressRepo.MarkSolved(userID, wordID)
}
