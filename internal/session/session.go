package session

import (
	"sync"

	"flashbot/internal/domain"
)

// State identifies the dialogue step expected from a chat
type State string

const (
	StateIdle                State = "idle"
	StateAwaitingWord        State = "awaiting_word"
	StateAwaitingTranslation State = "awaiting_translation"
	StateAwaitingDeletion    State = "awaiting_deletion"
)

// Session holds the transient per-chat quiz state: the presented card,
// the dialogue step and the buffer of a half-entered word pair
type Session struct {
	State       State
	Card        *domain.Card
	PendingWord string
}

// Store is an in-memory session store keyed by chat id.
// Sessions never leak across chats.
type Store struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[int64]*Session)}
}

// Get returns a copy of the chat's session, or an idle zero session
// if the chat has none
func (s *Store) Get(chatID int64) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sess, ok := s.sessions[chatID]; ok {
		return *sess
	}
	return Session{State: StateIdle}
}

// SetState moves the chat to a new dialogue step
func (s *Store) SetState(chatID int64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.get(chatID).State = state
}

// SetCard replaces the presented card. Presenting a card ends any
// in-progress flow, so the state resets to idle and the buffer clears.
func (s *Store) SetCard(chatID int64, card *domain.Card) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.get(chatID)
	sess.Card = card
	sess.State = StateIdle
	sess.PendingWord = ""
}

// SetPendingWord buffers the first half of a new word pair
func (s *Store) SetPendingWord(chatID int64, word string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.get(chatID).PendingWord = word
}

// Clear removes the chat's session entirely
func (s *Store) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

// get returns the live session for mutation, creating it if needed.
// Callers must hold the write lock.
func (s *Store) get(chatID int64) *Session {
	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &Session{State: StateIdle}
		s.sessions[chatID] = sess
	}
	return sess
}
