package session

import (
	"testing"

	"flashbot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStore_Get_DefaultsToIdle(t *testing.T) {
	store := NewStore()

	sess := store.Get(123)

	assert.Equal(t, StateIdle, sess.State)
	assert.Nil(t, sess.Card)
	assert.Empty(t, sess.PendingWord)
}

func TestStore_SetState(t *testing.T) {
	store := NewStore()

	store.SetState(123, StateAwaitingWord)

	assert.Equal(t, StateAwaitingWord, store.Get(123).State)
}

func TestStore_SetPendingWord(t *testing.T) {
	store := NewStore()

	store.SetState(123, StateAwaitingTranslation)
	store.SetPendingWord(123, "Cat")

	sess := store.Get(123)
	assert.Equal(t, StateAwaitingTranslation, sess.State)
	assert.Equal(t, "Cat", sess.PendingWord)
}

func TestStore_SetCard_EndsFlow(t *testing.T) {
	store := NewStore()

	store.SetState(123, StateAwaitingTranslation)
	store.SetPendingWord(123, "Cat")

	card := &domain.Card{WordID: 1, Word: "Red", Translation: "Красный"}
	store.SetCard(123, card)

	sess := store.Get(123)
	assert.Equal(t, StateIdle, sess.State)
	assert.Empty(t, sess.PendingWord)
	assert.Equal(t, card, sess.Card)
}

func TestStore_Clear(t *testing.T) {
	store := NewStore()

	store.SetCard(123, &domain.Card{WordID: 1, Word: "Red", Translation: "Красный"})
	store.Clear(123)

	sess := store.Get(123)
	assert.Equal(t, StateIdle, sess.State)
	assert.Nil(t, sess.Card)
}

func TestStore_NoCrossChatLeak(t *testing.T) {
	store := NewStore()

	store.SetCard(123, &domain.Card{WordID: 1, Word: "Red", Translation: "Красный"})
	store.SetState(456, StateAwaitingDeletion)

	assert.Nil(t, store.Get(456).Card)
	assert.Equal(t, StateIdle, store.Get(123).State)

	store.Clear(123)
	assert.Equal(t, StateAwaitingDeletion, store.Get(456).State)
}
