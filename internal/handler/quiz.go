package handler

import (
	"errors"
	"fmt"

	"flashbot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// presentCard picks the next card for the chat, stores it in the
// session and sends the translation prompt with the option keyboard
func (h *Handler) presentCard(c tele.Context) error {
	chatID := c.Sender().ID

	user, err := h.users.GetByChatID(chatID)
	if errors.Is(err, domain.ErrUnregistered) {
		return c.Send(msgPressStart)
	}
	if err != nil {
		h.logger.Error("Failed to resolve user", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(msgInternalError)
	}

	card, options, err := h.quiz.NextCard(user.ID)
	switch {
	case errors.Is(err, domain.ErrNoWords):
		h.sessions.Clear(chatID)
		return c.Send("Слов для изучения нет. Добавьте новые слова командой /start.")
	case errors.Is(err, domain.ErrSmallPool):
		h.sessions.Clear(chatID)
		return c.Send("Слишком мало слов для викторины. Добавьте ещё хотя бы несколько слов.")
	case err != nil:
		h.logger.Error("Failed to pick next card", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(msgInternalError)
	}

	h.sessions.SetCard(chatID, card)

	return c.Send(
		fmt.Sprintf("Выберите перевод: 🇷🇺 %s", card.Translation),
		quizMarkup(options),
	)
}

// handleAnswer compares the user's text to the current card. A correct
// answer is recorded and a new card follows; a wrong one reveals the
// expected translation and keeps the card.
func (h *Handler) handleAnswer(c tele.Context, text string) error {
	chatID := c.Sender().ID

	sess := h.sessions.Get(chatID)
	if sess.Card == nil {
		return h.presentCard(c)
	}

	if !h.quiz.CheckAnswer(sess.Card, text) {
		return c.Send(fmt.Sprintf("Неправильно. Надо: 🇷🇺 %s", sess.Card.Translation))
	}

	user, err := h.users.GetByChatID(chatID)
	if err == nil {
		if err := h.quiz.RecordSolved(user.ID, sess.Card.WordID); err != nil {
			h.logger.Error("Failed to record solved word",
				zap.Error(err),
				zap.Int64("chat_id", chatID),
				zap.Int("word_id", sess.Card.WordID),
			)
		}
	} else if !errors.Is(err, domain.ErrUnregistered) {
		h.logger.Error("Failed to resolve user", zap.Error(err), zap.Int64("chat_id", chatID))
	}

	if err := c.Send("Правильно! 🎉"); err != nil {
		return err
	}

	return h.presentCard(c)
}
