package handler

import (
	"errors"
	"fmt"

	"flashbot/internal/domain"
	"flashbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// startAddWord begins the two-step add-word flow
func (h *Handler) startAddWord(c tele.Context) error {
	h.sessions.SetState(c.Sender().ID, session.StateAwaitingWord)
	return c.Send("Введите слово (английский):")
}

// finishAddWord completes the add-word flow with the buffered word and
// the just-entered translation, reports the outcome and presents a card
func (h *Handler) finishAddWord(c tele.Context, word, translation string) error {
	chatID := c.Sender().ID
	h.sessions.SetState(chatID, session.StateIdle)

	// Stale buffer: the word step never happened for this session
	if word == "" {
		if err := c.Send("Ошибка, попробуйте снова через кнопку «Добавить слово»."); err != nil {
			return err
		}
		return h.presentCard(c)
	}

	user, err := h.users.GetByChatID(chatID)
	if errors.Is(err, domain.ErrUnregistered) {
		return c.Send(msgPressStart)
	}
	if err != nil {
		h.logger.Error("Failed to resolve user", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(msgInternalError)
	}

	total, err := h.words.AddWord(user.ID, word, translation)
	switch {
	case errors.Is(err, domain.ErrDuplicateWord):
		if err := c.Send(fmt.Sprintf("Слово '%s' или перевод '%s' уже есть.", word, translation)); err != nil {
			return err
		}
		return h.presentCard(c)
	case err != nil:
		h.logger.Error("Failed to add word",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("word", word),
		)
		return c.Send("Не удалось сохранить слово. Попробуйте ещё раз.")
	}

	h.logger.Info("Word added",
		zap.Int64("chat_id", chatID),
		zap.String("word", word),
		zap.Int("total_words", total),
	)

	if err := c.Send(fmt.Sprintf("Слово '%s' → '%s' добавлено. Всего слов: %d", word, translation, total)); err != nil {
		return err
	}
	return h.presentCard(c)
}

// startDeleteWord lists the user's own words and prompts for the exact
// text to delete. Users without own words stay idle.
func (h *Handler) startDeleteWord(c tele.Context) error {
	chatID := c.Sender().ID

	user, err := h.users.GetByChatID(chatID)
	if errors.Is(err, domain.ErrUnregistered) {
		return c.Send(msgPressStart)
	}
	if err != nil {
		h.logger.Error("Failed to resolve user", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(msgInternalError)
	}

	own, err := h.words.OwnWords(user.ID)
	if err != nil {
		h.logger.Error("Failed to list own words", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(msgInternalError)
	}

	if len(own) == 0 {
		return c.Send("У вас нет добавленных слов.")
	}

	h.sessions.SetState(chatID, session.StateAwaitingDeletion)
	return c.Send(fmt.Sprintf(
		"Ваши слова для удаления:\n%s\n\nВведите точное слово:",
		formatOwnWords(own),
	))
}

// finishDeleteWord deletes the named word if the user owns it,
// reports the outcome and presents a card
func (h *Handler) finishDeleteWord(c tele.Context, word string) error {
	chatID := c.Sender().ID
	h.sessions.SetState(chatID, session.StateIdle)

	user, err := h.users.GetByChatID(chatID)
	if errors.Is(err, domain.ErrUnregistered) {
		return c.Send(msgPressStart)
	}
	if err != nil {
		h.logger.Error("Failed to resolve user", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(msgInternalError)
	}

	err = h.words.DeleteWord(user.ID, word)
	switch {
	case errors.Is(err, domain.ErrWordNotFound):
		if err := c.Send(fmt.Sprintf("Слово '%s' не найдено у вас.", word)); err != nil {
			return err
		}
	case err != nil:
		h.logger.Error("Failed to delete word",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
			zap.String("word", word),
		)
		return c.Send(msgInternalError)
	default:
		h.logger.Info("Word deleted", zap.Int64("chat_id", chatID), zap.String("word", word))
		if err := c.Send(fmt.Sprintf("Слово '%s' удалено.", word)); err != nil {
			return err
		}
	}

	return h.presentCard(c)
}
