package handler

import (
	"strings"

	"flashbot/internal/session"

	tele "gopkg.in/telebot.v3"
)

// handleText routes every plain text message by the chat's current
// dialogue state. In idle state the control buttons are checked first;
// anything else is treated as a quiz answer.
func (h *Handler) handleText(c tele.Context) error {
	chatID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Commands are registered separately; ignore unknown ones
	if strings.HasPrefix(text, "/") {
		return nil
	}

	sess := h.sessions.Get(chatID)

	switch sess.State {
	case session.StateAwaitingWord:
		h.sessions.SetPendingWord(chatID, text)
		h.sessions.SetState(chatID, session.StateAwaitingTranslation)
		return c.Send("Введите перевод (русский):")

	case session.StateAwaitingTranslation:
		return h.finishAddWord(c, sess.PendingWord, text)

	case session.StateAwaitingDeletion:
		return h.finishDeleteWord(c, text)

	default:
		switch text {
		case btnAdd:
			return h.startAddWord(c)
		case btnDelete:
			return h.startDeleteWord(c)
		case btnNext:
			return h.presentCard(c)
		default:
			return h.handleAnswer(c, text)
		}
	}
}
