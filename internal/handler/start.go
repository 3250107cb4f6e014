package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start and /cards: greets, registers the user
// if new, drops any previous session and presents a fresh card
func (h *Handler) handleStart(c tele.Context) error {
	chatID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("chat_id", chatID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.users.Register(chatID, c.Sender().Username); err != nil {
		h.logger.Error("Failed to register user", zap.Error(err), zap.Int64("chat_id", chatID))
		return c.Send(msgInternalError)
	}

	h.sessions.Clear(chatID)

	if err := c.Send("Привет! Давай учить английский. 😊"); err != nil {
		return err
	}

	return h.presentCard(c)
}
