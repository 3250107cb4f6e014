package handler

import (
	"strings"

	"flashbot/internal/domain"
	"flashbot/internal/service"
	"flashbot/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Reply keyboard control buttons
const (
	btnNext   = "Дальше ⏭"
	btnAdd    = "Добавить слово ➕"
	btnDelete = "Удалить слово 🔙"
)

const (
	msgInternalError = "Произошла ошибка. Попробуйте позже."
	msgPressStart    = "Сначала нажмите /start"
)

// Handler manages all bot interactions
type Handler struct {
	bot      *tele.Bot
	users    *service.UserService
	words    *service.WordService
	quiz     *service.QuizService
	sessions *session.Store
	logger   *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	users *service.UserService,
	words *service.WordService,
	quiz *service.QuizService,
	sessions *session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:      bot,
		users:    users,
		words:    words,
		quiz:     quiz,
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/cards", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
}

// quizMarkup builds the reply keyboard for a card: one row per answer
// option, then the Next row, then the Add/Delete controls
func quizMarkup(options []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	rows := make([]tele.Row, 0, len(options)+2)
	for _, opt := range options {
		rows = append(rows, markup.Row(markup.Text(opt)))
	}
	rows = append(rows, markup.Row(markup.Text(btnNext)))
	rows = append(rows, markup.Row(markup.Text(btnAdd), markup.Text(btnDelete)))

	markup.Reply(rows...)
	return markup
}

// formatOwnWords joins the user's words for the deletion prompt
func formatOwnWords(words []domain.Word) string {
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Word
	}
	return strings.Join(texts, ", ")
}
