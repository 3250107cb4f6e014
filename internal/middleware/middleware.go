package middleware

import (
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const msgInternalError = "Произошла ошибка. Попробуйте позже."

// Recover isolates every update: panics and handler errors are logged
// and turned into an apology message, so one failing chat interaction
// never crashes the process or affects another chat
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in handler",
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()),
						zap.Int64("chat_id", senderID(c)),
					)
					_ = c.Send(msgInternalError)
				}
			}()

			if err := next(c); err != nil {
				logger.Error("Handler failed",
					zap.Error(err),
					zap.Int64("chat_id", senderID(c)),
				)
				_ = c.Send(msgInternalError)
			}
			return nil
		}
	}
}

// Logging writes one line per handled update
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			start := time.Now()
			err := next(c)

			logger.Debug("Update handled",
				zap.Int64("chat_id", senderID(c)),
				zap.String("text", truncate(c.Text(), 64)),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			return err
		}
	}
}

func senderID(c tele.Context) int64 {
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
