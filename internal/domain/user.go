package domain

import "time"

// User represents a bot user, registered lazily on first /start
type User struct {
	ID        int
	ChatID    int64
	Username  string
	CreatedAt time.Time
}
