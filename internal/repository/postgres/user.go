package postgres

import (
	"database/sql"

	"flashbot/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Register creates the user if not present; an existing row is kept as is
func (r *UserRepo) Register(chatID int64, username string) error {
	query := `
		INSERT INTO users (chat_id, username)
		VALUES ($1, $2)
		ON CONFLICT (chat_id) DO NOTHING
	`
	_, err := r.db.Exec(query, chatID, username)
	return err
}

// GetByChatID returns the user for a chat identity.
// Returns domain.ErrUnregistered if the user never pressed /start.
func (r *UserRepo) GetByChatID(chatID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, chat_id, username, created_at FROM users WHERE chat_id = $1`
	err := r.db.QueryRow(query, chatID).Scan(&u.ID, &u.ChatID, &u.Username, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, domain.ErrUnregistered
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}
