package postgres

import (
	"fmt"
	"testing"
	"time"

	"flashbot/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_Register(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	chatID := int64(123)
	username := "alice"

	mock.ExpectExec("INSERT INTO users").
		WithArgs(chatID, username).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Register(chatID, username)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByChatID(t *testing.T) {
	tests := []struct {
		name          string
		chatID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedError error
		anyError      bool
	}{
		{
			name:   "user found",
			chatID: 123,
			mockRows: sqlmock.NewRows([]string{"id", "chat_id", "username", "created_at"}).
				AddRow(7, 123, "alice", time.Now()),
		},
		{
			name:          "user not registered",
			chatID:        456,
			expectedError: domain.ErrUnregistered,
		},
		{
			name:      "query error",
			chatID:    123,
			mockError: fmt.Errorf("connection refused"),
			anyError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT id, chat_id, username, created_at FROM users WHERE chat_id = \\$1"

			switch {
			case tt.mockError != nil:
				mock.ExpectQuery(query).WithArgs(tt.chatID).WillReturnError(tt.mockError)
			case tt.mockRows != nil:
				mock.ExpectQuery(query).WithArgs(tt.chatID).WillReturnRows(tt.mockRows)
			default:
				mock.ExpectQuery(query).WithArgs(tt.chatID).
					WillReturnRows(sqlmock.NewRows([]string{"id", "chat_id", "username", "created_at"}))
			}

			user, err := repo.GetByChatID(tt.chatID)

			switch {
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			case tt.anyError:
				assert.Error(t, err)
				assert.Nil(t, user)
			default:
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.chatID, user.ChatID)
				assert.Equal(t, "alice", user.Username)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
