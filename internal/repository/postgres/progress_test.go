package postgres

import (
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestProgressRepo_SolvedWordIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProgressRepo(db)

	rows := sqlmock.NewRows([]string{"word_id"}).
		AddRow(1).
		AddRow(3).
		AddRow(5)

	mock.ExpectQuery("SELECT word_id FROM solved WHERE user_id = \\$1").
		WithArgs(7).
		WillReturnRows(rows)

	ids, err := repo.SolvedWordIDs(7)

	assert.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepo_SolvedWordIDs_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProgressRepo(db)

	mock.ExpectQuery("SELECT word_id FROM solved WHERE user_id = \\$1").
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"word_id"}))

	ids, err := repo.SolvedWordIDs(7)

	assert.NoError(t, err)
	assert.Empty(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepo_SolvedWordIDs_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProgressRepo(db)

	mock.ExpectQuery("SELECT word_id FROM solved WHERE user_id = \\$1").
		WithArgs(7).
		WillReturnError(fmt.Errorf("query error"))

	ids, err := repo.SolvedWordIDs(7)

	assert.Error(t, err)
	assert.Nil(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepo_MarkSolved(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProgressRepo(db)

	mock.ExpectExec("INSERT INTO solved").
		WithArgs(7, 3).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.MarkSolved(7, 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepo_MarkSolved_AlreadySolved(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProgressRepo(db)

	// ON CONFLICT DO NOTHING: zero rows affected is still a success
	mock.ExpectExec("INSERT INTO solved").
		WithArgs(7, 3).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.MarkSolved(7, 3)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProgressRepo_ResetProgress(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewProgressRepo(db)

	mock.ExpectExec("DELETE FROM solved WHERE user_id = \\$1").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 10))

	err = repo.ResetProgress(7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
