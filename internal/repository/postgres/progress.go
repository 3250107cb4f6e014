package postgres

import (
	"database/sql"
)

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// SolvedWordIDs returns the ids of words the user solved in the current round
func (r *ProgressRepo) SolvedWordIDs(userID int) ([]int, error) {
	query := `SELECT word_id FROM solved WHERE user_id = $1`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// MarkSolved records a correct answer. Idempotent: marking the same
// word twice keeps exactly one record.
func (r *ProgressRepo) MarkSolved(userID, wordID int) error {
	query := `
		INSERT INTO solved (user_id, word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, wordID)
	return err
}

// ResetProgress clears all solved records for the user, starting a new round
func (r *ProgressRepo) ResetProgress(userID int) error {
	query := `DELETE FROM solved WHERE user_id = $1`
	_, err := r.db.Exec(query, userID)
	return err
}
