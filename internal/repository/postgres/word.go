package postgres

import (
	"database/sql"

	"flashbot/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// VisibleWords returns the words a user can be quizzed on:
// the global preset words plus the user's own entries
func (r *WordRepo) VisibleWords(userID int) ([]domain.Word, error) {
	query := `
		SELECT id, word, translation, added_by
		FROM words
		WHERE added_by IS NULL OR added_by = $1
		ORDER BY id
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWords(rows)
}

// OwnWords returns only the words added by the user
func (r *WordRepo) OwnWords(userID int) ([]domain.Word, error) {
	query := `
		SELECT id, word, translation, added_by
		FROM words
		WHERE added_by = $1
		ORDER BY id
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanWords(rows)
}

func scanWords(rows *sql.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		var addedBy sql.NullInt64
		if err := rows.Scan(&w.ID, &w.Word, &w.Translation, &addedBy); err != nil {
			return nil, err
		}
		if addedBy.Valid {
			owner := int(addedBy.Int64)
			w.AddedBy = &owner
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// SaveWord inserts a word-translation pair owned by the user
func (r *WordRepo) SaveWord(userID int, word, translation string) error {
	query := `
		INSERT INTO words (word, translation, added_by)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(query, word, translation, userID)
	return err
}

// DeleteOwnWord removes a word by exact text, only if the user owns it.
// Global words are never deleted this way.
func (r *WordRepo) DeleteOwnWord(userID int, word string) (bool, error) {
	query := `DELETE FROM words WHERE word = $1 AND added_by = $2`

	res, err := r.db.Exec(query, word, userID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// HasDuplicate reports whether any visible word already uses the exact
// word text or the exact translation text
func (r *WordRepo) HasDuplicate(userID int, word, translation string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM words
			WHERE (word = $2 OR translation = $3)
				AND (added_by IS NULL OR added_by = $1)
		)
	`

	var exists bool
	err := r.db.QueryRow(query, userID, word, translation).Scan(&exists)
	return exists, err
}

// CountVisible returns the number of words visible to the user
func (r *WordRepo) CountVisible(userID int) (int, error) {
	query := `SELECT COUNT(*) FROM words WHERE added_by IS NULL OR added_by = $1`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// SeedDefaults inserts the preset global pairs, but only when the words
// table is completely empty. Runs in one transaction so a crashed start
// never leaves a partial seed.
func (r *WordRepo) SeedDefaults(pairs []domain.WordPair) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM words`).Scan(&count); err != nil {
		return err
	}

	if count > 0 {
		return tx.Commit()
	}

	for _, p := range pairs {
		if _, err := tx.Exec(
			`INSERT INTO words (word, translation, added_by) VALUES ($1, $2, NULL)`,
			p.Word, p.Translation,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
