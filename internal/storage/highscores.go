package storage

import (
	"fmt"

	"github.com/vovakirdan/paddle-arcade/internal/score"
)

// LoadHighScores returns the high-score table of a pack. A pack without a
// saved table gets the default one, which is persisted right away.
func (s *Store) LoadHighScores(pack string) (*score.Table, error) {
	rows, err := s.db.Query(
		`SELECT name, score FROM high_scores WHERE pack = ? ORDER BY rank`,
		pack,
	)
	if err != nil {
		return score.DefaultTable(), fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []score.Entry
	for rows.Next() {
		var e score.Entry
		if err := rows.Scan(&e.Name, &e.Score); err != nil {
			return score.DefaultTable(), fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return score.DefaultTable(), fmt.Errorf("storage: row iteration error: %w", err)
	}

	if len(entries) == 0 {
		t := score.DefaultTable()
		if err := s.SaveHighScores(pack, t); err != nil {
			return t, err
		}
		return t, nil
	}
	return score.NewTable(entries), nil
}

// SaveHighScores overwrites the stored table of a pack.
func (s *Store) SaveHighScores(pack string, t *score.Table) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM high_scores WHERE pack = ?", pack); err != nil {
		return fmt.Errorf("storage: cannot clear high scores: %w", err)
	}
	for i, e := range t.Entries() {
		if _, err := tx.Exec(
			"INSERT INTO high_scores (pack, rank, name, score) VALUES (?, ?, ?, ?)",
			pack, i, e.Name, e.Score,
		); err != nil {
			return fmt.Errorf("storage: cannot save high score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit high scores: %w", err)
	}
	return nil
}
