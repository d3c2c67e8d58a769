package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Attempt is one resolved try at a level.
type Attempt struct {
	LevelID   string
	Number    int
	Won       bool
	MarksUsed int
}

// LevelStat aggregates the attempts at one level.
type LevelStat struct {
	LevelID    string
	Number     int
	Attempts   int
	Wins       int
	BestMarks  int // fewest marks in a winning attempt, -1 if never won
	LastPlayed time.Time
}

// RecordAttempt stores one attempt for the given game.
func (s *Store) RecordAttempt(gameID string, a Attempt) (int64, error) {
	won := 0
	if a.Won {
		won = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO level_attempts (game_id, level_id, level_number, won, marks_used)
		 VALUES (?, ?, ?, ?, ?)`,
		gameID, a.LevelID, a.Number, won, a.MarksUsed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// LevelStats returns per-level statistics for the given game, ordered by
// level number.
func (s *Store) LevelStats(gameID string) ([]LevelStat, error) {
	rows, err := s.db.Query(
		`SELECT level_id, MIN(level_number), COUNT(*), SUM(won),
		        MIN(CASE WHEN won = 1 THEN marks_used END), MAX(created_at)
		 FROM level_attempts
		 WHERE game_id = ?
		 GROUP BY level_id
		 ORDER BY MIN(level_number), level_id`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var out []LevelStat
	for rows.Next() {
		var ls LevelStat
		var best sql.NullInt64
		var lastPlayed any
		if err := rows.Scan(&ls.LevelID, &ls.Number, &ls.Attempts, &ls.Wins, &best, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan level stats row: %w", err)
		}

		ls.BestMarks = -1
		if best.Valid {
			ls.BestMarks = int(best.Int64)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		out = append(out, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// SaveProgress records that the given level number was cleared. Progress
// never moves backwards.
func (s *Store) SaveProgress(gameID string, level int) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (game_id, best_level) VALUES (?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
		   best_level = MAX(best_level, excluded.best_level),
		   updated_at = CURRENT_TIMESTAMP`,
		gameID, level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// Progress returns the highest cleared level number, or 0 if none.
func (s *Store) Progress(gameID string) (int, error) {
	var level int
	err := s.db.QueryRow(
		"SELECT best_level FROM progress WHERE game_id = ?",
		gameID,
	).Scan(&level)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return level, nil
}
