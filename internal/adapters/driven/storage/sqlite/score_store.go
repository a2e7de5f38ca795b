package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/custodia-labs/oddart/internal/core/domain"
	"github.com/custodia-labs/oddart/internal/core/ports/driven"
)

// scoreStore implements driven.ScoreStore.
type scoreStore struct {
	store *Store
}

var _ driven.ScoreStore = (*scoreStore)(nil)

// Record stores an answered round.
func (s *scoreStore) Record(ctx context.Context, outcome domain.Outcome) error {
	answeredAt := outcome.AnsweredAt
	if answeredAt.IsZero() {
		answeredAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO outcomes (round_id, choice, correct, correct_artist, incorrect_artist, answered_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		outcome.RoundID,
		outcome.Choice,
		boolToInt(outcome.Correct),
		outcome.CorrectArtist,
		outcome.IncorrectArtist,
		answeredAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording outcome: %w", err)
	}
	return nil
}

// Totals returns the running score.
func (s *scoreStore) Totals(ctx context.Context) (domain.Score, error) {
	var score domain.Score
	row := s.store.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(correct), 0), COALESCE(SUM(1 - correct), 0)
		FROM outcomes
	`)
	if err := row.Scan(&score.Correct, &score.Incorrect); err != nil {
		return domain.Score{}, fmt.Errorf("querying totals: %w", err)
	}
	return score, nil
}

// Recent returns up to limit outcomes, newest first.
// A non-positive limit returns everything.
func (s *scoreStore) Recent(ctx context.Context, limit int) ([]domain.Outcome, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT round_id, choice, correct, correct_artist, incorrect_artist, answered_at
		FROM outcomes
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying outcomes: %w", err)
	}
	defer rows.Close()

	outcomes := []domain.Outcome{}
	for rows.Next() {
		outcome, err := scanOutcome(rows)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, *outcome)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outcomes: %w", err)
	}

	return outcomes, nil
}

// Reset clears all history.
func (s *scoreStore) Reset(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM outcomes"); err != nil {
		return fmt.Errorf("clearing outcomes: %w", err)
	}
	return nil
}

// scanOutcome scans a single outcome row.
func scanOutcome(rows *sql.Rows) (*domain.Outcome, error) {
	var (
		outcome    domain.Outcome
		correct    int
		answeredAt string
	)
	err := rows.Scan(
		&outcome.RoundID,
		&outcome.Choice,
		&correct,
		&outcome.CorrectArtist,
		&outcome.IncorrectArtist,
		&answeredAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning outcome: %w", err)
	}

	outcome.Correct = correct == 1
	if t, err := time.Parse(time.RFC3339Nano, answeredAt); err == nil {
		outcome.AnsweredAt = t
	}
	return &outcome, nil
}
