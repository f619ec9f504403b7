// README: smalltalk_usage persistence (daily call budget).
package smalltalk

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles smalltalk_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseCall atomically checks the daily budget and deducts one call.
// The counter resets to DefaultDailyCalls when the stored day is behind today.
// Returns ErrQuotaExhausted when 0 rows are updated (budget spent or row absent).
func (s *Store) UseCall(ctx context.Context) error {
	today := time.Now().Format("2006-01-02")

	tag, err := s.db.Exec(ctx, `
		UPDATE smalltalk_usage SET
			calls_remaining = CASE WHEN day != $1 THEN $2 - 1 ELSE calls_remaining - 1 END,
			day = $1
		WHERE id = 1 AND (day < $1 OR calls_remaining > 0)
	`, today, DefaultDailyCalls)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuotaExhausted
	}
	return nil
}

// EnsureRow inserts the singleton budget row if it does not exist yet.
func (s *Store) EnsureRow(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO smalltalk_usage (id, calls_remaining, day)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO NOTHING
	`, DefaultDailyCalls, time.Now().Format("2006-01-02"))
	return err
}
