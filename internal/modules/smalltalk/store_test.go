// README: Small-talk quota store tests (lazy daily reset and budget boundary).
package smalltalk

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestUseCallCrossDayReset verifies that a spent budget from a previous day
// is reset and the call succeeds.
func TestUseCallCrossDayReset(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()

	if _, err := db.Exec(ctx, "INSERT INTO smalltalk_usage VALUES (1, 0, '2000-01-01')"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := store.UseCall(ctx); err != nil {
		t.Fatalf("UseCall after cross-day reset: %v", err)
	}

	var remaining int
	if err := db.QueryRow(ctx, "SELECT calls_remaining FROM smalltalk_usage WHERE id = 1").Scan(&remaining); err != nil {
		t.Fatalf("query: %v", err)
	}
	if remaining != DefaultDailyCalls-1 {
		t.Fatalf("expected %d calls remaining, got %d", DefaultDailyCalls-1, remaining)
	}
}

// TestUseCallExhausted verifies that a spent budget for the current day blocks.
func TestUseCallExhausted(t *testing.T) {
	store, db := setupTestStore(t)
	ctx := context.Background()

	today := time.Now().Format("2006-01-02")
	if _, err := db.Exec(ctx, "INSERT INTO smalltalk_usage VALUES (1, 0, $1)", today); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := store.UseCall(ctx); err != ErrQuotaExhausted {
		t.Fatalf("expected ErrQuotaExhausted, got %v", err)
	}
}

// TestUseCallMissingRow verifies the absent-row path: UseCall reports
// exhaustion, EnsureRow initialises, and the retry succeeds.
func TestUseCallMissingRow(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	if err := store.UseCall(ctx); err != ErrQuotaExhausted {
		t.Fatalf("expected ErrQuotaExhausted for missing row, got %v", err)
	}
	if err := store.EnsureRow(ctx); err != nil {
		t.Fatalf("EnsureRow: %v", err)
	}
	if err := store.UseCall(ctx); err != nil {
		t.Fatalf("UseCall after EnsureRow: %v", err)
	}
}

// setupTestStore creates a real postgres-backed Store for integration tests.
// It skips the test when ACTIVABOT_TEST_DSN is not set.
func setupTestStore(t *testing.T) (*Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("ACTIVABOT_TEST_DSN")
	if dsn == "" {
		t.Skip("ACTIVABOT_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS smalltalk_usage (
			id INT PRIMARY KEY,
			calls_remaining INT NOT NULL,
			day TEXT NOT NULL
		)
	`); err != nil {
		t.Fatalf("ensure table: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE smalltalk_usage"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return NewStore(db), db
}
