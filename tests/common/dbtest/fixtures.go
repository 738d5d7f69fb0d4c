//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO assets (symbol, name, claim_amount, cooldown_seconds, pool_ref, active) VALUES
		    ('SHIB',  'Shiba Inu',  1000,  86400, 'pool-shib',  true),
		    ('BONE',  'Bone',       5,     28800, 'pool-bone',  true),
		    ('TREAT', 'Treat',      25,    43200, 'pool-treat', true)
		ON CONFLICT (symbol) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

func CreateTestClaim(t *testing.T, db DBLike, wallet, asset, amount, status string, transferRef *string, createdAt time.Time) uuid.UUID {
	t.Helper()

	claimID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO claims (id, wallet, asset, amount, transfer_ref, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $7)`,
		claimID, wallet, asset, amount, transferRef, status, createdAt)
	require.NoError(t, err)

	return claimID
}

func SetCooldown(t *testing.T, db DBLike, wallet, asset string, lastClaimAt time.Time) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO cooldowns (wallet, asset, last_claim_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (wallet, asset) DO UPDATE SET last_claim_at = EXCLUDED.last_claim_at`,
		wallet, asset, lastClaimAt)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
