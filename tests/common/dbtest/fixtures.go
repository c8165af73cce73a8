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

// Fixed IDs for the reference rows every e2e test can rely on.
var (
	FixtureBusinessID             = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	FixtureUnconfiguredBusinessID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	FixtureServiceID              = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	FixtureStaffID                = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	FixturePackageID              = uuid.MustParse("55555555-5555-5555-5555-555555555555")
)

// Mon-Sat, 09:00-18:00, 30-minute grid.
const fixtureSettings = `{"startTime": "09:00", "endTime": "18:00", "timeInterval": 30, "workingDays": [1, 2, 3, 4, 5, 6]}`

func CreateTestCustomer(t *testing.T, db DBLike, businessID uuid.UUID, name, email string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO customers (id, business_id, name, email) VALUES ($1, $2, $3, $4) ON CONFLICT (business_id, lower(email)) DO NOTHING",
		customerID, businessID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE business_id = $1 AND lower(email) = lower($2)", businessID, email).Scan(&customerID)
	}

	return customerID
}

func CreateActivePurchase(t *testing.T, db DBLike, businessID, customerID uuid.UUID, totalSessions int, expiry *time.Time) uuid.UUID {
	t.Helper()

	purchaseID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO package_purchases
		    (id, business_id, package_id, customer_id, total_sessions, used_sessions, remaining_sessions,
		     price_cents, status, payment_status, purchased_at, expiry_date)
		VALUES ($1, $2, $3, $4, $5, 0, $5, 45000, 'ACTIVE', 'PAID', now(), $6)`,
		purchaseID, businessID, FixturePackageID, customerID, totalSessions, expiry)
	require.NoError(t, err)

	return purchaseID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO businesses (id, name, staff_module_enabled, settings) VALUES
		    ($1, 'Bloom Studio', true, $2::jsonb),
		    ($3, 'Fresh Start Salon', false, NULL)
		ON CONFLICT (id) DO NOTHING;
	`, FixtureBusinessID, fixtureSettings, FixtureUnconfiguredBusinessID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO services (id, business_id, name, duration_min, price_cents) VALUES
		    ($1, $2, 'Deep Tissue Massage', 60, 9000)
		ON CONFLICT (id) DO NOTHING;
	`, FixtureServiceID, FixtureBusinessID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO staff (id, business_id, name) VALUES
		    ($1, $2, 'Alex Rivera')
		ON CONFLICT (id) DO NOTHING;
	`, FixtureStaffID, FixtureBusinessID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO packages (id, business_id, name, total_sessions, validity_days, price_cents) VALUES
		    ($1, $2, '10-Session Pass', 10, 90, 45000)
		ON CONFLICT (id) DO NOTHING;
	`, FixturePackageID, FixtureBusinessID)
	return err
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
