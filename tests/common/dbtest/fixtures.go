//go:build unit || e2e

package dbtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"staybilling/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestBooking inserts a confirmed booking carrying the given
// pricing params snapshot and returns its id.
func CreateTestBooking(t *testing.T, db DBLike, guestID, hostID uuid.UUID, params pricing.Params) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	paramsJSON, err := json.Marshal(params)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Exec(ctx,
		`INSERT INTO bookings (id, guest_id, host_id, status, check_in, cancellation_policy, params)
		 VALUES ($1, $2, $3, 'confirmed', $4, 'flexible', $5)`,
		bookingID, guestID, hostID, time.Now().Add(96*time.Hour), paramsJSON)
	require.NoError(t, err)

	return bookingID
}

func CreateTestBookingWithCoupon(t *testing.T, db DBLike, guestID, hostID uuid.UUID, params pricing.Params, couponID uuid.UUID, couponCode string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	paramsJSON, err := json.Marshal(params)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = db.Exec(ctx,
		`INSERT INTO bookings (id, guest_id, host_id, status, check_in, cancellation_policy, coupon_id, coupon_code, params)
		 VALUES ($1, $2, $3, 'confirmed', $4, 'flexible', $5, $6, $7)`,
		bookingID, guestID, hostID, time.Now().Add(96*time.Hour), couponID, couponCode, paramsJSON)
	require.NoError(t, err)

	return bookingID
}

// CreateTestCoupon inserts an active coupon of the given discount kind
// ("percentage" or "fixed") and returns its id.
func CreateTestCoupon(t *testing.T, db DBLike, code string, kind string, amount float64, usageLimit int) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO coupons (id, code, kind, amount, usage_limit, active)
		 VALUES ($1, $2, $3, $4, $5, TRUE)
		 ON CONFLICT (code) DO NOTHING`,
		couponID, strings.ToUpper(code), kind, amount, usageLimit)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM coupons WHERE code = $1", strings.ToUpper(code)).Scan(&couponID)
	}

	return couponID
}

// ActivateTestRate inserts an active platform rate effective immediately.
func ActivateTestRate(t *testing.T, db DBLike, rateValue float64) uuid.UUID {
	t.Helper()

	rateID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		`WITH deactivated AS (
		   UPDATE platform_rates SET active = FALSE WHERE active = TRUE
		 )
		 INSERT INTO platform_rates (id, rate, version, effective_from, active)
		 VALUES ($1, $2, COALESCE((SELECT MAX(version) FROM platform_rates), 0) + 1, now() - interval '1 hour', TRUE)`,
		rateID, rateValue)
	require.NoError(t, err)

	return rateID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	// A standing platform rate so quotes resolve without the fallback.
	_, err := pool.Exec(ctx, `
		INSERT INTO platform_rates (id, rate, version, effective_from, active)
		SELECT gen_random_uuid(), 0.15, 1, now() - interval '30 days', TRUE
		WHERE NOT EXISTS (SELECT 1 FROM platform_rates WHERE active);
	`)
	if err != nil {
		return err
	}

	return nil
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
