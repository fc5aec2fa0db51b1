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

// CreateTestPartner inserts an OAuth-connected production partner, the
// configuration that allows split payments.
func CreateTestPartner(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	partnerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO partners (
			id, business_name, tax_rate, tax_included,
			mp_access_token, mp_public_key, mp_refresh_token, mp_user_id, mp_connection_mode
		) VALUES ($1, $2, 22, false,
			'APP_USR-1234567890-production-token', 'APP_USR-public-key',
			'TG-refresh-token-0123456789', 987654321, 'oauth')`,
		partnerID, name)
	require.NoError(t, err)

	return partnerID
}

// CreateSandboxPartner inserts an OAuth partner holding test credentials, so
// split fields must stay off its preferences.
func CreateSandboxPartner(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	partnerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO partners (
			id, business_name, tax_rate, tax_included,
			mp_access_token, mp_public_key, mp_refresh_token, mp_user_id, mp_connection_mode
		) VALUES ($1, $2, 22, false,
			'TEST-1234567890-sandbox-token', 'TEST-public-key',
			'TG-refresh-token-0123456789', 987654321, 'oauth')`,
		partnerID, name)
	require.NoError(t, err)

	return partnerID
}

// CreateManualPartner inserts a partner with a pasted token and no OAuth
// linkage.
func CreateManualPartner(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	partnerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO partners (
			id, business_name, tax_rate, tax_included,
			mp_access_token, mp_public_key, mp_connection_mode
		) VALUES ($1, $2, 22, false,
			'APP_USR-1234567890-production-token', 'APP_USR-public-key', 'manual')`,
		partnerID, name)
	require.NoError(t, err)

	return partnerID
}

// CreateUnconnectedPartner inserts a partner that has never stored gateway
// credentials.
func CreateUnconnectedPartner(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	partnerID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO partners (id, business_name, tax_rate, tax_included, mp_connection_mode)
		VALUES ($1, $2, 22, false, 'manual')`,
		partnerID, name)
	require.NoError(t, err)

	return partnerID
}

// CreateTestOrder inserts an order aged by `age` so sweep tests can place
// rows on either side of the expiry cutoff. Prices follow one 100 x 2 item
// at 22% tax with a 5% commission.
func CreateTestOrder(t *testing.T, db DBLike, partnerID, customerID uuid.UUID, kind, status string, age time.Duration, preferenceID *string) uuid.UUID {
	t.Helper()

	orderID := uuid.New()
	ctx := context.Background()

	items := `[{"name":"Dog food 10kg","unit_price":"100","quantity":2,"subtotal":"200","tax_amount":"44","discount":"0","currency":"UYU"}]`

	_, err := db.Exec(ctx, `
		INSERT INTO orders (
			id, partner_id, customer_id, items,
			subtotal, tax_amount, shipping_cost, total_amount,
			commission_amount, partner_amount,
			kind, status, preference_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, 200.00, 44.00, 0.00, 244.00, 12.20, 231.80,
			$5, $6, $7, now() - $8::interval, now())`,
		orderID, partnerID, customerID, items,
		kind, status, preferenceID, fmt.Sprintf("%d seconds", int(age.Seconds())))
	require.NoError(t, err)

	return orderID
}

func CreateTestBooking(t *testing.T, db DBLike, orderID, partnerID, customerID uuid.UUID, scheduledFor time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO bookings (id, order_id, service_id, partner_id, customer_id, scheduled_for)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		bookingID, orderID, uuid.New(), partnerID, customerID, scheduledFor)
	require.NoError(t, err)

	return bookingID
}

func CreateTestNotification(t *testing.T, db DBLike, userID uuid.UUID, scheduledFor time.Time, retryCount int32) uuid.UUID {
	t.Helper()

	notificationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO scheduled_notifications (id, user_id, title, body, payload, scheduled_for, retry_count)
		VALUES ($1, $2, 'Booking reminder', 'Your appointment is tomorrow', '{"screen":"bookings"}', $3, $4)`,
		notificationID, userID, scheduledFor, retryCount)
	require.NoError(t, err)

	return notificationID
}

func CreateTestDeviceToken(t *testing.T, db DBLike, userID uuid.UUID, channel, token string) uuid.UUID {
	t.Helper()

	tokenID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO device_tokens (id, user_id, channel, token)
		VALUES ($1, $2, $3, $4)`,
		tokenID, userID, channel, token)
	require.NoError(t, err)

	return tokenID
}

// CountRows is a convenience for row-level assertions after a flow.
func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var count int
	err := db.QueryRow(context.Background(), query, args...).Scan(&count)
	require.NoError(t, err)
	return count
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables between subtests.
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

	return nil
}
