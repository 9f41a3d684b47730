//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CountBookingRecords returns how many rows hold id.
func CountBookingRecords(t *testing.T, db DBLike, id string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM booking_records WHERE id = $1", id).Scan(&n)
	require.NoError(t, err)
	return n
}

// ConfirmationStatus reads the stored confirmation status of a booking.
func ConfirmationStatus(t *testing.T, db DBLike, id string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT confirmation_status FROM booking_records WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE booking_records")
	return err
}
