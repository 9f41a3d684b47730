package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booking-flow/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"

	retryBaseWait = 50 * time.Millisecond
)

// Querier is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Pool is what the repositories need from a connection pool.
type Pool interface {
	Querier
	TxBeginner
}

// RunInTx commits when fn succeeds and rolls back otherwise.
func RunInTx(ctx context.Context, pool TxBeginner, fn func(tx Querier) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrTransactionBegin)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", slog.String("error", rbErr.Error()))
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrTransactionCommit)
	}
	return nil
}

// RunInTxWithRetry reruns fn on serialization failures and deadlocks, waiting
// a little longer after each attempt.
func RunInTxWithRetry(ctx context.Context, pool TxBeginner, maxRetries int, fn func(tx Querier) error) error {
	for attempt := 0; ; attempt++ {
		err := RunInTx(ctx, pool, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				slog.Int("attempts", attempt+1),
				slog.String("error", err.Error()))
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		wait := time.Duration(attempt+1) * retryBaseWait
		slog.Warn("retrying transaction",
			slog.Int("attempt", attempt+1),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == serializationFailure || pgErr.Code == deadlockDetected
}
