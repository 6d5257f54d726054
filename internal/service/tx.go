package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"recordsapi/internal/apperrors"
	"recordsapi/internal/repository"
)

// txMaxAttempts bounds retries for transactions that fail with a
// serialization or deadlock error.
const txMaxAttempts = 3

// TxRunner executes a unit of work inside a database transaction. The
// callback receives the transaction as a DBTX so repositories can be rebound
// to it with WithTx.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(tx repository.DBTX) error) error
}

type sqlTxRunner struct {
	db *sql.DB
}

// NewTxRunner returns a TxRunner over the given database handle.
func NewTxRunner(db *sql.DB) TxRunner {
	return &sqlTxRunner{db: db}
}

// retryableTxErr reports whether err is a Postgres serialization_failure
// (40001) or deadlock_detected (40P01), the two classes a fresh attempt can
// resolve.
func retryableTxErr(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// RunInTx runs fn in a transaction, committing on success and rolling back on
// error. Serialization and deadlock failures are retried up to txMaxAttempts;
// exhausting the retries yields ErrTxAborted. Any other error is returned
// unchanged after rollback.
func (r *sqlTxRunner) RunInTx(ctx context.Context, fn func(tx repository.DBTX) error) error {
	var last error
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		tx, err := r.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin transaction: %w", err)
		}
		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			if retryableTxErr(err) {
				last = err
				continue
			}
			return err
		}
		if err := tx.Commit(); err != nil {
			if retryableTxErr(err) {
				last = err
				continue
			}
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w after %d attempts: %v", apperrors.ErrTxAborted, txMaxAttempts, last)
}
