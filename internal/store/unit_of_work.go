package store

import (
	"context"
	"fmt"

	"github.com/Grihladin/42Connect/internal/logger"
)

// unitOfWork implements [UnitOfWork] over a database/sql transaction.
type unitOfWork struct {
	logger *logger.Logger
	db     *DB
}

// NewUnitOfWork constructs a [UnitOfWork] backed by the provided
// database connection.
func NewUnitOfWork(db *DB) UnitOfWork {
	db.logger.Debug().Msg("creating sync unit of work")
	return &unitOfWork{
		db:     db,
		logger: db.logger,
	}
}

// WithinSync opens a transaction and immediately takes
// pg_advisory_xact_lock keyed by the student's intra user id, so two
// concurrent cycles for the same student run one after the other and
// each observes the other's committed state. The lock is released by
// COMMIT or ROLLBACK.
//
// fn runs against transaction-bound repositories: either every change it
// makes commits together, or a single error rolls the whole cycle back.
func (u *unitOfWork) WithinSync(ctx context.Context, remoteID int64, fn func(ctx context.Context, repos SyncRepositories) error) error {
	log := logger.FromContext(ctx)

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*unitOfWork.WithinSync").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err = tx.ExecContext(ctx, advisoryLockSync, remoteID); err != nil {
		log.Err(err).Str("func", "*unitOfWork.WithinSync").
			Int64("forty_two_id", remoteID).Msg("error taking sync advisory lock")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = fn(ctx, syncRepositories(u.db, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*unitOfWork.WithinSync").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
