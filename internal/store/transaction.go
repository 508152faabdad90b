// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-classifieds/internal/logger"
)

const maxTransactionAttempts = 3

// TxFn is the unit of work executed by [DB.RunInTransaction].
type TxFn func(ctx context.Context, tx *sql.Tx) error

// RunInTransaction runs fn inside a transaction. The transaction is committed
// when fn returns nil and rolled back when fn fails or panics; a panic is
// re-raised after the rollback.
//
// When the attempt fails with a [Retryable] error the whole unit of work is
// run again, up to maxTransactionAttempts times.
func (db *DB) RunInTransaction(ctx context.Context, fn TxFn) error {
	var err error
	for attempt := 1; attempt <= maxTransactionAttempts; attempt++ {
		err = db.runInTransaction(ctx, fn)
		if err == nil || db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*DB.RunInTransaction").
			Int("attempt", attempt).
			Msg("retrying transaction")
	}

	return err
}

func (db *DB) runInTransaction(ctx context.Context, fn TxFn) (err error) {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.RunInTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Interface("panic", p).
					Str("func", "*DB.RunInTransaction").
					Msg("failed to roll back transaction after panic")
			}
			panic(p)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "*DB.RunInTransaction").Msg("failed to roll back transaction")
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.RunInTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
