package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/jackc/pgerrcode"
)

// getOrCreateAttempts bounds the insert-then-select sequence: one try plus
// one retry.
const getOrCreateAttempts = 2

// errEntityVanished reports that the conflicting row disappeared between the
// insert and the lookup.
var errEntityVanished = errors.New("entity vanished between insert and lookup")

// getOrCreate runs insert, an INSERT ... ON CONFLICT DO NOTHING RETURNING
// statement, and falls back to lookup when the insert returned no row because
// the entity already existed. Unique violations, retryable driver errors, and
// a row vanishing in between cause exactly one retry.
//
// insert and lookup scan into the caller's destination.
func (db *DB) getOrCreate(ctx context.Context, funcName string, insert, lookup func() error) (bool, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for attempt := 1; attempt <= getOrCreateAttempts; attempt++ {
		created, err := tryGetOrCreate(insert, lookup)
		if err == nil {
			return created, nil
		}
		lastErr = err

		if !db.shouldRetryGetOrCreate(err) {
			break
		}

		log.Warn().
			Err(err).
			Str("func", funcName).
			Int("attempt", attempt).
			Msg("get-or-create collided with a concurrent change")
	}

	log.Err(lastErr).Str("func", funcName).Msg("get-or-create failed")
	return false, fmt.Errorf("%w: %w", ErrExecutingQuery, lastErr)
}

func tryGetOrCreate(insert, lookup func() error) (bool, error) {
	err := insert()
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	if err = lookup(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, errEntityVanished
		}
		return false, err
	}

	return false, nil
}

func (db *DB) shouldRetryGetOrCreate(err error) bool {
	if errors.Is(err, errEntityVanished) || postgresError(err) == pgerrcode.UniqueViolation {
		return true
	}
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable
}
