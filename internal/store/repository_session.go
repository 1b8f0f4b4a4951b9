package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/jackc/pgerrcode"
)

// sessionRepository stores the HMAC of session tokens. Raw tokens never
// reach the database.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession inserts the session. A foreign-key violation means the user
// was deleted concurrently and yields [ErrUserNotFound].
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createSession, session.TokenHash, session.UserID); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrUserNotFound
		}

		log.Err(err).Str("func", "sessionRepository.CreateSession").Int64("user_id", session.UserID).Msg("failed to create session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindSessionUser resolves tokenHash to the owning user.
func (r *sessionRepository) FindSessionUser(ctx context.Context, tokenHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, findSessionUser, tokenHash))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "sessionRepository.FindSessionUser").Msg("failed to resolve session")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// DeleteSession removes the session. Returns [ErrSessionNotFound] when the
// hash is unknown.
func (r *sessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSession, tokenHash)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrSessionNotFound)
}
