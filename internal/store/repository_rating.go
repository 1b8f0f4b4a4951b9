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

// ratingRepository is the PostgreSQL implementation of [RatingRepository].
// At most one rating per (user, movie) is enforced by ratings_user_movie_key.
type ratingRepository struct {
	*DB
	logger *logger.Logger
}

// NewRatingRepository constructs a [RatingRepository] backed by db.
func NewRatingRepository(db *DB, logger *logger.Logger) RatingRepository {
	logger.Debug().Msg("creating rating repository")
	return &ratingRepository{DB: db, logger: logger}
}

// CreateRating implements [RatingRepository].
//
// The movie row is locked FOR SHARE so that it cannot be deleted between
// the existence check and the insert.
func (r *ratingRepository) CreateRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "ratingRepository.CreateRating").Msg("failed to begin transaction")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var lockedID int64
	if err = tx.QueryRowContext(ctx, lockMovieForShare, rating.MovieID).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rating{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "ratingRepository.CreateRating").Int64("movie_id", rating.MovieID).Msg("failed to lock movie")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	err = tx.QueryRowContext(ctx, insertRating, rating.UserID, rating.MovieID, rating.Rating, rating.Comment).Scan(&rating.ID)
	if err != nil {
		switch {
		case postgresError(err) == pgerrcode.UniqueViolation && postgresConstraint(err) == constraintRatingsUser:
			log.Warn().
				Str("func", "ratingRepository.CreateRating").
				Int64("user_id", rating.UserID).
				Int64("movie_id", rating.MovieID).
				Msg("movie already rated by user")
			return models.Rating{}, ErrRatingAlreadyExists
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			return models.Rating{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "ratingRepository.CreateRating").Msg("failed to insert rating")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "ratingRepository.CreateRating").Msg("failed to commit transaction")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return rating, nil
}

// ListMovieRatings implements [RatingRepository]. Ratings come in insertion
// order with the rater's email.
func (r *ratingRepository) ListMovieRatings(ctx context.Context, movieID int64) ([]models.RatingView, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listMovieRatings, movieID)
	if err != nil {
		log.Err(err).Str("func", "ratingRepository.ListMovieRatings").Int64("movie_id", movieID).Msg("failed to list ratings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ratings := make([]models.RatingView, 0, 16)
	for rows.Next() {
		var v models.RatingView
		if err = rows.Scan(&v.ID, &v.User, &v.Rating, &v.Comment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ratings = append(ratings, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ratings, nil
}

// GetUserRating implements [RatingRepository].
func (r *ratingRepository) GetUserRating(ctx context.Context, userID, movieID int64) (models.Rating, error) {
	var rating models.Rating
	err := r.DB.QueryRowContext(ctx, getUserRating, userID, movieID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.MovieID,
		&rating.Rating,
		&rating.Comment,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rating{}, ErrRatingNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "ratingRepository.GetUserRating").Msg("failed to get rating")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return rating, nil
}

// UpdateUserRating implements [RatingRepository]. rating carries the merged
// score and comment.
func (r *ratingRepository) UpdateUserRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	err := r.DB.QueryRowContext(ctx, updateUserRating, rating.Rating, rating.Comment, rating.UserID, rating.MovieID).Scan(&rating.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Rating{}, ErrRatingNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "ratingRepository.UpdateUserRating").Msg("failed to update rating")
		return models.Rating{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return rating, nil
}

// DeleteUserRating implements [RatingRepository].
func (r *ratingRepository) DeleteUserRating(ctx context.Context, userID, movieID int64) error {
	result, err := r.DB.ExecContext(ctx, deleteUserRating, userID, movieID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "ratingRepository.DeleteUserRating").Msg("failed to delete rating")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrRatingNotFound)
}

// ListUserRatings implements [RatingRepository].
func (r *ratingRepository) ListUserRatings(ctx context.Context, userID int64) ([]models.UserRating, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listUserRatings, userID)
	if err != nil {
		log.Err(err).Str("func", "ratingRepository.ListUserRatings").Int64("user_id", userID).Msg("failed to list ratings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ratings := make([]models.UserRating, 0, 16)
	for rows.Next() {
		var ur models.UserRating
		if err = rows.Scan(&ur.ID, &ur.MovieID, &ur.MovieTitle, &ur.Poster, &ur.Rating, &ur.Comment); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ratings = append(ratings, ur)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ratings, nil
}
