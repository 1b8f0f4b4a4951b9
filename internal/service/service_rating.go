package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
)

// ratingService records one rating per user and movie. Input validation is
// expected from the wrapping ratingValidationService; scores are rounded
// to the nearest integer before they are stored.
type ratingService struct {
	ratingRepository store.RatingRepository
	movieRepository  store.MovieRepository

	logger *logger.Logger
}

func NewRatingService(ratingRepository store.RatingRepository, movieRepository store.MovieRepository, logger *logger.Logger) RatingService {
	return &ratingService{
		ratingRepository: ratingRepository,
		movieRepository:  movieRepository,
		logger:           logger,
	}
}

// CreateRating rates movieID on behalf of auth. The store locks the movie
// and relies on the (user, movie) unique key, returning
// store.ErrMovieNotFound or store.ErrRatingAlreadyExists.
func (s *ratingService) CreateRating(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error) {
	if !auth.IsAuthenticated() {
		return models.Rating{}, ErrUnauthorized
	}
	if input.Rating == nil {
		return models.Rating{}, validators.ErrInvalidRating
	}

	rating, err := s.ratingRepository.CreateRating(ctx, models.Rating{
		UserID:  auth.UserID,
		MovieID: movieID,
		Rating:  validators.RoundRating(*input.Rating),
		Comment: input.Comment,
	})
	if err != nil {
		return models.Rating{}, fmt.Errorf("rating creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", auth.UserID).
		Int64("movie_id", movieID).
		Int("rating", rating.Rating).
		Msg("movie rated")
	return rating, nil
}

func (s *ratingService) ListRatingsForMovie(ctx context.Context, movieID int64) ([]models.RatingView, error) {
	exists, err := s.movieRepository.MovieExists(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, store.ErrMovieNotFound
	}

	return s.ratingRepository.ListMovieRatings(ctx, movieID)
}

func (s *ratingService) GetOwnRating(ctx context.Context, auth models.AuthContext, movieID int64) (models.Rating, error) {
	if !auth.IsAuthenticated() {
		return models.Rating{}, ErrUnauthorized
	}
	return s.ratingRepository.GetUserRating(ctx, auth.UserID, movieID)
}

// UpdateOwnRating changes the score and/or the comment of the caller's
// rating. Nil fields keep their stored value.
func (s *ratingService) UpdateOwnRating(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error) {
	if !auth.IsAuthenticated() {
		return models.Rating{}, ErrUnauthorized
	}

	rating, err := s.ratingRepository.GetUserRating(ctx, auth.UserID, movieID)
	if err != nil {
		return models.Rating{}, err
	}

	if input.Rating != nil {
		rating.Rating = validators.RoundRating(*input.Rating)
	}
	if input.Comment != nil {
		rating.Comment = input.Comment
	}

	return s.ratingRepository.UpdateUserRating(ctx, rating)
}

func (s *ratingService) DeleteOwnRating(ctx context.Context, auth models.AuthContext, movieID int64) error {
	if !auth.IsAuthenticated() {
		return ErrUnauthorized
	}
	return s.ratingRepository.DeleteUserRating(ctx, auth.UserID, movieID)
}

func (s *ratingService) ListOwnRatings(ctx context.Context, auth models.AuthContext) ([]models.UserRating, error) {
	if !auth.IsAuthenticated() {
		return nil, ErrUnauthorized
	}
	return s.ratingRepository.ListUserRatings(ctx, auth.UserID)
}
