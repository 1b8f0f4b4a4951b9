package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
)

// RatingValidationService checks rating bodies before they reach the
// wrapped RatingService. Read and delete calls pass through.
type RatingValidationService struct {
	inner     RatingService
	validator validators.Validator
}

func NewRatingValidationService() RatingServiceWrapper {
	return &RatingValidationService{
		validator: validators.NewRatingValidator(),
	}
}

func (v *RatingValidationService) CreateRating(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Rating{}, fmt.Errorf("error during rating validation: %w", err)
	}
	return v.inner.CreateRating(ctx, auth, movieID, input)
}

func (v *RatingValidationService) ListRatingsForMovie(ctx context.Context, movieID int64) ([]models.RatingView, error) {
	return v.inner.ListRatingsForMovie(ctx, movieID)
}

func (v *RatingValidationService) GetOwnRating(ctx context.Context, auth models.AuthContext, movieID int64) (models.Rating, error) {
	return v.inner.GetOwnRating(ctx, auth, movieID)
}

func (v *RatingValidationService) UpdateOwnRating(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error) {
	err := v.validator.Validate(ctx, input,
		validators.FieldAnyRatingField,
		validators.FieldRatingIfPresent,
		validators.FieldComment,
	)
	if err != nil {
		return models.Rating{}, fmt.Errorf("error during rating validation: %w", err)
	}
	return v.inner.UpdateOwnRating(ctx, auth, movieID, input)
}

func (v *RatingValidationService) DeleteOwnRating(ctx context.Context, auth models.AuthContext, movieID int64) error {
	return v.inner.DeleteOwnRating(ctx, auth, movieID)
}

func (v *RatingValidationService) ListOwnRatings(ctx context.Context, auth models.AuthContext) ([]models.UserRating, error) {
	return v.inner.ListOwnRatings(ctx, auth)
}

func (v *RatingValidationService) Wrap(wrapped RatingService) RatingService {
	v.inner = wrapped
	return v
}
