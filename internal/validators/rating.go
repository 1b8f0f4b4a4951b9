package validators

import (
	"context"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/MKhiriev/go-film-catalog/models"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 10
)

// Field names accepted by [RatingValidator].
const (
	// FieldRating requires the score and checks its bounds.
	FieldRating = "rating"
	// FieldRatingIfPresent checks the bounds only when a score is given.
	FieldRatingIfPresent = "rating if present"
	FieldComment         = "comment"
	// FieldAnyRatingField requires an update to change something.
	FieldAnyRatingField = "any rating field"
)

// RatingValidator validates rating bodies.
//
// Supported types:
//   - models.RatingInput / *models.RatingInput
//   - models.Rating / *models.Rating (stored shape, bounds only)
type RatingValidator struct{}

// NewRatingValidator constructs a new RatingValidator and returns it as
// the Validator interface.
func NewRatingValidator() Validator {
	return &RatingValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Default fields for RatingInput are those of a create: FieldRating and
// FieldComment.
func (v *RatingValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RatingInput:
		return v.validateRatingInput(value, fields...)
	case *models.RatingInput:
		return v.validateRatingInput(*value, fields...)

	case models.Rating:
		return validateStoredRating(value)
	case *models.Rating:
		return validateStoredRating(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RatingValidator) validateRatingInput(input models.RatingInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRating, FieldComment}
	}

	for _, f := range fields {
		switch f {
		case FieldRating:
			if input.Rating == nil {
				return fmt.Errorf("%w: rating", ErrMissingField)
			}
			if !IsValidRatingScore(*input.Rating) {
				return ErrInvalidRating
			}
		case FieldRatingIfPresent:
			if input.Rating != nil && !IsValidRatingScore(*input.Rating) {
				return ErrInvalidRating
			}
		case FieldComment:
			if input.Comment != nil && utf8.RuneCountInString(*input.Comment) > maxCommentLength {
				return ErrCommentTooLong
			}
		case FieldAnyRatingField:
			if input.Rating == nil && input.Comment == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateStoredRating(rating models.Rating) error {
	if rating.Rating < MinRating || rating.Rating > MaxRating {
		return ErrInvalidRating
	}
	return nil
}

// IsValidRatingScore reports whether score parsed as a finite number in
// [MinRating, MaxRating].
func IsValidRatingScore(score models.RatingScore) bool {
	if !score.Valid || math.IsNaN(score.Value) || math.IsInf(score.Value, 0) {
		return false
	}
	return score.Value >= MinRating && score.Value <= MaxRating
}

// RoundRating converts an accepted score to its stored integer value.
func RoundRating(score models.RatingScore) int {
	return int(math.Round(score.Value))
}
