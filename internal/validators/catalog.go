package validators

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/go-film-catalog/models"
)

// Field names accepted by [CatalogValidator].
const (
	FieldName    = "name"
	FieldSurname = "surname"

	FieldTitle       = "title"
	FieldSynopsis    = "synopsis"
	FieldDuration    = "duration"
	FieldReleaseDate = "release_date"
	FieldLanguage    = "language"
	FieldPoster      = "poster"
	FieldDirector    = "director"
	FieldActors      = "actors"
	FieldGenres      = "genres"

	// FieldMovieRequired enforces presence of every field a new movie needs.
	// Used on create and on full (PUT) update.
	FieldMovieRequired = "required movie fields"

	// FieldAnyMovieField requires a partial update to change something.
	FieldAnyMovieField = "any movie field"
)

// MovieFieldsChecked lists the per-field checks shared by create and update.
var MovieFieldsChecked = []string{
	FieldTitle, FieldSynopsis, FieldDuration, FieldReleaseDate,
	FieldLanguage, FieldPoster, FieldDirector, FieldActors, FieldGenres,
}

// MoviePatchFields is the field set of a partial movie update.
var MoviePatchFields = append([]string{FieldAnyMovieField}, MovieFieldsChecked...)

// CatalogValidator validates the normalized catalog entities and movie
// bodies. Names are checked before normalization.
//
// Supported types:
//   - models.Category / *models.Category
//   - models.Person / *models.Person (actors and directors)
//   - models.MovieInput / *models.MovieInput
type CatalogValidator struct{}

// NewCatalogValidator constructs a new CatalogValidator and returns it as
// the Validator interface.
func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

// Validate dispatches on the dynamic type of obj.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Category:
		return v.validateCategory(value)
	case *models.Category:
		return v.validateCategory(*value)

	case models.Person:
		return v.validatePerson(value, fields...)
	case *models.Person:
		return v.validatePerson(*value, fields...)

	case models.MovieInput:
		return v.validateMovieInput(ctx, value, fields...)
	case *models.MovieInput:
		return v.validateMovieInput(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CatalogValidator) validateCategory(category models.Category) error {
	if !IsValidName(category.Name) {
		return fmt.Errorf("%w: name", ErrInvalidName)
	}
	return nil
}

// validatePerson requires a name; the surname may be empty.
func (v *CatalogValidator) validatePerson(person models.Person, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSurname}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if !IsValidName(person.Name) {
				return fmt.Errorf("%w: name", ErrInvalidName)
			}
		case FieldSurname:
			if person.Surname != "" && !IsValidName(person.Surname) {
				return fmt.Errorf("%w: surname", ErrInvalidName)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMovieInput checks the fields of a movie body. Per-field checks only
// trigger on non-nil fields; presence is enforced by FieldMovieRequired.
//
// Default validated fields: FieldMovieRequired plus MovieFieldsChecked.
func (v *CatalogValidator) validateMovieInput(_ context.Context, input models.MovieInput, fields ...string) error {
	if len(fields) == 0 {
		fields = append([]string{FieldMovieRequired}, MovieFieldsChecked...)
	}

	for _, f := range fields {
		switch f {
		case FieldMovieRequired:
			if err := requireMovieFields(input); err != nil {
				return err
			}
		case FieldAnyMovieField:
			if input == (models.MovieInput{}) {
				return ErrNoFieldsToUpdate
			}
		case FieldTitle:
			if input.Title != nil {
				title := strings.TrimSpace(*input.Title)
				if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
					return ErrInvalidTitle
				}
			}
		case FieldSynopsis:
			// any text, including empty
		case FieldDuration:
			if input.Duration != nil && *input.Duration <= 0 {
				return ErrInvalidDuration
			}
		case FieldReleaseDate:
			if input.ReleaseDate != nil {
				if _, err := time.Parse(models.ReleaseDateLayout, *input.ReleaseDate); err != nil {
					return ErrInvalidReleaseDate
				}
			}
		case FieldLanguage:
			if input.Language != nil {
				language := strings.TrimSpace(*input.Language)
				if language == "" || utf8.RuneCountInString(language) > maxLanguageLength {
					return ErrInvalidLanguage
				}
			}
		case FieldPoster:
			if input.Poster != nil && len(*input.Poster) > maxNameLength {
				return fmt.Errorf("%w: poster", ErrTextFieldTooLong)
			}
		case FieldDirector:
			if input.Director != nil {
				if err := v.validatePerson(*input.Director); err != nil {
					return fmt.Errorf("director: %w", err)
				}
			}
		case FieldActors:
			if input.Actors != nil {
				for i, actor := range *input.Actors {
					if err := v.validatePerson(actor); err != nil {
						return fmt.Errorf("actors[%d]: %w", i, err)
					}
				}
			}
		case FieldGenres:
			if input.Genres != nil {
				for i, genre := range *input.Genres {
					if !IsValidName(genre) {
						return fmt.Errorf("genres[%d]: %w", i, ErrInvalidName)
					}
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requireMovieFields(input models.MovieInput) error {
	switch {
	case input.Title == nil:
		return fmt.Errorf("%w: title", ErrMissingField)
	case input.Synopsis == nil:
		return fmt.Errorf("%w: synopsis", ErrMissingField)
	case input.Duration == nil:
		return fmt.Errorf("%w: duration", ErrMissingField)
	case input.ReleaseDate == nil:
		return fmt.Errorf("%w: release_date", ErrMissingField)
	case input.Language == nil:
		return fmt.Errorf("%w: language", ErrMissingField)
	case input.Director == nil:
		return fmt.Errorf("%w: director", ErrMissingField)
	}
	return nil
}
