package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingField     = errors.New("required field is missing")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrInvalidName     = errors.New("name must contain only letters, spaces, apostrophes and hyphens")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("password must be at least 8 characters long and contain a digit, an uppercase and a lowercase letter")

	ErrInvalidTitle       = errors.New("title cannot be empty")
	ErrInvalidDuration    = errors.New("duration must be a positive number")
	ErrInvalidReleaseDate = errors.New("release date must be in YYYY-MM-DD format")
	ErrInvalidLanguage    = errors.New("language cannot be empty")

	ErrInvalidRating    = errors.New("rating must be a number between 1 and 10")
	ErrCommentTooLong   = errors.New("comment is too long")
	ErrTextFieldTooLong = errors.New("text field is too long")
)
