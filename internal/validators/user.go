package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-film-catalog/models"
)

// Field names accepted by [UserValidator].
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPassword  = "password"

	// FieldAnyUserField requires a [models.UserUpdate] to change something.
	FieldAnyUserField = "any user field"
)

// UserValidator validates registration, profile updates, and login bodies.
//
// Supported types:
//   - models.User / *models.User (registration)
//   - models.UserUpdate / *models.UserUpdate (partial profile update)
//   - models.Credentials / *models.Credentials (login: presence only)
type UserValidator struct{}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks a registration body. Names are optional but must match
// the name pattern when present; email and password are required.
//
// Format checks only: email uniqueness is left to the database.
func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFirstName, FieldLastName}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if user.FirstName != "" && !IsValidName(user.FirstName) {
				return fmt.Errorf("%w: first_name", ErrInvalidName)
			}
		case FieldLastName:
			if user.LastName != "" && !IsValidName(user.LastName) {
				return fmt.Errorf("%w: last_name", ErrInvalidName)
			}
		case FieldEmail:
			if !IsValidEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if !IsValidPassword(user.Password) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUserUpdate checks only the fields the update sets (nil means
// "do not touch").
func (v *UserValidator) validateUserUpdate(_ context.Context, update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAnyUserField, FieldEmail, FieldPassword, FieldFirstName, FieldLastName}
	}

	for _, f := range fields {
		switch f {
		case FieldAnyUserField:
			if update.FirstName == nil && update.LastName == nil && update.Email == nil && update.Password == nil {
				return ErrNoFieldsToUpdate
			}
		case FieldFirstName:
			if update.FirstName != nil && *update.FirstName != "" && !IsValidName(*update.FirstName) {
				return fmt.Errorf("%w: first_name", ErrInvalidName)
			}
		case FieldLastName:
			if update.LastName != nil && *update.LastName != "" && !IsValidName(*update.LastName) {
				return fmt.Errorf("%w: last_name", ErrInvalidName)
			}
		case FieldEmail:
			if update.Email != nil && !IsValidEmail(*update.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if update.Password != nil && !IsValidPassword(*update.Password) {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials does not apply the password policy: a login with a
// policy-violating password simply fails authentication.
func (v *UserValidator) validateCredentials(creds models.Credentials) error {
	if creds.Email == "" {
		return fmt.Errorf("%w: email", ErrMissingField)
	}
	if creds.Password == "" {
		return fmt.Errorf("%w: password", ErrMissingField)
	}
	return nil
}
