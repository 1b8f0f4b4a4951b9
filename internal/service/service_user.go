package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	passwordCost   int

	logger *logger.Logger
}

// NewUserService constructs the self-service of authenticated users.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		passwordCost:   bcrypt.DefaultCost,
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, auth models.AuthContext) (models.User, error) {
	if !auth.IsAuthenticated() {
		return models.User{}, ErrUnauthorized
	}
	return s.userRepository.FindUserByID(ctx, auth.UserID)
}

// UpdateProfile applies the non-nil fields of update. A new password is
// checked against the policy and re-hashed; a new email is lowercased and
// may collide with another account (store.ErrEmailAlreadyExists).
func (s *userService) UpdateProfile(ctx context.Context, auth models.AuthContext, update models.UserUpdate) (models.User, error) {
	if !auth.IsAuthenticated() {
		return models.User{}, ErrUnauthorized
	}

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, auth.UserID)
	if err != nil {
		return models.User{}, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Email != nil {
		user.Email = normalizeEmail(*update.Email)
	}
	if update.Password != nil {
		if user.PasswordHash, err = hashPassword(*update.Password, s.passwordCost); err != nil {
			return models.User{}, err
		}
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", auth.UserID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return updated, nil
}

// DeleteAccount removes the user; the database cascades to sessions and
// ratings.
func (s *userService) DeleteAccount(ctx context.Context, auth models.AuthContext) error {
	if !auth.IsAuthenticated() {
		return ErrUnauthorized
	}

	if err := s.userRepository.DeleteUser(ctx, auth.UserID); err != nil {
		return fmt.Errorf("account deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", auth.UserID).Msg("account deleted")
	return nil
}
