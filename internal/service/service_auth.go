package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; session tokens are stored as
// HMAC-SHA256 digests keyed with the configured session hash key, so a
// leaked sessions table cannot be replayed.
type authService struct {
	userRepository    store.UserRepository
	sessionRepository store.SessionRepository

	// hasher digests raw session tokens before they touch the store.
	hasher *utils.Hasher

	validator validators.Validator

	// passwordCost is the bcrypt work factor.
	passwordCost int

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. sessionHashKey must be the
// same across restarts, otherwise every open session is invalidated.
func NewAuthService(
	userRepository store.UserRepository,
	sessionRepository store.SessionRepository,
	sessionHashKey string,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		hasher:            utils.NewHasher(sessionHashKey),
		validator:         validators.NewUserValidator(),
		passwordCost:      bcrypt.DefaultCost,
		logger:            logger,
	}
}

// Register creates a regular (non-staff) account.
//
// Names and the password policy are checked before the email uniqueness,
// which is left to the database constraint (store.ErrEmailAlreadyExists).
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Msg("registration rejected")
		return models.User{}, err
	}

	hash, err := hashPassword(user.Password, a.passwordCost)
	if err != nil {
		return models.User{}, err
	}

	user.Email = normalizeEmail(user.Email)
	user.PasswordHash = hash
	user.Password = ""
	user.IsStaff = false

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates credentials and opens a session. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Session{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(credentials.Email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.Session{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.Session{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	token, err := utils.NewSessionToken()
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{
		Token:     token,
		TokenHash: a.hasher.SumString(token),
		UserID:    user.UserID,
	}
	if err = a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, nil
}

// Resolve maps a raw session token to the identity that owns it.
func (a *authService) Resolve(ctx context.Context, token string) (models.AuthContext, error) {
	if token == "" {
		return models.AuthContext{}, ErrUnauthorized
	}

	user, err := a.sessionRepository.FindSessionUser(ctx, a.hasher.SumString(token))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.AuthContext{}, ErrUnauthorized
		}
		logger.FromContext(ctx).Err(err).Msg("session lookup failed")
		return models.AuthContext{}, fmt.Errorf("session lookup failed: %w", err)
	}

	return models.AuthContext{
		UserID:  user.UserID,
		Email:   user.Email,
		IsStaff: user.IsStaff,
		Token:   token,
	}, nil
}

// RequireAdmin resolves token and additionally requires a staff account.
func (a *authService) RequireAdmin(ctx context.Context, token string) (models.AuthContext, error) {
	auth, err := a.Resolve(ctx, token)
	if err != nil {
		return models.AuthContext{}, err
	}
	if !auth.IsStaff {
		return models.AuthContext{}, ErrForbidden
	}
	return auth, nil
}

// Logout deletes the session behind token. Other sessions of the same user
// stay open.
func (a *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}

	err := a.sessionRepository.DeleteSession(ctx, a.hasher.SumString(token))
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return ErrUnauthorized
		}
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", validators.ErrInvalidPassword
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
