package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/mock"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSessionKey = "test-session-key"

// newTestAuthSvc builds an authService over gomock repositories with the
// cheapest bcrypt cost.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)

	svc := NewAuthService(users, sessions, testSessionKey, logger.Nop()).(*authService)
	svc.passwordCost = bcrypt.MinCost

	return svc, users, sessions
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "ana@example.com", u.Email)
			assert.Empty(t, u.Password, "plain password must not reach the store")
			assert.False(t, u.IsStaff)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("Secret123")))
			u.UserID = 1
			return u, nil
		},
	)

	created, err := svc.Register(ctx, models.User{
		FirstName: "Ana",
		Email:     "Ana@Example.com",
		Password:  "Secret123",
		IsStaff:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestAuthService_Register_ValidationBeforeStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(t, ctrl)

	tests := []struct {
		name string
		user models.User
		want error
	}{
		{name: "weak password", user: models.User{Email: "a@b.io", Password: "password"}, want: validators.ErrInvalidPassword},
		{name: "bad email", user: models.User{Email: "nope", Password: "Secret123"}, want: validators.ErrInvalidEmail},
		{name: "digits in name", user: models.User{FirstName: "R2D2", Email: "a@b.io", Password: "Secret123"}, want: validators.ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.user)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, _ := newTestAuthSvc(t, ctrl)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), models.User{Email: "a@b.io", Password: "Secret123"})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: 7, Email: "ana@example.com", PasswordHash: mustHash(t, "Secret123")}

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, "ana@example.com").Return(user, nil),
		sessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Session) error {
				assert.Equal(t, int64(7), s.UserID)
				assert.Equal(t, utils.HashString(s.Token, testSessionKey), s.TokenHash)
				return nil
			},
		),
	)

	session, err := svc.Login(ctx, models.Credentials{Email: " ANA@example.com", Password: "Secret123"})
	require.NoError(t, err)
	assert.Len(t, session.Token, 40)
	assert.NotEqual(t, session.Token, session.TokenHash)
}

func TestAuthService_Login_Failures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, users, _ := newTestAuthSvc(t, ctrl)
		users.EXPECT().FindUserByEmail(gomock.Any(), "x@y.io").Return(models.User{}, store.ErrUserNotFound)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "x@y.io", Password: "Secret123"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, users, _ := newTestAuthSvc(t, ctrl)
		users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).
			Return(models.User{UserID: 1, PasswordHash: mustHash(t, "Secret123")}, nil)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "x@y.io", Password: "Secret124"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _ := newTestAuthSvc(t, ctrl)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "x@y.io"})
		require.ErrorIs(t, err, validators.ErrMissingField)
	})

	t.Run("store failure is not masked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, users, _ := newTestAuthSvc(t, ctrl)
		dbErr := errors.New("connection reset")
		users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "x@y.io", Password: "Secret123"})
		require.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

// ── Resolve / RequireAdmin / Logout ──────────────────────────────────────────

func TestAuthService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "")
	require.ErrorIs(t, err, ErrUnauthorized)

	sessions.EXPECT().FindSessionUser(ctx, utils.HashString("unknown", testSessionKey)).
		Return(models.User{}, store.ErrSessionNotFound)
	_, err = svc.Resolve(ctx, "unknown")
	require.ErrorIs(t, err, ErrUnauthorized)

	sessions.EXPECT().FindSessionUser(ctx, utils.HashString("good", testSessionKey)).
		Return(models.User{UserID: 2, Email: "bo@example.com"}, nil)
	auth, err := svc.Resolve(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, models.AuthContext{UserID: 2, Email: "bo@example.com", Token: "good"}, auth)
}

func TestAuthService_RequireAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	sessions.EXPECT().FindSessionUser(ctx, gomock.Any()).Return(models.User{UserID: 2}, nil)
	_, err := svc.RequireAdmin(ctx, "regular")
	require.ErrorIs(t, err, ErrForbidden)

	sessions.EXPECT().FindSessionUser(ctx, gomock.Any()).Return(models.User{UserID: 3, IsStaff: true}, nil)
	auth, err := svc.RequireAdmin(ctx, "staff")
	require.NoError(t, err)
	assert.True(t, auth.IsStaff)
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, sessions := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	require.ErrorIs(t, svc.Logout(ctx, ""), ErrUnauthorized)

	sessions.EXPECT().DeleteSession(ctx, utils.HashString("tok", testSessionKey)).Return(nil)
	require.NoError(t, svc.Logout(ctx, "tok"))

	sessions.EXPECT().DeleteSession(ctx, gomock.Any()).Return(store.ErrSessionNotFound)
	require.ErrorIs(t, svc.Logout(ctx, "gone"), ErrUnauthorized)
}
