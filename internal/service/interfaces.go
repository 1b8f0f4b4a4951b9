// Package service holds the domain logic of the catalog: the session gate,
// user self-service, the entity normalizer, the movie query service, and
// the rating ledger. Services are transport-agnostic; HTTP concerns stay in
// internal/handler/http.
package service

import (
	"context"

	"github.com/MKhiriev/go-film-catalog/models"
)

// AuthService registers users and resolves session tokens into identities.
type AuthService interface {
	Register(ctx context.Context, user models.User) (models.User, error)
	// Login verifies credentials and opens a new session. The returned
	// session carries the raw token; only its hash is persisted.
	Login(ctx context.Context, credentials models.Credentials) (models.Session, error)
	// Resolve returns the identity behind token or ErrUnauthorized.
	Resolve(ctx context.Context, token string) (models.AuthContext, error)
	// RequireAdmin resolves token and returns ErrForbidden for non-staff users.
	RequireAdmin(ctx context.Context, token string) (models.AuthContext, error)
	Logout(ctx context.Context, token string) error
}

// UserService is the authenticated user's self-service.
type UserService interface {
	GetProfile(ctx context.Context, auth models.AuthContext) (models.User, error)
	UpdateProfile(ctx context.Context, auth models.AuthContext, update models.UserUpdate) (models.User, error)
	DeleteAccount(ctx context.Context, auth models.AuthContext) error
}

// CategoryService manages genres. Names are normalized before they reach
// the store, so equivalent spellings resolve to one row.
type CategoryService interface {
	GetOrCreateCategory(ctx context.Context, category models.Category) (models.Category, bool, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// PersonService manages actors or directors, depending on the instance.
type PersonService interface {
	GetOrCreatePerson(ctx context.Context, person models.Person) (models.Person, bool, error)
	ListPeople(ctx context.Context) ([]models.Person, error)
	GetPerson(ctx context.Context, id int64) (models.Person, error)
	UpdatePerson(ctx context.Context, person models.Person) (models.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// MovieService lists, filters, and administers movies.
type MovieService interface {
	ListMovies(ctx context.Context, filter models.MovieFilter) (models.Page[models.MovieView], error)
	GetMovie(ctx context.Context, id int64) (models.MovieView, error)
	CreateMovie(ctx context.Context, input models.MovieInput) (models.MovieView, error)
	// UpdateMovie overwrites the movie with input. When partial is false
	// every required field must be present.
	UpdateMovie(ctx context.Context, id int64, input models.MovieInput, partial bool) (models.MovieView, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// RatingService is the rating ledger: at most one rating per user and movie.
type RatingService interface {
	CreateRating(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error)
	ListRatingsForMovie(ctx context.Context, movieID int64) ([]models.RatingView, error)
	GetOwnRating(ctx context.Context, auth models.AuthContext, movieID int64) (models.Rating, error)
	UpdateOwnRating(ctx context.Context, auth models.AuthContext, movieID int64, input models.RatingInput) (models.Rating, error)
	DeleteOwnRating(ctx context.Context, auth models.AuthContext, movieID int64) error
	ListOwnRatings(ctx context.Context, auth models.AuthContext) ([]models.UserRating, error)
}

// RatingServiceWrapper defines middleware composition for RatingService.
// Implementations wrap an existing RatingService to add behavior such as
// validation.
type RatingServiceWrapper interface {
	Wrap(RatingService) RatingService
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
