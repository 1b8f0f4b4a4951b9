// Package store is the PostgreSQL persistence layer of the catalog.
//
// Repositories talk to a shared [DB] pool through database/sql and the pgx
// driver. Static statements live in sql_queries.go as constants; dynamic
// statements (movie filtering, counting, enrichment, and partial updates)
// are built with squirrel in the same file.
package store

import (
	"context"

	"github.com/MKhiriev/go-film-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user (with PasswordHash already set) and returns the
	// stored row. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpdateUser overwrites the profile columns of user.UserID.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	// DeleteUser removes the account; sessions and ratings cascade.
	DeleteUser(ctx context.Context, userID int64) error
}

// SessionRepository stores hashed session tokens.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	// FindSessionUser resolves a token hash to its owner.
	// Returns ErrSessionNotFound when the hash is unknown.
	FindSessionUser(ctx context.Context, tokenHash string) (models.User, error)
	DeleteSession(ctx context.Context, tokenHash string) error
}

// CategoryRepository manages normalized movie genres.
type CategoryRepository interface {
	// GetOrCreateCategory returns the category named name, inserting it when
	// absent. created reports whether this call inserted the row.
	GetOrCreateCategory(ctx context.Context, name string) (category models.Category, created bool, err error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

// PersonRepository manages normalized people. One instance serves actors and
// another serves directors.
type PersonRepository interface {
	// GetOrCreatePerson returns the person with person.Name and
	// person.Surname, inserting it when absent.
	GetOrCreatePerson(ctx context.Context, person models.Person) (stored models.Person, created bool, err error)
	ListPeople(ctx context.Context) ([]models.Person, error)
	GetPerson(ctx context.Context, id int64) (models.Person, error)
	UpdatePerson(ctx context.Context, person models.Person) (models.Person, error)
	DeletePerson(ctx context.Context, id int64) error
}

// MovieRepository runs the movie query builder and movie CRUD.
type MovieRepository interface {
	// ListMovies returns one page of movies matching filter, ordered by
	// title then id, with the director display name filled in.
	ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.MovieView, error)
	// CountMovies counts all movies matching filter.
	CountMovies(ctx context.Context, filter models.MovieFilter) (int64, error)
	// GetMovieAnnotations loads actors, genres, and the rating mean of the
	// given movies in batch.
	GetMovieAnnotations(ctx context.Context, movieIDs []int64) (map[int64]models.MovieAnnotations, error)

	GetMovieView(ctx context.Context, id int64) (models.MovieView, error)
	// GetMovie returns the stored row including genre and actor ids.
	GetMovie(ctx context.Context, id int64) (models.Movie, error)
	MovieExists(ctx context.Context, id int64) (bool, error)
	// CreateMovie inserts the movie and its genre and actor links atomically.
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	// UpdateMovie overwrites the movie row and replaces its links atomically.
	UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	DeleteMovie(ctx context.Context, id int64) error
}

// RatingRepository is the rating ledger.
type RatingRepository interface {
	// CreateRating locks the movie row and inserts the rating in one
	// transaction. Returns ErrMovieNotFound or ErrRatingAlreadyExists.
	CreateRating(ctx context.Context, rating models.Rating) (models.Rating, error)
	ListMovieRatings(ctx context.Context, movieID int64) ([]models.RatingView, error)
	GetUserRating(ctx context.Context, userID, movieID int64) (models.Rating, error)
	UpdateUserRating(ctx context.Context, rating models.Rating) (models.Rating, error)
	DeleteUserRating(ctx context.Context, userID, movieID int64) error
	ListUserRatings(ctx context.Context, userID int64) ([]models.UserRating, error)
}
