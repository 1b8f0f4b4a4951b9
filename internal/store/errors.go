package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registration or a profile update
	// collides with the users_email_key constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSessionNotFound is returned when a token hash is not in the
	// sessions table.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrMovieNotFound is returned when a movie id does not exist.
	ErrMovieNotFound = errors.New("movie was not found")

	// ErrRatingNotFound is returned when the user has not rated the movie.
	ErrRatingNotFound = errors.New("rating was not found")

	// ErrRatingAlreadyExists is returned when ratings_user_movie_key fires:
	// a user rates a movie at most once.
	ErrRatingAlreadyExists = errors.New("you have already rated this movie")

	// ErrEntityNotFound is returned when a category, actor, or director id
	// does not exist.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrEntityAlreadyExists is returned when renaming a category, actor, or
	// director collides with an existing normalized entity.
	ErrEntityAlreadyExists = errors.New("entity already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
