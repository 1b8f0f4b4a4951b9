package store

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var movieViewColumnNames = []string{
	"id", "title", "synopsis", "duration", "release_date", "language", "poster", "name", "surname",
}

func newTestMovieRepo(t *testing.T) (MovieRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewMovieRepository(newDBFromSQL(db), logger.Nop()), mock
}

// expectBuilt registers a query expectation for the SQL a builder produces.
func expectBuilt(t *testing.T, mock sqlmock.Sqlmock, query string, args []any) *sqlmock.ExpectedQuery {
	t.Helper()
	values := make([]driver.Value, 0, len(args))
	for _, a := range args {
		values = append(values, a)
	}
	return mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs(values...)
}

func TestListMovies(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	filter := models.MovieFilter{Title: "matrix", Page: 2, PageSize: 5}
	query, args, err := buildListMoviesQuery(filter)
	require.NoError(t, err)

	released := time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC)
	expectBuilt(t, mock, query, args).
		WillReturnRows(sqlmock.NewRows(movieViewColumnNames).
			AddRow(int64(7), "The Matrix", "A hacker wakes up", 136, released, "English", models.DefaultPoster, "Lana", "Wachowski"))

	movies, err := repo.ListMovies(testContext(), filter)
	require.NoError(t, err)
	require.Len(t, movies, 1)

	m := movies[0]
	assert.Equal(t, int64(7), m.ID)
	assert.Equal(t, "1999-03-31", m.ReleaseDate)
	assert.Equal(t, "Lana Wachowski", m.Director)
	assert.NotNil(t, m.Actors)
	assert.NotNil(t, m.Genres)
	assert.Nil(t, m.AverageRating)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountMovies(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	filter := models.MovieFilter{Genre: "drama"}
	query, args, err := buildCountMoviesQuery(filter)
	require.NoError(t, err)

	expectBuilt(t, mock, query, args).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(12)))

	count, err := repo.CountMovies(testContext(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestGetMovieAnnotations(t *testing.T) {
	t.Run("no ids runs no queries", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)

		annotations, err := repo.GetMovieAnnotations(testContext(), nil)
		require.NoError(t, err)
		assert.Empty(t, annotations)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("batch", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)
		ids := []int64{1, 2}

		avgQuery, avgArgs, _ := buildAverageRatingsQuery(ids)
		actorsQuery, actorsArgs, _ := buildMovieActorsQuery(ids)
		genresQuery, genresArgs, _ := buildMovieGenresQuery(ids)

		expectBuilt(t, mock, avgQuery, avgArgs).
			WillReturnRows(sqlmock.NewRows([]string{"movie_id", "avg"}).AddRow(int64(1), 7.5))
		expectBuilt(t, mock, actorsQuery, actorsArgs).
			WillReturnRows(sqlmock.NewRows([]string{"movie_id", "name", "surname"}).
				AddRow(int64(1), "Keanu", "Reeves").
				AddRow(int64(1), "Carrie-Anne", "Moss"))
		expectBuilt(t, mock, genresQuery, genresArgs).
			WillReturnRows(sqlmock.NewRows([]string{"movie_id", "name"}).
				AddRow(int64(2), "Comedy"))

		annotations, err := repo.GetMovieAnnotations(testContext(), ids)
		require.NoError(t, err)
		require.Len(t, annotations, 2)

		first := annotations[1]
		require.NotNil(t, first.AverageRating)
		assert.InDelta(t, 7.5, *first.AverageRating, 1e-9)
		assert.Equal(t, []string{"Keanu Reeves", "Carrie-Anne Moss"}, first.Actors)
		assert.Empty(t, first.Genres)

		second := annotations[2]
		assert.Nil(t, second.AverageRating)
		assert.Equal(t, []string{}, second.Actors)
		assert.Equal(t, []string{"Comedy"}, second.Genres)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetMovieView_NotFound(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	query, args, err := buildMovieViewByIDQuery(99)
	require.NoError(t, err)
	expectBuilt(t, mock, query, args).WillReturnRows(sqlmock.NewRows(movieViewColumnNames))

	_, err = repo.GetMovieView(testContext(), 99)
	require.ErrorIs(t, err, ErrMovieNotFound)
}

func TestGetMovie(t *testing.T) {
	repo, mock := newTestMovieRepo(t)
	released := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(getMovie)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "synopsis", "duration", "release_date", "language", "poster", "director_id"}).
			AddRow(int64(3), "Amelie", "Paris", 122, released, "French", models.DefaultPoster, int64(4)))
	mock.ExpectQuery(regexp.QuoteMeta(getMovieGenreIDs)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"category_id"}).AddRow(int64(1)).AddRow(int64(5)))
	mock.ExpectQuery(regexp.QuoteMeta(getMovieActorIDs)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"actor_id"}))

	movie, err := repo.GetMovie(testContext(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), movie.DirectorID)
	assert.Equal(t, []int64{1, 5}, movie.GenreIDs)
	assert.Empty(t, movie.ActorIDs)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieExists(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(movieExists)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.MovieExists(testContext(), 5)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateMovie(t *testing.T) {
	released := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)
	movie := models.Movie{
		Title:       "Inception",
		Synopsis:    "Dreams within dreams",
		Duration:    148,
		ReleaseDate: released,
		Language:    "English",
		Poster:      models.DefaultPoster,
		DirectorID:  2,
		GenreIDs:    []int64{1},
		ActorIDs:    []int64{3, 4},
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)

		genresQuery, _, err := buildInsertMovieLinksQuery("movie_genres", 10, movie.GenreIDs)
		require.NoError(t, err)
		actorsQuery, _, err := buildInsertMovieLinksQuery("movie_actors", 10, movie.ActorIDs)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(insertMovie)).
			WithArgs(movie.Title, movie.Synopsis, movie.Duration, released, movie.Language, movie.Poster, movie.DirectorID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(10)))
		mock.ExpectExec(regexp.QuoteMeta(genresQuery)).
			WithArgs(int64(10), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(actorsQuery)).
			WithArgs(int64(10), int64(3), int64(10), int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		created, err := repo.CreateMovie(testContext(), movie)
		require.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("director deleted concurrently", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta(insertMovie)).
			WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
		mock.ExpectRollback()

		_, err := repo.CreateMovie(testContext(), movie)
		require.ErrorIs(t, err, ErrEntityNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateMovie(t *testing.T) {
	movie := models.Movie{
		ID:          10,
		Title:       "Inception",
		Synopsis:    "Dreams",
		Duration:    148,
		ReleaseDate: time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC),
		Language:    "English",
		Poster:      models.DefaultPoster,
		DirectorID:  2,
		ActorIDs:    []int64{3},
	}
	updateQuery, _, err := buildUpdateMovieQuery(movie)
	require.NoError(t, err)

	t.Run("replaces links", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)

		actorsQuery, _, err := buildInsertMovieLinksQuery("movie_actors", 10, movie.ActorIDs)
		require.NoError(t, err)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(updateQuery)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(deleteMovieGenres)).WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(regexp.QuoteMeta(deleteMovieActors)).WithArgs(int64(10)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta(actorsQuery)).WithArgs(int64(10), int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		_, err = repo.UpdateMovie(testContext(), movie)
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing movie", func(t *testing.T) {
		repo, mock := newTestMovieRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(updateQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.UpdateMovie(testContext(), movie)
		require.ErrorIs(t, err, ErrMovieNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteMovie(t *testing.T) {
	repo, mock := newTestMovieRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteMovie)).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.ErrorIs(t, repo.DeleteMovie(testContext(), 1), ErrMovieNotFound)
}
