package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/jackc/pgerrcode"
)

// movieRepository is the PostgreSQL implementation of [MovieRepository].
// Listing, counting, and enrichment use the squirrel builders from
// sql_queries.go; writes run in a transaction so that a movie never exists
// without its links.
type movieRepository struct {
	*DB
	logger *logger.Logger
}

// NewMovieRepository constructs a [MovieRepository] backed by db.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{DB: db, logger: logger}
}

// ListMovies implements [MovieRepository].
func (r *movieRepository) ListMovies(ctx context.Context, filter models.MovieFilter) ([]models.MovieView, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMoviesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.ListMovies").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "movieRepository.ListMovies").
			Int("page", filter.Page).
			Msg("failed to execute movie listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.MovieView, 0, filter.PageSize)
	for rows.Next() {
		movie, scanErr := scanMovieView(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "movieRepository.ListMovies").Msg("failed to scan movie row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		movies = append(movies, movie)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "movieRepository.ListMovies").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return movies, nil
}

// CountMovies implements [MovieRepository].
func (r *movieRepository) CountMovies(ctx context.Context, filter models.MovieFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountMoviesQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.CountMovies").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "movieRepository.CountMovies").Msg("failed to count movies")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// GetMovieAnnotations implements [MovieRepository]. Every requested id gets
// an entry, with empty slices and a nil mean when there is nothing to attach.
func (r *movieRepository) GetMovieAnnotations(ctx context.Context, movieIDs []int64) (map[int64]models.MovieAnnotations, error) {
	annotations := make(map[int64]models.MovieAnnotations, len(movieIDs))
	if len(movieIDs) == 0 {
		return annotations, nil
	}
	for _, id := range movieIDs {
		annotations[id] = models.MovieAnnotations{Actors: []string{}, Genres: []string{}}
	}

	if err := r.loadAverageRatings(ctx, movieIDs, annotations); err != nil {
		return nil, err
	}
	if err := r.loadActors(ctx, movieIDs, annotations); err != nil {
		return nil, err
	}
	if err := r.loadGenres(ctx, movieIDs, annotations); err != nil {
		return nil, err
	}

	return annotations, nil
}

func (r *movieRepository) loadAverageRatings(ctx context.Context, movieIDs []int64, annotations map[int64]models.MovieAnnotations) error {
	query, args, err := buildAverageRatingsQuery(movieIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.eachRow(ctx, "movieRepository.loadAverageRatings", query, args, func(rows *sql.Rows) error {
		var movieID int64
		var avg float64
		if err := rows.Scan(&movieID, &avg); err != nil {
			return err
		}
		a := annotations[movieID]
		a.AverageRating = &avg
		annotations[movieID] = a
		return nil
	})
}

func (r *movieRepository) loadActors(ctx context.Context, movieIDs []int64, annotations map[int64]models.MovieAnnotations) error {
	query, args, err := buildMovieActorsQuery(movieIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.eachRow(ctx, "movieRepository.loadActors", query, args, func(rows *sql.Rows) error {
		var movieID int64
		var actor models.Person
		if err := rows.Scan(&movieID, &actor.Name, &actor.Surname); err != nil {
			return err
		}
		a := annotations[movieID]
		a.Actors = append(a.Actors, actor.DisplayName())
		annotations[movieID] = a
		return nil
	})
}

func (r *movieRepository) loadGenres(ctx context.Context, movieIDs []int64, annotations map[int64]models.MovieAnnotations) error {
	query, args, err := buildMovieGenresQuery(movieIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.eachRow(ctx, "movieRepository.loadGenres", query, args, func(rows *sql.Rows) error {
		var movieID int64
		var genre string
		if err := rows.Scan(&movieID, &genre); err != nil {
			return err
		}
		a := annotations[movieID]
		a.Genres = append(a.Genres, genre)
		annotations[movieID] = a
		return nil
	})
}

// eachRow runs query and calls scan for every row.
func (r *movieRepository) eachRow(ctx context.Context, funcName, query string, args []any, scan func(*sql.Rows) error) error {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

// GetMovieView implements [MovieRepository]. Annotations are not loaded.
func (r *movieRepository) GetMovieView(ctx context.Context, id int64) (models.MovieView, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMovieViewByIDQuery(id)
	if err != nil {
		return models.MovieView{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	movie, err := scanMovieView(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MovieView{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "movieRepository.GetMovieView").Int64("movie_id", id).Msg("failed to get movie")
		return models.MovieView{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return movie, nil
}

// GetMovie implements [MovieRepository].
func (r *movieRepository) GetMovie(ctx context.Context, id int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	var movie models.Movie
	err := r.DB.QueryRowContext(ctx, getMovie, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Synopsis,
		&movie.Duration,
		&movie.ReleaseDate,
		&movie.Language,
		&movie.Poster,
		&movie.DirectorID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).Str("func", "movieRepository.GetMovie").Int64("movie_id", id).Msg("failed to get movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if movie.GenreIDs, err = r.linkedIDs(ctx, getMovieGenreIDs, id); err != nil {
		return models.Movie{}, err
	}
	if movie.ActorIDs, err = r.linkedIDs(ctx, getMovieActorIDs, id); err != nil {
		return models.Movie{}, err
	}

	return movie, nil
}

func (r *movieRepository) linkedIDs(ctx context.Context, query string, movieID int64) ([]int64, error) {
	ids := make([]int64, 0, 8)
	err := r.eachRow(ctx, "movieRepository.GetMovie", query, []any{movieID}, func(rows *sql.Rows) error {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return err
		}
		ids = append(ids, id)
		return nil
	})
	return ids, err
}

// MovieExists implements [MovieRepository].
func (r *movieRepository) MovieExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.DB.QueryRowContext(ctx, movieExists, id).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "movieRepository.MovieExists").Int64("movie_id", id).Msg("failed to check movie")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return exists, nil
}

// CreateMovie implements [MovieRepository].
func (r *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.CreateMovie").Msg("failed to begin transaction")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, insertMovie,
		movie.Title,
		movie.Synopsis,
		movie.Duration,
		movie.ReleaseDate,
		movie.Language,
		movie.Poster,
		movie.DirectorID,
	).Scan(&movie.ID)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.CreateMovie").Str("title", movie.Title).Msg("failed to insert movie")
		return models.Movie{}, movieWriteError(err)
	}

	if err = insertMovieLinks(ctx, tx, movie); err != nil {
		log.Err(err).Str("func", "movieRepository.CreateMovie").Int64("movie_id", movie.ID).Msg("failed to link movie")
		return models.Movie{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "movieRepository.CreateMovie").Msg("failed to commit transaction")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().Str("func", "movieRepository.CreateMovie").Int64("movie_id", movie.ID).Msg("movie created")
	return movie, nil
}

// UpdateMovie implements [MovieRepository].
func (r *movieRepository) UpdateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateMovieQuery(movie)
	if err != nil {
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.UpdateMovie").Msg("failed to begin transaction")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "movieRepository.UpdateMovie").Int64("movie_id", movie.ID).Msg("failed to update movie")
		return models.Movie{}, movieWriteError(err)
	}
	if err = expectAffected(result, ErrMovieNotFound); err != nil {
		return models.Movie{}, err
	}

	for _, q := range []string{deleteMovieGenres, deleteMovieActors} {
		if _, err = tx.ExecContext(ctx, q, movie.ID); err != nil {
			log.Err(err).Str("func", "movieRepository.UpdateMovie").Int64("movie_id", movie.ID).Msg("failed to unlink movie")
			return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = insertMovieLinks(ctx, tx, movie); err != nil {
		log.Err(err).Str("func", "movieRepository.UpdateMovie").Int64("movie_id", movie.ID).Msg("failed to link movie")
		return models.Movie{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "movieRepository.UpdateMovie").Msg("failed to commit transaction")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return movie, nil
}

// DeleteMovie implements [MovieRepository]. Links and ratings cascade.
func (r *movieRepository) DeleteMovie(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, deleteMovie, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "movieRepository.DeleteMovie").Int64("movie_id", id).Msg("failed to delete movie")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrMovieNotFound)
}

func insertMovieLinks(ctx context.Context, tx *sql.Tx, movie models.Movie) error {
	links := []struct {
		table string
		ids   []int64
	}{
		{"movie_genres", movie.GenreIDs},
		{"movie_actors", movie.ActorIDs},
	}

	for _, link := range links {
		if len(link.ids) == 0 {
			continue
		}

		query, args, err := buildInsertMovieLinksQuery(link.table, movie.ID, link.ids)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return movieWriteError(err)
		}
	}

	return nil
}

// movieWriteError maps a failed movie write. A foreign-key violation means a
// referenced director, actor, or category was deleted concurrently.
func movieWriteError(err error) error {
	if postgresError(err) == pgerrcode.ForeignKeyViolation {
		return fmt.Errorf("%w: %w", ErrEntityNotFound, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func scanMovieView(row rowScanner) (models.MovieView, error) {
	var (
		movie           models.MovieView
		releaseDate     time.Time
		directorName    string
		directorSurname string
	)

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Synopsis,
		&movie.Duration,
		&releaseDate,
		&movie.Language,
		&movie.Poster,
		&directorName,
		&directorSurname,
	)
	if err != nil {
		return models.MovieView{}, err
	}

	movie.ReleaseDate = releaseDate.Format(models.ReleaseDateLayout)
	movie.Director = models.Person{Name: directorName, Surname: directorSurname}.DisplayName()
	movie.Actors = []string{}
	movie.Genres = []string{}

	return movie, nil
}
