package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-film-catalog/internal/config"
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
)

// moviesPath is the path the next and previous page links point at.
const moviesPath = "/movies/"

type movieService struct {
	movieRepository store.MovieRepository

	// Referenced entities are resolved through the normalized catalog.
	categoryService CategoryService
	actorService    PersonService
	directorService PersonService

	validator validators.Validator

	defaultPageSize int
	maxPageSize     int

	logger *logger.Logger
}

func NewMovieService(
	movieRepository store.MovieRepository,
	categoryService CategoryService,
	actorService PersonService,
	directorService PersonService,
	cfg config.App,
	logger *logger.Logger,
) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		categoryService: categoryService,
		actorService:    actorService,
		directorService: directorService,
		validator:       validators.NewCatalogValidator(),
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
		logger:          logger,
	}
}

// ListMovies returns one page of the filtered catalog.
//
// The page must exist: page > max(1, ceil(count/page_size)) is
// ErrInvalidPage, so page 1 of an empty result is still valid.
func (s *movieService) ListMovies(ctx context.Context, filter models.MovieFilter) (models.Page[models.MovieView], error) {
	filter = s.withPageDefaults(filter)

	count, err := s.movieRepository.CountMovies(ctx, filter)
	if err != nil {
		return models.Page[models.MovieView]{}, err
	}

	lastPage := max(1, int((count+int64(filter.PageSize)-1)/int64(filter.PageSize)))
	if filter.Page > lastPage {
		logger.FromContext(ctx).Debug().
			Int("page", filter.Page).
			Int("last_page", lastPage).
			Msg("requested page is out of range")
		return models.Page[models.MovieView]{}, ErrInvalidPage
	}

	movies, err := s.movieRepository.ListMovies(ctx, filter)
	if err != nil {
		return models.Page[models.MovieView]{}, err
	}
	if err = s.annotate(ctx, movies); err != nil {
		return models.Page[models.MovieView]{}, err
	}

	page := models.Page[models.MovieView]{
		Count:   count,
		Results: movies,
	}
	if filter.Page < lastPage {
		next := s.pageURL(filter, filter.Page+1)
		page.Next = &next
	}
	if filter.Page > 1 {
		previous := s.pageURL(filter, filter.Page-1)
		page.Previous = &previous
	}

	return page, nil
}

func (s *movieService) withPageDefaults(filter models.MovieFilter) models.MovieFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = s.defaultPageSize
	}
	if s.maxPageSize > 0 && filter.PageSize > s.maxPageSize {
		filter.PageSize = s.maxPageSize
	}
	return filter
}

// pageURL renders the relative link of page with the same filters.
func (s *movieService) pageURL(filter models.MovieFilter, page int) string {
	query := url.Values{}
	set := func(key, value string) {
		if value != "" {
			query.Set(key, value)
		}
	}

	set("title", filter.Title)
	set("synopsis", filter.Synopsis)
	set("language", filter.Language)
	set("release_date", filter.ReleaseDate)
	set("genre", filter.Genre)
	set("director", filter.Director)
	set("actor", filter.Actor)
	if filter.MinRating != nil {
		set("rating", strconv.FormatFloat(*filter.MinRating, 'f', -1, 64))
	}
	if filter.PageSize != s.defaultPageSize {
		set("page_size", strconv.Itoa(filter.PageSize))
	}
	set("page", strconv.Itoa(page))

	return moviesPath + "?" + query.Encode()
}

// annotate attaches actors, genres, and the rating mean in one batch.
func (s *movieService) annotate(ctx context.Context, movies []models.MovieView) error {
	if len(movies) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(movies))
	for _, m := range movies {
		ids = append(ids, m.ID)
	}

	annotations, err := s.movieRepository.GetMovieAnnotations(ctx, ids)
	if err != nil {
		return err
	}

	for i := range movies {
		a, ok := annotations[movies[i].ID]
		if !ok {
			continue
		}
		movies[i].Actors = a.Actors
		movies[i].Genres = a.Genres
		movies[i].AverageRating = a.AverageRating
	}

	return nil
}

func (s *movieService) GetMovie(ctx context.Context, id int64) (models.MovieView, error) {
	movie, err := s.movieRepository.GetMovieView(ctx, id)
	if err != nil {
		return models.MovieView{}, err
	}

	movies := []models.MovieView{movie}
	if err = s.annotate(ctx, movies); err != nil {
		return models.MovieView{}, err
	}

	return movies[0], nil
}

// CreateMovie stores a new movie. The director, actors, and genres are
// named in input and resolved with get-or-create.
func (s *movieService) CreateMovie(ctx context.Context, input models.MovieInput) (models.MovieView, error) {
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.MovieView{}, err
	}

	movie, err := s.apply(ctx, models.Movie{Poster: models.DefaultPoster}, input)
	if err != nil {
		return models.MovieView{}, err
	}

	created, err := s.movieRepository.CreateMovie(ctx, movie)
	if err != nil {
		return models.MovieView{}, fmt.Errorf("movie creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("movie_id", created.ID).Str("title", created.Title).Msg("movie created")
	return s.GetMovie(ctx, created.ID)
}

// UpdateMovie merges input into the stored movie and overwrites it. A
// given actors or genres list replaces the old one.
func (s *movieService) UpdateMovie(ctx context.Context, id int64, input models.MovieInput, partial bool) (models.MovieView, error) {
	var err error
	if partial {
		err = s.validator.Validate(ctx, input, validators.MoviePatchFields...)
	} else {
		err = s.validator.Validate(ctx, input)
	}
	if err != nil {
		return models.MovieView{}, err
	}

	stored, err := s.movieRepository.GetMovie(ctx, id)
	if err != nil {
		return models.MovieView{}, err
	}

	if !partial {
		// A full update resets what the body leaves out.
		stored.Poster = models.DefaultPoster
		stored.GenreIDs = nil
		stored.ActorIDs = nil
	}

	movie, err := s.apply(ctx, stored, input)
	if err != nil {
		return models.MovieView{}, err
	}

	if _, err = s.movieRepository.UpdateMovie(ctx, movie); err != nil {
		return models.MovieView{}, fmt.Errorf("movie update failed: %w", err)
	}

	return s.GetMovie(ctx, id)
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	return s.movieRepository.DeleteMovie(ctx, id)
}

// apply copies the fields set in input onto movie, resolving referenced
// entities into ids.
func (s *movieService) apply(ctx context.Context, movie models.Movie, input models.MovieInput) (models.Movie, error) {
	if input.Title != nil {
		movie.Title = Normalize(*input.Title)
		if movie.Title == "" {
			return models.Movie{}, validators.ErrInvalidTitle
		}
	}
	if input.Synopsis != nil {
		movie.Synopsis = *input.Synopsis
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.ReleaseDate != nil {
		released, err := time.Parse(models.ReleaseDateLayout, *input.ReleaseDate)
		if err != nil {
			return models.Movie{}, validators.ErrInvalidReleaseDate
		}
		movie.ReleaseDate = released
	}
	if input.Language != nil {
		movie.Language = strings.TrimSpace(*input.Language)
	}
	if input.Poster != nil {
		movie.Poster = strings.TrimSpace(*input.Poster)
		if movie.Poster == "" {
			movie.Poster = models.DefaultPoster
		}
	}

	if input.Director != nil {
		director, _, err := s.directorService.GetOrCreatePerson(ctx, *input.Director)
		if err != nil {
			return models.Movie{}, fmt.Errorf("director: %w", err)
		}
		movie.DirectorID = director.ID
	}

	if input.Actors != nil {
		movie.ActorIDs = make([]int64, 0, len(*input.Actors))
		for _, a := range *input.Actors {
			actor, _, err := s.actorService.GetOrCreatePerson(ctx, a)
			if err != nil {
				return models.Movie{}, fmt.Errorf("actors: %w", err)
			}
			if !slices.Contains(movie.ActorIDs, actor.ID) {
				movie.ActorIDs = append(movie.ActorIDs, actor.ID)
			}
		}
	}

	if input.Genres != nil {
		movie.GenreIDs = make([]int64, 0, len(*input.Genres))
		for _, g := range *input.Genres {
			genre, _, err := s.categoryService.GetOrCreateCategory(ctx, models.Category{Name: g})
			if err != nil {
				return models.Movie{}, fmt.Errorf("genres: %w", err)
			}
			if !slices.Contains(movie.GenreIDs, genre.ID) {
				movie.GenreIDs = append(movie.GenreIDs, genre.ID)
			}
		}
	}

	return movie, nil
}
