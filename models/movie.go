package models

import "time"

// ReleaseDateLayout is the wire and storage layout of movie release dates.
const ReleaseDateLayout = "2006-01-02"

// DefaultPoster is the poster reference assigned when none is supplied.
const DefaultPoster = "posters/default.png"

// Movie is the persisted shape of a catalog movie.
type Movie struct {
	ID          int64
	Title       string
	Synopsis    string
	Duration    int
	ReleaseDate time.Time
	Language    string
	Poster      string
	DirectorID  int64
	GenreIDs    []int64
	ActorIDs    []int64
}

// MovieInput is the body of movie create (PUT semantics) and partial update
// (PATCH semantics). People and genres are given by name and resolved through
// the normalizer into existing or new catalog entities.
type MovieInput struct {
	Title       *string   `json:"title"`
	Synopsis    *string   `json:"synopsis"`
	Duration    *int      `json:"duration"`
	ReleaseDate *string   `json:"release_date"`
	Language    *string   `json:"language"`
	Poster      *string   `json:"poster"`
	Director    *Person   `json:"director"`
	Actors      *[]Person `json:"actors"`
	Genres      *[]string `json:"genres"`
}

// MovieView is the enriched representation returned to clients:
// people and genres are rendered as display strings and the mean rating
// is attached (null when the movie has no ratings).
type MovieView struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Synopsis      string   `json:"synopsis"`
	Duration      int      `json:"duration"`
	ReleaseDate   string   `json:"release_date"`
	Language      string   `json:"language"`
	Poster        string   `json:"poster"`
	Director      string   `json:"director"`
	Actors        []string `json:"actors"`
	Genres        []string `json:"genres"`
	AverageRating *float64 `json:"average_rating"`
}

// MovieFilter is the parsed, validated query of the movie listing.
// Empty strings mean "no filter"; MinRating is nil when not requested.
type MovieFilter struct {
	Title       string
	Synopsis    string
	Language    string
	ReleaseDate string
	Genre       string
	Director    string
	Actor       string
	MinRating   *float64

	Page     int
	PageSize int
}

// Offset returns the row offset of the requested page.
func (f MovieFilter) Offset() uint64 {
	if f.Page < 1 || f.PageSize < 1 {
		return 0
	}
	return uint64((f.Page - 1) * f.PageSize)
}

// MovieAnnotations carries the per-movie data loaded in batch for a page of
// movies: actor and genre display names plus the rating mean.
type MovieAnnotations struct {
	Actors        []string
	Genres        []string
	AverageRating *float64
}
