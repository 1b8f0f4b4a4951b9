package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-film-catalog/internal/service"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solaris = models.MovieView{
	ID:          9,
	Title:       "Solaris",
	Synopsis:    "A psychologist is sent to a station orbiting a distant planet.",
	Duration:    167,
	ReleaseDate: "1972-03-20",
	Language:    "Russian",
	Poster:      models.DefaultPoster,
	Director:    "Andrei Tarkovsky",
	Actors:      []string{"Natalya Bondarchuk", "Donatas Banionis"},
	Genres:      []string{"Drama", "Science Fiction"},
}

// ─────────────────────────────────────────────
// GET /movies/
// ─────────────────────────────────────────────

func TestListMovies_PassesParsedFilter(t *testing.T) {
	next := "/movies/?page=3&page_size=1&title=sol"
	prev := "/movies/?page=1&page_size=1&title=sol"

	var got models.MovieFilter
	router := newTestRouter(t, &service.Services{
		MovieService: &mockMovieService{
			listFn: func(_ context.Context, filter models.MovieFilter) (models.Page[models.MovieView], error) {
				got = filter
				return models.Page[models.MovieView]{Count: 3, Next: &next, Previous: &prev, Results: []models.MovieView{solaris}}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/movies/?title=sol&page=2&page_size=1", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.MovieFilter{Title: "sol", Page: 2, PageSize: 1}, got)

	var page models.Page[models.MovieView]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(3), page.Count)
	require.NotNil(t, page.Next)
	assert.Equal(t, next, *page.Next)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "Solaris", page.Results[0].Title)
	assert.Nil(t, page.Results[0].AverageRating)
}

func TestListMovies_EmptyPageSerializesArray(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		MovieService: &mockMovieService{
			listFn: func(context.Context, models.MovieFilter) (models.Page[models.MovieView], error) {
				return models.Page[models.MovieView]{}, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodGet, "/movies/", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"next":null,"previous":null,"results":[]}`, rec.Body.String())
}

func TestListMovies_Errors(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		svcErr    error
		status    int
		wantError string
	}{
		{
			name:      "unknown parameter",
			target:    "/movies/?titel=x",
			status:    http.StatusBadRequest,
			wantError: "invalid parameters: titel",
		},
		{
			name:      "page out of range",
			target:    "/movies/?page=4",
			svcErr:    service.ErrInvalidPage,
			status:    http.StatusBadRequest,
			wantError: "invalid page",
		},
		{
			name:   "store failure",
			target: "/movies/",
			svcErr: fmt.Errorf("%w: timeout", store.ErrExecutingQuery),
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, &service.Services{
				MovieService: &mockMovieService{
					listFn: func(context.Context, models.MovieFilter) (models.Page[models.MovieView], error) {
						return models.Page[models.MovieView]{}, tt.svcErr
					},
				},
			})

			rec := doRequest(t, router, http.MethodGet, tt.target, "", "")

			assert.Equal(t, tt.status, rec.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rec))
			} else {
				assert.NotContains(t, rec.Body.String(), "timeout")
			}
		})
	}
}

// ─────────────────────────────────────────────
// GET /movies/{id}/
// ─────────────────────────────────────────────

func TestGetMovie(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		MovieService: &mockMovieService{
			getFn: func(_ context.Context, id int64) (models.MovieView, error) {
				if id == solaris.ID {
					return solaris, nil
				}
				return models.MovieView{}, store.ErrMovieNotFound
			},
		},
	})

	tests := []struct {
		target string
		status int
	}{
		{"/movies/9/", http.StatusOK},
		{"/movies/9", http.StatusOK},
		{"/movies/10/", http.StatusNotFound},
		{"/movies/abc/", http.StatusNotFound},
		{"/movies/0/", http.StatusNotFound},
		{"/movies/-1/", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.target, "", "")

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"director":"Andrei Tarkovsky"`)
			}
		})
	}
}

// ─────────────────────────────────────────────
// POST /movies/, PUT/PATCH/DELETE /movies/{id}/
// ─────────────────────────────────────────────

func TestCreateMovie(t *testing.T) {
	body := `{"title":"solaris","synopsis":"A psychologist is sent to a station orbiting a distant planet.","duration":167,` +
		`"release_date":"1972-03-20","language":"Russian","director":{"name":"andrei","surname":"TARKOVSKY"},` +
		`"actors":[{"name":"Natalya","surname":"Bondarchuk"}],"genres":["drama"]}`

	router := newTestRouter(t, &service.Services{
		MovieService: &mockMovieService{
			createFn: func(_ context.Context, input models.MovieInput) (models.MovieView, error) {
				require.NotNil(t, input.Title)
				assert.Equal(t, "solaris", *input.Title)
				require.NotNil(t, input.Director)
				assert.Equal(t, "TARKOVSKY", input.Director.Surname)
				require.NotNil(t, input.Genres)
				assert.Equal(t, []string{"drama"}, *input.Genres)
				assert.Nil(t, input.Poster)
				return solaris, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/movies/", body, adminAuth.Token)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"id":9`)
}

func TestCreateMovie_ValidationError(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		MovieService: &mockMovieService{
			createFn: func(context.Context, models.MovieInput) (models.MovieView, error) {
				return models.MovieView{}, fmt.Errorf("%w: title", validators.ErrMissingField)
			},
		},
	})

	rec := doRequest(t, router, http.MethodPost, "/movies/", `{"duration":10}`, adminAuth.Token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required field is missing: title", errorMessage(t, rec))
}

func TestUpdateMovie_PutIsFullPatchIsPartial(t *testing.T) {
	type call struct {
		id      int64
		partial bool
	}
	var calls []call

	router := newTestRouter(t, &service.Services{
		MovieService: &mockMovieService{
			updateFn: func(_ context.Context, id int64, input models.MovieInput, partial bool) (models.MovieView, error) {
				calls = append(calls, call{id: id, partial: partial})
				if id != solaris.ID {
					return models.MovieView{}, store.ErrMovieNotFound
				}
				view := solaris
				if input.Title != nil {
					view.Title = *input.Title
				}
				return view, nil
			},
		},
	})

	rec := doRequest(t, router, http.MethodPut, "/movies/9/", `{"title":"Solaris (1972)"}`, adminAuth.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Solaris (1972)"`)

	rec = doRequest(t, router, http.MethodPatch, "/movies/9/", `{"language":"ru"}`, adminAuth.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, "/movies/12/", `{"language":"ru"}`, adminAuth.Token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	assert.Equal(t, []call{{9, false}, {9, true}, {12, true}}, calls)
}

func TestDeleteMovie(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		MovieService: &mockMovieService{
			deleteFn: func(_ context.Context, id int64) error {
				if id == solaris.ID {
					return nil
				}
				return store.ErrMovieNotFound
			},
		},
	})

	rec := doRequest(t, router, http.MethodDelete, "/movies/9/", "", adminAuth.Token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = doRequest(t, router, http.MethodDelete, "/movies/10/", "", adminAuth.Token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrMovieNotFound.Error(), errorMessage(t, rec))
}
