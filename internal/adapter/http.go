package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-film-catalog/internal/config"
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/models"
	"github.com/go-resty/resty/v2"
)

const sessionCookieName = "session"

type httpCatalogAdapter struct {
	client *utils.HTTPClient

	sessionToken string

	logger *logger.Logger
}

// NewHTTPCatalogAdapter constructs the REST implementation of
// [CatalogAdapter]. The base URL is taken from cfg.BaseAddress; a missing
// scheme defaults to http.
func NewHTTPCatalogAdapter(cfg *config.ClientConfig, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpCatalogAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [CatalogAdapter]. It POSTs the credentials to
// /users/login/ and keeps the "session" cookie of the response.
func (h *httpCatalogAdapter) Login(ctx context.Context, credentials models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/users/login/")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			h.sessionToken = cookie.Value
			h.logger.Debug().Str("email", credentials.Email).Msg("session opened")
			return nil
		}
	}
	return ErrNoSessionCookie
}

// CheckAdmin implements [CatalogAdapter] through /users/check-admin/.
func (h *httpCatalogAdapter) CheckAdmin(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/users/check-admin/")
	if err != nil {
		return fmt.Errorf("check admin request: %w", err)
	}
	return mapHTTPError(resp)
}

// Version implements [CatalogAdapter].
func (h *httpCatalogAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpCatalogAdapter) CreateCategory(ctx context.Context, category models.Category) (models.Category, bool, error) {
	return createEntity(h.authedRequest(ctx), "/categories/", category)
}

func (h *httpCatalogAdapter) CreateActor(ctx context.Context, actor models.Person) (models.Person, bool, error) {
	return createEntity(h.authedRequest(ctx), "/actors/", actor)
}

func (h *httpCatalogAdapter) CreateDirector(ctx context.Context, director models.Person) (models.Person, bool, error) {
	return createEntity(h.authedRequest(ctx), "/directors/", director)
}

// FindMovies implements [CatalogAdapter].
func (h *httpCatalogAdapter) FindMovies(ctx context.Context, filter map[string]string) (models.Page[models.MovieView], error) {
	var page models.Page[models.MovieView]

	resp, err := h.authedRequest(ctx).
		SetQueryParams(filter).
		SetResult(&page).
		Get("/movies/")
	if err != nil {
		return models.Page[models.MovieView]{}, fmt.Errorf("find movies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page[models.MovieView]{}, err
	}

	return page, nil
}

// CreateMovie implements [CatalogAdapter].
func (h *httpCatalogAdapter) CreateMovie(ctx context.Context, movie models.MovieInput) (models.MovieView, error) {
	var created models.MovieView

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(movie).
		SetResult(&created).
		Post("/movies/")
	if err != nil {
		return models.MovieView{}, fmt.Errorf("create movie request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MovieView{}, err
	}

	return created, nil
}

func (h *httpCatalogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.sessionToken != "" {
		req.SetCookie(&http.Cookie{Name: sessionCookieName, Value: h.sessionToken})
	}
	return req
}

// createEntity posts a get-or-create request; created reports a 201.
func createEntity[T any](req *resty.Request, path string, entity T) (T, bool, error) {
	var result T

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(entity).
		SetResult(&result).
		Post(path)
	if err != nil {
		var zero T
		return zero, false, fmt.Errorf("create request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		var zero T
		return zero, false, err
	}

	return result, resp.StatusCode() == http.StatusCreated, nil
}
