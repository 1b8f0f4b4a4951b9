// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the catalog API.
//
// [CatalogAdapter] hides the REST transport from the seeder: it keeps the
// session cookie obtained at login and maps error statuses to the sentinel
// values in errors.go, so callers can use [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-film-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatalogAdapter talks to a running catalog API.
//
// The Create methods of normalized entities are get-or-create on the server:
// created is true for 201 and false when the server answered 200 with an
// existing entity.
type CatalogAdapter interface {
	// Login opens a session and keeps its cookie for later requests.
	Login(ctx context.Context, credentials models.Credentials) error

	// CheckAdmin reports an error unless the current session is staff.
	CheckAdmin(ctx context.Context) error

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)

	CreateCategory(ctx context.Context, category models.Category) (models.Category, bool, error)
	CreateActor(ctx context.Context, actor models.Person) (models.Person, bool, error)
	CreateDirector(ctx context.Context, director models.Person) (models.Person, bool, error)

	// FindMovies lists one page of movies matching filter; the keys are
	// those of GET /movies/.
	FindMovies(ctx context.Context, filter map[string]string) (models.Page[models.MovieView], error)

	// CreateMovie always inserts a new movie.
	CreateMovie(ctx context.Context, movie models.MovieInput) (models.MovieView, error)
}
