// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package seeder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-film-catalog/internal/adapter"
	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/service"
	"github.com/MKhiriev/go-film-catalog/models"
)

// lookupPageSize is the page size used when checking for existing movies;
// it matches the server's default cap.
const lookupPageSize = 100

// Counter tallies the outcome of one entity kind.
type Counter struct {
	Created int
	Reused  int
	Failed  int
}

// Report summarizes a seeding run. For movies Reused counts titles that
// already existed and were skipped.
type Report struct {
	Categories Counter
	Actors     Counter
	Directors  Counter
	Movies     Counter
}

func (r Report) String() string {
	var b strings.Builder
	for _, line := range []struct {
		kind string
		c    Counter
	}{
		{"categories", r.Categories},
		{"actors", r.Actors},
		{"directors", r.Directors},
		{"movies", r.Movies},
	} {
		fmt.Fprintf(&b, "%-10s created=%d reused=%d failed=%d\n", line.kind, line.c.Created, line.c.Reused, line.c.Failed)
	}
	return b.String()
}

type Seeder struct {
	adapter adapter.CatalogAdapter
	logger  *logger.Logger
}

func NewSeeder(catalogAdapter adapter.CatalogAdapter, logger *logger.Logger) *Seeder {
	return &Seeder{adapter: catalogAdapter, logger: logger}
}

// Seed logs in with credentials and creates everything in catalog.
//
// A failure on one entity is logged and collected; seeding goes on with the
// next one. Login and staff check failures, and context cancellation, stop
// the run immediately.
func (s *Seeder) Seed(ctx context.Context, catalog *Catalog, credentials models.Credentials) (Report, error) {
	var report Report

	if err := s.adapter.Login(ctx, credentials); err != nil {
		return report, fmt.Errorf("login as %s: %w", credentials.Email, err)
	}
	if err := s.adapter.CheckAdmin(ctx); err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return report, fmt.Errorf("%s: %w", credentials.Email, ErrNotStaff)
		}
		return report, fmt.Errorf("check staff status: %w", err)
	}

	var errs []error
	collect := func(c *Counter, name string, created bool, err error) error {
		switch {
		case err == nil && created:
			c.Created++
		case err == nil:
			c.Reused++
			s.logger.Debug().Str("entity", name).Msg("already exists, reused")
		case ctx.Err() != nil:
			return ctx.Err()
		default:
			c.Failed++
			s.logger.Err(err).Str("entity", name).Msg("seeding failed")
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
		return nil
	}

	for _, name := range catalog.Categories {
		_, created, err := s.adapter.CreateCategory(ctx, models.Category{Name: name})
		if cerr := collect(&report.Categories, "category "+name, created, err); cerr != nil {
			return report, cerr
		}
	}

	for _, p := range catalog.Actors {
		_, created, err := s.adapter.CreateActor(ctx, p.person())
		if cerr := collect(&report.Actors, "actor "+p.String(), created, err); cerr != nil {
			return report, cerr
		}
	}

	for _, p := range catalog.Directors {
		_, created, err := s.adapter.CreateDirector(ctx, p.person())
		if cerr := collect(&report.Directors, "director "+p.String(), created, err); cerr != nil {
			return report, cerr
		}
	}

	for _, m := range catalog.Movies {
		created, err := s.seedMovie(ctx, m)
		if cerr := collect(&report.Movies, "movie "+m.Title, created, err); cerr != nil {
			return report, cerr
		}
	}

	return report, errors.Join(errs...)
}

// seedMovie creates m unless a movie whose normalized title matches is
// already listed. Titles are stored normalized, so the lookup filter is
// normalized as well.
func (s *Seeder) seedMovie(ctx context.Context, m MovieEntry) (bool, error) {
	title := service.Normalize(m.Title)

	page, err := s.adapter.FindMovies(ctx, map[string]string{
		"title":     title,
		"page_size": strconv.Itoa(lookupPageSize),
	})
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return false, fmt.Errorf("lookup: %w", err)
	}
	for _, existing := range page.Results {
		if service.Normalize(existing.Title) == title {
			return false, nil
		}
	}

	view, err := s.adapter.CreateMovie(ctx, m.input())
	if err != nil {
		return false, err
	}
	s.logger.Info().Int64("id", view.ID).Str("title", view.Title).Msg("movie created")

	return true, nil
}
