// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-film-catalog/models"
)

const (
	minRatingFilter = 1
	maxRatingFilter = 10
)

// movieFilterKeys is the closed list of query keys the movie listing accepts.
var movieFilterKeys = []string{
	"actor",
	"director",
	"genre",
	"language",
	"page",
	"page_size",
	"rating",
	"release_date",
	"synopsis",
	"title",
}

// parseMovieFilter turns the listing query into a [models.MovieFilter].
//
// Unknown keys fail the whole request naming every offending key in sorted
// order. page and page_size must be positive integers and rating a number
// in [1, 10]; zero values of Page and PageSize leave the defaults to the
// service.
func parseMovieFilter(query url.Values) (models.MovieFilter, error) {
	var unknown []string
	for key := range query {
		if !slices.Contains(movieFilterKeys, key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return models.MovieFilter{}, fmt.Errorf("%w: %s", ErrInvalidParameters, strings.Join(unknown, ", "))
	}

	filter := models.MovieFilter{
		Title:       strings.TrimSpace(query.Get("title")),
		Synopsis:    strings.TrimSpace(query.Get("synopsis")),
		Language:    strings.TrimSpace(query.Get("language")),
		ReleaseDate: strings.TrimSpace(query.Get("release_date")),
		Genre:       strings.TrimSpace(query.Get("genre")),
		Director:    strings.TrimSpace(query.Get("director")),
		Actor:       strings.TrimSpace(query.Get("actor")),
	}

	var err error
	if filter.Page, err = positiveInt(query, "page"); err != nil {
		return models.MovieFilter{}, err
	}
	if filter.PageSize, err = positiveInt(query, "page_size"); err != nil {
		return models.MovieFilter{}, err
	}

	if raw := strings.TrimSpace(query.Get("rating")); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil || !(rating >= minRatingFilter && rating <= maxRatingFilter) {
			return models.MovieFilter{}, fmt.Errorf("%w: rating must be a number between %d and %d", ErrInvalidParameters, minRatingFilter, maxRatingFilter)
		}
		filter.MinRating = &rating
	}

	return filter, nil
}

// positiveInt returns 0 when key is absent.
func positiveInt(query url.Values, key string) (int, error) {
	if !query.Has(key) {
		return 0, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(query.Get(key)))
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", ErrInvalidParameters, key)
	}
	return v, nil
}
