// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-film-catalog/internal/service"
	"github.com/stretchr/testify/assert"
)

type routeCase struct {
	method string
	path   string
}

// userRoutes need any session.
var userRoutes = []routeCase{
	{http.MethodDelete, "/users/logout/"},
	{http.MethodGet, "/users/info/"},
	{http.MethodPatch, "/users/info/"},
	{http.MethodDelete, "/users/info/"},
	{http.MethodGet, "/users/check-session/"},
	{http.MethodGet, "/users/ratings/"},
	{http.MethodPost, "/movies/1/rating/"},
	{http.MethodGet, "/movies/1/rating/user-rating/"},
	{http.MethodPut, "/movies/1/rating/user-rating/"},
	{http.MethodPatch, "/movies/1/rating/user-rating/"},
	{http.MethodDelete, "/movies/1/rating/user-rating/"},
}

// adminRoutes need a staff session.
var adminRoutes = []routeCase{
	{http.MethodGet, "/users/check-admin/"},
	{http.MethodPost, "/movies/"},
	{http.MethodPut, "/movies/1/"},
	{http.MethodPatch, "/movies/1/"},
	{http.MethodDelete, "/movies/1/"},
	{http.MethodPost, "/categories/"},
	{http.MethodPut, "/categories/1/"},
	{http.MethodDelete, "/categories/1/"},
	{http.MethodPost, "/actors/"},
	{http.MethodPut, "/actors/1/"},
	{http.MethodDelete, "/actors/1/"},
	{http.MethodPost, "/directors/"},
	{http.MethodPut, "/directors/1/"},
	{http.MethodDelete, "/directors/1/"},
}

func TestInit_AnonymousIsRejectedOnGatedRoutes(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	for _, tc := range append(append([]routeCase{}, userRoutes...), adminRoutes...) {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "", "")

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, service.ErrUnauthorized.Error(), errorMessage(t, rec))
		})
	}
}

func TestInit_UnknownTokenIsAnonymous(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/users/check-session/", "", "stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInit_NonStaffIsRejectedOnAdminRoutes(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	for _, tc := range adminRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "", userAuth.Token)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, service.ErrForbidden.Error(), errorMessage(t, rec))
		})
	}
}

func TestInit_ProbeEndpoints(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	tests := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{name: "session probe with user", path: "/users/check-session/", token: userAuth.Token, status: http.StatusOK},
		{name: "session probe with admin", path: "/users/check-session/", token: adminAuth.Token, status: http.StatusOK},
		{name: "admin probe with admin", path: "/users/check-admin/", token: adminAuth.Token, status: http.StatusOK},
		{name: "admin probe with user", path: "/users/check-admin/", token: userAuth.Token, status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, tt.path, "", tt.token)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.JSONEq(t, `{"detail":"ok"}`, rec.Body.String())
			}
		})
	}
}

func TestInit_TrailingSlashIsOptional(t *testing.T) {
	router := newTestRouter(t, &service.Services{
		AppInfoService: &mockAppInfoService{version: "1.0.0"},
	})

	for _, path := range []string{"/version/", "/version"} {
		rec := doRequest(t, router, http.MethodGet, path, "", "")

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "1.0.0", rec.Body.String(), path)
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/nonexistent/", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrRouteNotFound.Error(), errorMessage(t, rec))
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	for _, tc := range []routeCase{
		{http.MethodPost, "/version/"},
		{http.MethodDelete, "/movies/"},
		{http.MethodPut, "/users/login/"},
		{http.MethodPost, "/movies/1/rating/user-rating/"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, "", adminAuth.Token)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestInit_ResponsesCarryTraceID(t *testing.T) {
	router := newTestRouter(t, &service.Services{})

	rec := doRequest(t, router, http.MethodGet, "/nonexistent/", "", "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
