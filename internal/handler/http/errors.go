// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer.
var (
	// ErrRouteNotFound is answered for unknown paths and for methods a route
	// does not support.
	ErrRouteNotFound = errors.New("not found")

	// ErrInvalidID is returned when a path id is not a positive integer.
	// Such a path cannot address any resource, so it maps to 404.
	ErrInvalidID = errors.New("resource was not found")

	// ErrInvalidJSON wraps body decoding failures.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidParameters wraps query strings with unknown or malformed keys.
	ErrInvalidParameters = errors.New("invalid parameters")
)
