package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/go-chi/chi/v5"
)

// pathID reads a positive integer path parameter.
func pathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// decodeBody decodes the JSON request body into dst, keeping the
// empty-body sentinel distinguishable from malformed input.
func decodeBody(r *http.Request, dst any) error {
	if err := utils.DecodeJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
