package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/service"
	"github.com/MKhiriev/go-film-catalog/internal/store"
	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/internal/validators"
	"github.com/MKhiriev/go-film-catalog/models"
)

var errorStatusMap = map[error]int{
	ErrRouteNotFound:     http.StatusNotFound,
	ErrInvalidID:         http.StatusNotFound,
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidParameters: http.StatusBadRequest,
	utils.ErrEmptyBody:   http.StatusBadRequest,

	validators.ErrUnsupportedType:    http.StatusBadRequest,
	validators.ErrUnknownField:       http.StatusBadRequest,
	validators.ErrMissingField:       http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:   http.StatusBadRequest,
	validators.ErrInvalidName:        http.StatusBadRequest,
	validators.ErrInvalidEmail:       http.StatusBadRequest,
	validators.ErrInvalidPassword:    http.StatusBadRequest,
	validators.ErrInvalidTitle:       http.StatusBadRequest,
	validators.ErrInvalidDuration:    http.StatusBadRequest,
	validators.ErrInvalidReleaseDate: http.StatusBadRequest,
	validators.ErrInvalidLanguage:    http.StatusBadRequest,
	validators.ErrInvalidRating:      http.StatusBadRequest,
	validators.ErrCommentTooLong:     http.StatusBadRequest,
	validators.ErrTextFieldTooLong:   http.StatusBadRequest,

	service.ErrUnauthorized:       http.StatusUnauthorized,
	service.ErrForbidden:          http.StatusUnauthorized,
	service.ErrInvalidCredentials: http.StatusUnauthorized,
	service.ErrInvalidPage:        http.StatusBadRequest,

	store.ErrUserNotFound:        http.StatusNotFound,
	store.ErrMovieNotFound:       http.StatusNotFound,
	store.ErrRatingNotFound:      http.StatusNotFound,
	store.ErrEntityNotFound:      http.StatusNotFound,
	store.ErrEmailAlreadyExists:  http.StatusConflict,
	store.ErrRatingAlreadyExists: http.StatusConflict,
	store.ErrEntityAlreadyExists: http.StatusConflict,
}

func statusFromError(err error) int {
	status, _ := matchError(err)
	return status
}

// matchError returns the status of the first known sentinel in err's chain
// together with that sentinel. Unknown errors yield 500 and a nil target.
func matchError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// messageFromError chooses the client-facing text for err. Bad requests carry
// the full chain so that the offending field is named; other statuses expose
// only the matched sentinel, and 500 only the status text.
func messageFromError(status int, target, err error) string {
	switch {
	case target == nil || status == http.StatusInternalServerError:
		return http.StatusText(http.StatusInternalServerError)
	case status == http.StatusBadRequest:
		return err.Error()
	default:
		return target.Error()
	}
}

// writeError logs err and answers with its mapped status and an
// [models.ErrorResponse] body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, target := matchError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: messageFromError(status, target, err)}, status)
}
