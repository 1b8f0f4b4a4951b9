package http

import (
	"net/http"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/models"
)

const movieIDParam = "movieID"

func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) {
	filter, err := parseMovieFilter(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.MovieService.ListMovies(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if page.Results == nil {
		page.Results = []models.MovieView{}
	}
	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, movieIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	movie, err := h.services.MovieService.GetMovie(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) {
	var input models.MovieInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	movie, err := h.services.MovieService.CreateMovie(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("movie_id", movie.ID).Msg("movie created")
	utils.WriteJSON(w, movie, http.StatusCreated)
}

func (h *Handler) replaceMovie(w http.ResponseWriter, r *http.Request) {
	h.updateMovie(w, r, false)
}

func (h *Handler) patchMovie(w http.ResponseWriter, r *http.Request) {
	h.updateMovie(w, r, true)
}

func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request, partial bool) {
	id, err := pathID(r, movieIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.MovieInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	movie, err := h.services.MovieService.UpdateMovie(r.Context(), id, input, partial)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, movie, http.StatusOK)
}

func (h *Handler) deleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, movieIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.MovieService.DeleteMovie(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
