package http

import (
	"net/http"

	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/models"
)

func (h *Handler) listMovieRatings(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r, movieIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	ratings, err := h.services.RatingService.ListRatingsForMovie(r.Context(), movieID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if ratings == nil {
		ratings = []models.RatingView{}
	}
	utils.WriteJSON(w, ratings, http.StatusOK)
}

func (h *Handler) createRating(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r, movieIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.RatingInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	auth, _ := utils.GetAuthContext(r.Context())
	rating, err := h.services.RatingService.CreateRating(r.Context(), auth, movieID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rating, http.StatusCreated)
}

func (h *Handler) getOwnRating(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r, movieIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	auth, _ := utils.GetAuthContext(r.Context())
	rating, err := h.services.RatingService.GetOwnRating(r.Context(), auth, movieID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rating, http.StatusOK)
}

// updateOwnRating serves both PUT and PATCH: either way only the supplied
// fields change.
func (h *Handler) updateOwnRating(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r, movieIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.RatingInput
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	auth, _ := utils.GetAuthContext(r.Context())
	rating, err := h.services.RatingService.UpdateOwnRating(r.Context(), auth, movieID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, rating, http.StatusOK)
}

func (h *Handler) deleteOwnRating(w http.ResponseWriter, r *http.Request) {
	movieID, err := pathID(r, movieIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	auth, _ := utils.GetAuthContext(r.Context())
	if err := h.services.RatingService.DeleteOwnRating(r.Context(), auth, movieID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
