package http

import (
	"net/http"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	registered, err := h.services.AuthService.Register(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", registered.UserID).Msg("user registered")
	utils.WriteJSON(w, registered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var credentials models.Credentials
	if err := decodeBody(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	session, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setSessionCookie(w, session)
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthContext(r.Context())
	if err := h.services.AuthService.Logout(r.Context(), auth.Token); err != nil {
		writeError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthContext(r.Context())
	user, err := h.services.UserService.GetProfile(r.Context(), auth)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update models.UserUpdate
	if err := decodeBody(r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	auth, _ := utils.GetAuthContext(r.Context())
	user, err := h.services.UserService.UpdateProfile(r.Context(), auth, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// deleteAccount removes the user; sessions and ratings go with it, so the
// cookie is cleared as well.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthContext(r.Context())
	if err := h.services.UserService.DeleteAccount(r.Context(), auth); err != nil {
		writeError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkSession(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.DetailResponse{Detail: "ok"}, http.StatusOK)
}

func (h *Handler) checkAdmin(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.DetailResponse{Detail: "ok"}, http.StatusOK)
}

func (h *Handler) listOwnRatings(w http.ResponseWriter, r *http.Request) {
	auth, _ := utils.GetAuthContext(r.Context())
	ratings, err := h.services.RatingService.ListOwnRatings(r.Context(), auth)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if ratings == nil {
		ratings = []models.UserRating{}
	}
	utils.WriteJSON(w, ratings, http.StatusOK)
}
