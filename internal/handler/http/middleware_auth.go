package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-film-catalog/internal/logger"
	"github.com/MKhiriev/go-film-catalog/internal/service"
	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/models"
)

const sessionCookieName = "session"

// authenticate resolves the optional session of every request.
//
// A request without the "session" cookie, or with a token that is not in the
// store, continues anonymously. On success the resolved [models.AuthContext]
// is stored in the request context under [utils.AuthCtxKey]; handlers read it
// with [utils.GetAuthContext]. Gating is left to [Handler.requireUser] and
// [Handler.requireAdmin].
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		auth, err := h.services.AuthService.Resolve(ctx, token)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				logger.FromRequest(r).Debug().Msg("unknown session token, continuing anonymously")
				next.ServeHTTP(w, r)
				return
			}
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAuthContext(ctx, auth)))
	})
}

// requireUser rejects anonymous requests with 401.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetAuthContext(r.Context()); !ok {
			writeError(w, r, service.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin lets through staff sessions only. Anonymous and non-staff
// callers both get 401.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		auth, err := h.services.AuthService.RequireAdmin(ctx, sessionToken(r))
		if err != nil {
			writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(utils.WithAuthContext(ctx, auth)))
	})
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
