package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Paths are declared without the trailing slash;
// StripSlashes makes "/movies/" and "/movies" resolve to the same route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.authenticate)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Get("/version", h.getServerVersion)

	router.Route("/users", func(r chi.Router) {
		r.Post("/", h.register)
		r.Post("/login", h.login)

		// routes for any authenticated user
		r.Group(func(r chi.Router) {
			r.Use(h.requireUser)
			r.Delete("/logout", h.logout)
			r.Get("/info", h.getProfile)
			r.Patch("/info", h.updateProfile)
			r.Delete("/info", h.deleteAccount)
			r.Get("/check-session", h.checkSession)
			r.Get("/ratings", h.listOwnRatings)
		})

		r.With(h.requireAdmin).Get("/check-admin", h.checkAdmin)
	})

	router.Route("/movies", func(r chi.Router) {
		r.Get("/", h.listMovies)
		r.With(h.requireAdmin).Post("/", h.createMovie)

		r.Route("/{movieID}", func(r chi.Router) {
			r.Get("/", h.getMovie)
			r.With(h.requireAdmin).Put("/", h.replaceMovie)
			r.With(h.requireAdmin).Patch("/", h.patchMovie)
			r.With(h.requireAdmin).Delete("/", h.deleteMovie)

			r.Route("/rating", func(r chi.Router) {
				r.Get("/", h.listMovieRatings)
				r.With(h.requireUser).Post("/", h.createRating)

				r.Route("/user-rating", func(r chi.Router) {
					r.Use(h.requireUser)
					r.Get("/", h.getOwnRating)
					r.Put("/", h.updateOwnRating)
					r.Patch("/", h.updateOwnRating)
					r.Delete("/", h.deleteOwnRating)
				})
			})
		})
	})

	router.Route("/categories", h.categoryRoutes)
	router.Route("/actors", h.personRoutes(personActors))
	router.Route("/directors", h.personRoutes(personDirectors))

	return router
}

func (h *Handler) categoryRoutes(r chi.Router) {
	r.Get("/", h.listCategories)
	r.With(h.requireAdmin).Post("/", h.createCategory)
	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.getCategory)
		r.With(h.requireAdmin).Put("/", h.updateCategory)
		r.With(h.requireAdmin).Delete("/", h.deleteCategory)
	})
}

func (h *Handler) personRoutes(kind personKind) func(r chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.listPeople(kind))
		r.With(h.requireAdmin).Post("/", h.createPerson(kind))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getPerson(kind))
			r.With(h.requireAdmin).Put("/", h.updatePerson(kind))
			r.With(h.requireAdmin).Delete("/", h.deletePerson(kind))
		})
	}
}
