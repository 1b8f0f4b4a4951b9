package http

import (
	"net/http"

	"github.com/MKhiriev/go-film-catalog/internal/service"
	"github.com/MKhiriev/go-film-catalog/internal/utils"
	"github.com/MKhiriev/go-film-catalog/models"
)

const entityIDParam = "id"

// createdStatus is 201 for a new entity and 200 when the normalized entity
// already existed.
func createdStatus(created bool) int {
	if created {
		return http.StatusCreated
	}
	return http.StatusOK
}

// ── categories ───────────────────────────────────────────────────────────────

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if categories == nil {
		categories = []models.Category{}
	}
	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := decodeBody(r, &category); err != nil {
		writeError(w, r, err)
		return
	}

	category, created, err := h.services.CategoryService.GetOrCreateCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, createdStatus(created))
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, entityIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.services.CategoryService.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, entityIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var category models.Category
	if err := decodeBody(r, &category); err != nil {
		writeError(w, r, err)
		return
	}
	category.ID = id

	category, err = h.services.CategoryService.UpdateCategory(r.Context(), category)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, entityIDParam)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.CategoryService.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ── actors and directors ─────────────────────────────────────────────────────

// personKind selects which of the two person services a route serves.
type personKind int

const (
	personActors personKind = iota
	personDirectors
)

func (h *Handler) personService(kind personKind) service.PersonService {
	if kind == personDirectors {
		return h.services.DirectorService
	}
	return h.services.ActorService
}

func (h *Handler) listPeople(kind personKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		people, err := h.personService(kind).ListPeople(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		if people == nil {
			people = []models.Person{}
		}
		utils.WriteJSON(w, people, http.StatusOK)
	}
}

func (h *Handler) createPerson(kind personKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var person models.Person
		if err := decodeBody(r, &person); err != nil {
			writeError(w, r, err)
			return
		}

		person, created, err := h.personService(kind).GetOrCreatePerson(r.Context(), person)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, person, createdStatus(created))
	}
}

func (h *Handler) getPerson(kind personKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, entityIDParam)
		if err != nil {
			writeError(w, r, err)
			return
		}

		person, err := h.personService(kind).GetPerson(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, person, http.StatusOK)
	}
}

func (h *Handler) updatePerson(kind personKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, entityIDParam)
		if err != nil {
			writeError(w, r, err)
			return
		}

		var person models.Person
		if err := decodeBody(r, &person); err != nil {
			writeError(w, r, err)
			return
		}
		person.ID = id

		person, err = h.personService(kind).UpdatePerson(r.Context(), person)
		if err != nil {
			writeError(w, r, err)
			return
		}

		utils.WriteJSON(w, person, http.StatusOK)
	}
}

func (h *Handler) deletePerson(kind personKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, entityIDParam)
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := h.personService(kind).DeletePerson(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
