package lostfound

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/foundlab/lostfound/pkg/lostitem"
	"github.com/foundlab/lostfound/pkg/validator"
)

// Router exposes the item and receiver surfaces over HTTP. Role checks are
// assumed already performed upstream; this layer only shapes requests and
// responses.
func Router(s *Service) chi.Router {
	r := chi.NewRouter()

	r.Route("/items", func(r chi.Router) {
		r.Get("/", s.handleListItems)
		r.Post("/", s.handleReportItem)
		r.Get("/{id}", s.handleGetItem)
		r.Put("/{id}", s.handleEditItem)
		r.Put("/{id}/status", s.handleToggleStatus)
	})

	r.Route("/receivers", func(r chi.Router) {
		r.Get("/", s.handleListReceivers)
		r.Post("/", s.handleAddReceiver)
		r.Delete("/", s.handleRemoveReceiver)
	})

	return r
}

type itemRequest struct {
	Description string  `json:"description"`
	Contact     *string `json:"contact"`
	ImageRef    *string `json:"image_ref"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type receiverRequest struct {
	Email string `json:"email"`
}

func (s *Service) handleListItems(w http.ResponseWriter, r *http.Request) {
	var statusFilter *lostitem.Status
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := lostitem.Status(raw)
		if !status.Valid() {
			writeError(w, validator.ValidationErrors{{
				Field:   "status",
				Message: "must be one of: unclaimed, claimed",
			}})
			return
		}
		statusFilter = &status
	}

	items, err := s.ListItems(r.Context(), statusFilter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Service) handleReportItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	id, err := s.ReportItem(r.Context(), req.Description, req.Contact, req.ImageRef)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}

func (s *Service) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Service) handleEditItem(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.EditItem(r.Context(), chi.URLParam(r, "id"), req.Description, req.Contact, req.ImageRef); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleToggleStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.ToggleStatus(r.Context(), chi.URLParam(r, "id"), lostitem.Status(req.Status)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleListReceivers(w http.ResponseWriter, r *http.Request) {
	emails, err := s.ListReceivers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"emails": emails})
}

func (s *Service) handleAddReceiver(w http.ResponseWriter, r *http.Request) {
	var req receiverRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.AddReceiver(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleRemoveReceiver(w http.ResponseWriter, r *http.Request) {
	var req receiverRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := s.RemoveReceiver(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
