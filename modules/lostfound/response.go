package lostfound

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foundlab/lostfound/pkg/lostitem"
	"github.com/foundlab/lostfound/pkg/validator"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error taxonomy onto HTTP statuses: validation
// failures are 422, unknown ids are 404, anything else is a 500. Transport
// errors never reach this function; the dispatcher absorbs them.
func writeError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, ve := range verrs {
			fields[ve.Field] = ve.Message
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": fields,
		})
		return
	}

	if errors.Is(err, lostitem.ErrItemNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": "lost item not found"})
		return
	}

	writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
}

// decodeJSON reads the request body into dst, answering 400 on malformed
// input. Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return false
	}
	return true
}
