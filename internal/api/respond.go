package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mliu/ledgerbook/internal/service"
	"github.com/mliu/ledgerbook/internal/storage"
)

// outcomeResponse is the JSON shape for mutating operations.
type outcomeResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
	Path    string `json:"path,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, outcomeResponse{
			OK:      false,
			Message: "invalid request body",
		})
		return false
	}
	return true
}

// writeOutcome maps a service outcome to its HTTP status.
func writeOutcome(w http.ResponseWriter, out service.Outcome) {
	writeJSON(w, statusFor(out), outcomeResponse{OK: out.OK, Message: out.Message})
}

func statusFor(out service.Outcome) int {
	if out.OK {
		return http.StatusOK
	}
	switch out.Code {
	case service.CodeInvalid:
		return http.StatusBadRequest
	case service.CodeDuplicate:
		return http.StatusConflict
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeReadError handles failures from read-only operations, which return
// plain errors rather than outcomes.
func writeReadError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, storage.ErrStorageUnavailable) {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, outcomeResponse{OK: false, Message: "query failed"})
}

func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, outcomeResponse{
			OK:      false,
			Message: "invalid id",
		})
		return 0, false
	}
	return id, true
}
