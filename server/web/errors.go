package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/knighthacks/blade/server/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	ctx := r.Context()

	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "failed to encode response", slog.Any("err", err))
	}
}

// respondError maps workflow failures onto the HTTP error taxonomy: missing
// identifiers are 400, absent entities 404, duplicate check-ins 409, duplicate
// feedback 403, external publish failures 500.
func (h *handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	var dup *service.DuplicateCheckInError
	switch {
	case errors.Is(err, service.ErrMissingID):
		h.respondJSON(w, r, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrEventNotFound):
		h.respondJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &dup), errors.Is(err, service.ErrMemberExists):
		h.respondJSON(w, r, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrDuplicateFeedback):
		h.respondJSON(w, r, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrExternalPublish):
		h.respondJSON(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	default:
		slog.ErrorContext(ctx, "request failed", slog.String("path", r.URL.Path), slog.Any("err", err))
		h.respondJSON(w, r, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func (h *handler) Healthz(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
