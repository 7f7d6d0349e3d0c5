package web

import (
	"log/slog"
	"net/http"
)

func (h *handler) GetDuesPayingMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.ListDuesPayingMembers(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newMembers(members))
}

func (h *handler) MarkDuesPaid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	memberID := r.PathValue("member_id")

	slog.InfoContext(ctx, "Marking dues paid", slog.String("member_id", memberID))

	if err := h.Service.MarkDuesPaid(ctx, memberID); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *handler) ClearDuesPaid(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.ClearDuesPaid(r.Context(), r.PathValue("member_id")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *handler) ClearAllDues(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slog.InfoContext(ctx, "Clearing all dues payments")

	if err := h.Service.ClearAllDues(ctx); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}
