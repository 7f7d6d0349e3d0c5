package web

import (
	"log/slog"
	"net/http"
)

// CheckIn records an attendance scan. A scan for an unregistered identity
// responds 204 with no body; the badge simply does not belong to a member.
func (h *handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	eventID := r.PathValue("event_id")

	var req CheckInRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	slog.InfoContext(ctx, "Check-in request received",
		slog.String("event_id", eventID),
		slog.String("user_id", req.UserID),
		slog.Int("points", req.Points),
	)

	result, err := h.Service.CheckIn(ctx, req.UserID, eventID, req.Points)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if result == nil {
		h.respondJSON(w, r, http.StatusNoContent, nil)
		return
	}

	h.respondJSON(w, r, http.StatusOK, result)
}

func (h *handler) GetEventAttendees(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.ListEventAttendees(r.Context(), r.PathValue("event_id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newMembers(members))
}
