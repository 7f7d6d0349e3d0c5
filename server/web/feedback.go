package web

import (
	"log/slog"
	"net/http"

	"github.com/knighthacks/blade/server/auth"
	"github.com/knighthacks/blade/server/database"
	"github.com/knighthacks/blade/server/service"
)

func (h *handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)
	eventID := r.PathValue("event_id")

	var req FeedbackRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	slog.InfoContext(ctx, "Feedback submission received",
		slog.String("event_id", eventID),
		slog.String("member_id", req.MemberID),
	)

	if err := h.Service.SubmitFeedback(ctx, session.UserID, service.FeedbackCreate{
		MemberID: req.MemberID,
		EventID:  eventID,
		Payload: database.FeedbackPayload{
			Rating:   req.Rating,
			Comments: req.Comments,
		},
	}); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, nil)
}

func (h *handler) GetEventFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.Service.ListEventFeedback(r.Context(), r.PathValue("event_id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	out := make([]Feedback, 0, len(feedback))
	for _, f := range feedback {
		out = append(out, newFeedback(f))
	}

	h.respondJSON(w, r, http.StatusOK, out)
}
