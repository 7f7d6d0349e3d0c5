package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/knighthacks/blade/server/auth"
	"github.com/knighthacks/blade/server/service"
)

func (h *handler) CreateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	var req MemberRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	create, ok := h.memberCreate(w, r, req)
	if !ok {
		return
	}

	slog.InfoContext(ctx, "Registering member", slog.String("user_id", session.UserID))

	member, err := h.Service.CreateMember(ctx, session.UserID, create)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, newMember(*member))
}

func (h *handler) GetMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	member, err := h.Service.GetMember(ctx, session.UserID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if member == nil {
		h.respondJSON(w, r, http.StatusOK, nil)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newMember(*member))
}

func (h *handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.Service.ListMembers(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newMembers(members))
}

func (h *handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	memberID := r.PathValue("member_id")

	var req MemberRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	create, ok := h.memberCreate(w, r, req)
	if !ok {
		return
	}

	if err := h.Service.UpdateMember(ctx, service.MemberUpdate{
		ID:           memberID,
		MemberCreate: create,
	}); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *handler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteMember(r.Context(), r.PathValue("member_id")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *handler) GetAttendedEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	session := auth.GetSession(r)

	events, err := h.Service.ListAttendedEvents(ctx, session.UserID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	out := make([]AttendedEvent, 0, len(events))
	for _, event := range events {
		out = append(out, AttendedEvent{
			Event:       newEvent(event.Event),
			NumAttended: event.NumAttended,
		})
	}

	h.respondJSON(w, r, http.StatusOK, out)
}

func (h *handler) memberCreate(w http.ResponseWriter, r *http.Request, req MemberRequest) (service.MemberCreate, bool) {
	dob, err := time.Parse(time.DateOnly, req.DOB)
	if err != nil {
		h.respondJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid dob, expected YYYY-MM-DD"})
		return service.MemberCreate{}, false
	}

	return service.MemberCreate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		School:       req.School,
		LevelOfStudy: req.LevelOfStudy,
		DOB:          dob,
		ShirtSize:    req.ShirtSize,
		GithubURL:    req.GithubURL,
		LinkedinURL:  req.LinkedinURL,
		WebsiteURL:   req.WebsiteURL,
		ResumeURL:    req.ResumeURL,
	}, true
}
