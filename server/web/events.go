package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/knighthacks/blade/internal/xquery"
	"github.com/knighthacks/blade/server/service"
)

func (h *handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := service.EventFilter{
		Tags: xquery.ParseStringSlice(query, "tags", nil),
		From: xquery.ParseTime(query, "from", time.Time{}),
		To:   xquery.ParseTime(query, "to", time.Time{}),
	}
	if xquery.ParseBool(query, "upcoming", false) {
		filter.From = time.Now()
	}

	events, err := h.Service.ListEvents(r.Context(), filter)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusOK, newEvents(events))
}

func (h *handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EventCreateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	slog.InfoContext(ctx, "Creating event", slog.String("name", req.Name), slog.String("tag", req.Tag))

	event, err := h.Service.CreateEvent(ctx, service.EventCreate{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Datetime:    req.Datetime,
		Tag:         req.Tag,
		HackathonID: req.HackathonID,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusCreated, newEvent(*event))
}

func (h *handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	eventID := r.PathValue("event_id")

	var req EventUpdateRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	if err := h.Service.UpdateEvent(ctx, service.EventUpdate{
		ID:          eventID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		Datetime:    req.Datetime,
		Tag:         req.Tag,
		HackathonID: req.HackathonID,
	}); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}

func (h *handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteEvent(r.Context(), r.PathValue("event_id")); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, r, http.StatusNoContent, nil)
}
