package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knighthacks/blade/internal/omit"
	"github.com/knighthacks/blade/server/database"
)

func TestCreateEvent(t *testing.T) {
	store := newFakeStore()
	svc, scheduler, _, _ := newTestService(store)

	start := time.Date(2026, time.September, 10, 18, 0, 0, 0, time.UTC)
	event, err := svc.CreateEvent(t.Context(), EventCreate{
		Name:        "Intro to Go",
		Description: "Bring a laptop",
		Location:    "ENG2 203",
		Datetime:    start,
		Tag:         "workshop",
	})
	require.NoError(t, err)

	assert.Equal(t, "1234567890", event.DiscordID)
	assert.Equal(t, 10, event.Points)
	assert.False(t, event.HackathonID.Valid)

	require.Len(t, scheduler.events, 1)
	assert.Equal(t, "Intro to Go", scheduler.events[0].Name)
	assert.Equal(t, "ENG2 203", scheduler.events[0].Location)
	assert.Equal(t, start, scheduler.events[0].Start)
	assert.Equal(t, start.Add(3*time.Hour), scheduler.events[0].End)

	stored, ok := store.events[event.ID]
	require.True(t, ok)
	assert.Equal(t, *event, stored)
}

func TestCreateEvent_UnmappedTag(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStore())

	event, err := svc.CreateEvent(t.Context(), EventCreate{
		Name:     "Game Night",
		Datetime: time.Now(),
		Tag:      "social",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, event.Points)
}

func TestCreateEvent_PublishFails(t *testing.T) {
	store := newFakeStore()
	svc, scheduler, _, _ := newTestService(store)
	scheduler.err = errors.New("discord is down")

	event, err := svc.CreateEvent(t.Context(), EventCreate{
		Name:     "Intro to Go",
		Datetime: time.Now(),
	})
	assert.ErrorIs(t, err, ErrExternalPublish)
	assert.Nil(t, event)
	assert.Empty(t, store.events)
}

func TestCreateEvent_EmptyExternalID(t *testing.T) {
	store := newFakeStore()
	svc, scheduler, _, _ := newTestService(store)
	scheduler.id = ""

	_, err := svc.CreateEvent(t.Context(), EventCreate{
		Name:     "Intro to Go",
		Datetime: time.Now(),
	})
	assert.ErrorIs(t, err, ErrExternalPublish)
	assert.Empty(t, store.events)
}

func TestUpdateEvent(t *testing.T) {
	store := newFakeStore()
	store.events["e1"] = database.Event{
		ID:       "e1",
		Name:     "Intro to Go",
		Location: "ENG2 203",
		Tag:      "workshop",
		Points:   10,
	}
	svc, _, _, _ := newTestService(store)

	err := svc.UpdateEvent(t.Context(), EventUpdate{
		ID:   "e1",
		Name: omit.New("Advanced Go"),
		Tag:  omit.New("gbm"),
	})
	require.NoError(t, err)

	event := store.events["e1"]
	assert.Equal(t, "Advanced Go", event.Name)
	// unset fields stay untouched
	assert.Equal(t, "ENG2 203", event.Location)
	// tag changes re-derive the point award
	assert.Equal(t, "gbm", event.Tag)
	assert.Equal(t, 5, event.Points)
}

func TestUpdateEvent_Errors(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStore())

	assert.ErrorIs(t, svc.UpdateEvent(t.Context(), EventUpdate{}), ErrMissingID)
	assert.ErrorIs(t, svc.UpdateEvent(t.Context(), EventUpdate{ID: "e-missing"}), ErrEventNotFound)
}

func TestListEvents_Filter(t *testing.T) {
	store := newFakeStore()
	store.events["e1"] = database.Event{
		ID:       "e1",
		Tag:      "workshop",
		Datetime: time.Date(2026, time.September, 10, 18, 0, 0, 0, time.UTC),
	}
	store.events["e2"] = database.Event{
		ID:       "e2",
		Tag:      "gbm",
		Datetime: time.Date(2026, time.October, 1, 18, 0, 0, 0, time.UTC),
	}
	svc, _, _, _ := newTestService(store)

	all, err := svc.ListEvents(t.Context(), EventFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tagged, err := svc.ListEvents(t.Context(), EventFilter{Tags: []string{"gbm", "social"}})
	require.NoError(t, err)
	require.Len(t, tagged, 1)
	assert.Equal(t, "e2", tagged[0].ID)

	ranged, err := svc.ListEvents(t.Context(), EventFilter{
		From: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "e1", ranged[0].ID)
}

func TestDeleteEvent_MissingID(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStore())

	assert.ErrorIs(t, svc.DeleteEvent(t.Context(), ""), ErrMissingID)
}
