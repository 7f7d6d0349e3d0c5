package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/knighthacks/blade/internal/omit"
	"github.com/knighthacks/blade/server/database"
)

// scheduledEventDuration is the span reported to the external scheduler; the
// catalog itself only stores the start.
const scheduledEventDuration = 3 * time.Hour

type EventCreate struct {
	Name        string
	Description string
	Location    string
	Datetime    time.Time
	Tag         string
	HackathonID string
}

type EventUpdate struct {
	ID          string
	Name        omit.Omit[string]
	Description omit.Omit[string]
	Location    omit.Omit[string]
	Datetime    omit.Omit[time.Time]
	Tag         omit.Omit[string]
	HackathonID omit.Omit[string]
}

// CreateEvent publishes the event to the external scheduler first and only
// persists it locally once an external ID came back. A failed or empty-ID
// publish aborts the whole operation; no local-only event is ever written.
func (s *Service) CreateEvent(ctx context.Context, create EventCreate) (*database.Event, error) {
	discordID, err := s.scheduler.CreateScheduledEvent(ctx,
		create.Name,
		create.Description,
		create.Location,
		create.Datetime,
		create.Datetime.Add(scheduledEventDuration),
	)
	if err != nil {
		slog.ErrorContext(ctx, "failed to publish scheduled event", slog.String("name", create.Name), slog.Any("err", err))
		return nil, ErrExternalPublish
	}
	if discordID == "" {
		return nil, ErrExternalPublish
	}

	event := database.Event{
		ID:          uuid.NewString(),
		Name:        create.Name,
		Description: create.Description,
		Location:    create.Location,
		Datetime:    create.Datetime,
		Tag:         create.Tag,
		Points:      s.cfg.Points[create.Tag],
		DiscordID:   discordID,
		HackathonID: nullString(create.HackathonID),
	}

	if err = s.store.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	return &event, nil
}

func (s *Service) UpdateEvent(ctx context.Context, update EventUpdate) error {
	if update.ID == "" {
		return fmt.Errorf("Event ID is required to update an event: %w", ErrMissingID)
	}

	event, err := s.store.GetEvent(ctx, update.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	if update.Name.OK {
		event.Name = update.Name.Value
	}
	if update.Description.OK {
		event.Description = update.Description.Value
	}
	if update.Location.OK {
		event.Location = update.Location.Value
	}
	if update.Datetime.OK {
		event.Datetime = update.Datetime.Value
	}
	if update.Tag.OK {
		event.Tag = update.Tag.Value
		event.Points = s.cfg.Points[update.Tag.Value]
	}
	if update.HackathonID.OK {
		event.HackathonID = nullString(update.HackathonID.Value)
	}

	if err = s.store.UpdateEvent(ctx, *event); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

func (s *Service) DeleteEvent(ctx context.Context, eventID string) error {
	if eventID == "" {
		return fmt.Errorf("Event ID is required to delete an event: %w", ErrMissingID)
	}

	if err := s.store.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

type EventFilter struct {
	Tags []string
	From time.Time
	To   time.Time
}

func (f EventFilter) matches(event database.Event) bool {
	if len(f.Tags) > 0 && !slices.Contains(f.Tags, event.Tag) {
		return false
	}
	if !f.From.IsZero() && event.Datetime.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && event.Datetime.After(f.To) {
		return false
	}
	return true
}

func (s *Service) ListEvents(ctx context.Context, filter EventFilter) ([]database.Event, error) {
	events, err := s.store.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]database.Event, 0, len(events))
	for _, event := range events {
		if filter.matches(event) {
			filtered = append(filtered, event)
		}
	}

	return filtered, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}
