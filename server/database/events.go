package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (d *Database) InsertEvent(ctx context.Context, event Event) error {
	query := `
		INSERT INTO events (id, name, description, location, datetime, tag, points, discord_id, hackathon_id, created_at)
		VALUES (:id, :name, :description, :location, :datetime, :tag, :points, :discord_id, :hackathon_id, now())
	`

	if _, err := d.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

func (d *Database) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var event Event
	if err := d.db.GetContext(ctx, &event, "SELECT * FROM events WHERE id = $1", eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (d *Database) GetEvents(ctx context.Context) ([]Event, error) {
	query := `
		SELECT * FROM events
		ORDER BY datetime DESC, name DESC
	`

	var events []Event
	if err := d.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

func (d *Database) UpdateEvent(ctx context.Context, event Event) error {
	query := `
		UPDATE events SET
			name = :name,
			description = :description,
			location = :location,
			datetime = :datetime,
			tag = :tag,
			points = :points,
			hackathon_id = :hackathon_id
		WHERE id = :id
	`

	if _, err := d.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	return nil
}

func (d *Database) DeleteEvent(ctx context.Context, eventID string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM events WHERE id = $1", eventID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// GetAttendedEvents returns the non-hackathon events a member has checked in
// to, each with its total attendance count.
func (d *Database) GetAttendedEvents(ctx context.Context, userID string) ([]AttendedEvent, error) {
	query := `
		SELECT e.*, COUNT(m.id) AS num_attended
		FROM events e
		LEFT JOIN event_attendees ea ON e.id = ea.event_id
		LEFT JOIN members m ON ea.member_id = m.id
		WHERE m.user_id = $1 AND e.hackathon_id IS NULL
		GROUP BY e.id
		ORDER BY e.datetime DESC, e.name DESC
	`

	var events []AttendedEvent
	if err := d.db.SelectContext(ctx, &events, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get attended events: %w", err)
	}

	return events, nil
}
