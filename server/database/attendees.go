package database

import (
	"context"
	"fmt"
)

func (d *Database) HasEventAttendee(ctx context.Context, memberID string, eventID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_attendees
			WHERE member_id = $1 AND event_id = $2
		)
	`

	var exists bool
	if err := d.db.GetContext(ctx, &exists, query, memberID, eventID); err != nil {
		return false, fmt.Errorf("failed to check event attendee: %w", err)
	}

	return exists, nil
}

func (d *Database) InsertEventAttendee(ctx context.Context, attendee EventAttendee) error {
	query := `
		INSERT INTO event_attendees (member_id, event_id, checked_in_at)
		VALUES (:member_id, :event_id, now())
	`

	if _, err := d.db.NamedExecContext(ctx, query, attendee); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert event attendee: %w", err)
	}

	return nil
}

func (d *Database) GetEventAttendees(ctx context.Context, eventID string) ([]Member, error) {
	query := `
		SELECT m.*
		FROM members m
		JOIN event_attendees ea ON m.id = ea.member_id
		WHERE ea.event_id = $1
		ORDER BY m.last_name, m.first_name, m.id
	`

	var members []Member
	if err := d.db.SelectContext(ctx, &members, query, eventID); err != nil {
		return nil, fmt.Errorf("failed to get event attendees: %w", err)
	}

	return members, nil
}
