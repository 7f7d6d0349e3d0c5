package database

import (
	"context"
	"fmt"
)

func (d *Database) HasEventFeedback(ctx context.Context, memberID string, eventID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM event_feedback
			WHERE member_id = $1 AND event_id = $2
		)
	`

	var exists bool
	if err := d.db.GetContext(ctx, &exists, query, memberID, eventID); err != nil {
		return false, fmt.Errorf("failed to check event feedback: %w", err)
	}

	return exists, nil
}

func (d *Database) InsertEventFeedback(ctx context.Context, feedback EventFeedback) error {
	query := `
		INSERT INTO event_feedback (id, member_id, event_id, feedback, submitted_at)
		VALUES (:id, :member_id, :event_id, :feedback, now())
	`

	if _, err := d.db.NamedExecContext(ctx, query, feedback); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert event feedback: %w", err)
	}

	return nil
}

func (d *Database) GetEventFeedback(ctx context.Context, eventID string) ([]EventFeedback, error) {
	query := `
		SELECT * FROM event_feedback
		WHERE event_id = $1
		ORDER BY submitted_at DESC
	`

	var feedback []EventFeedback
	if err := d.db.SelectContext(ctx, &feedback, query, eventID); err != nil {
		return nil, fmt.Errorf("failed to get event feedback: %w", err)
	}

	return feedback, nil
}
