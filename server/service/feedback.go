package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/knighthacks/blade/internal/xpgtype"
	"github.com/knighthacks/blade/server/database"
)

type FeedbackCreate struct {
	MemberID string
	EventID  string
	Payload  database.FeedbackPayload
}

// SubmitFeedback records one feedback submission per member per event. The
// duplicate gate runs before the existence checks, so a repeat submission for
// a since-deleted event still reports the duplicate.
func (s *Service) SubmitFeedback(ctx context.Context, actorID string, create FeedbackCreate) error {
	exists, err := s.store.HasEventFeedback(ctx, create.MemberID, create.EventID)
	if err != nil {
		return fmt.Errorf("failed to check existing feedback: %w", err)
	}
	if exists {
		return ErrDuplicateFeedback
	}

	event, err := s.store.GetEvent(ctx, create.EventID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	member, err := s.store.GetMember(ctx, create.MemberID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	if err = s.store.InsertEventFeedback(ctx, database.EventFeedback{
		ID:       uuid.NewString(),
		MemberID: create.MemberID,
		EventID:  create.EventID,
		Feedback: xpgtype.NewJSON(create.Payload),
	}); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return ErrDuplicateFeedback
		}
		return fmt.Errorf("failed to insert feedback: %w", err)
	}

	s.notifier.Send(ctx, "Feedback Given",
		fmt.Sprintf("%s gave feedback for %s!", member.FullName(), event.Name),
		actorID,
	)

	return nil
}

func (s *Service) ListEventFeedback(ctx context.Context, eventID string) ([]database.EventFeedback, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return s.store.GetEventFeedback(ctx, eventID)
}
