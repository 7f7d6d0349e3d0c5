package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/knighthacks/blade/server/database"
)

type CheckInResult struct {
	Message string `json:"message"`
}

// CheckIn records a member's attendance at an event and awards the event's
// points. A scan for an identity with no registered member is a silent no-op;
// the result is nil in that case.
//
// The duplicate gate is enforced twice: once by lookup for a friendly error,
// and again by the store's unique pair constraint so two concurrent scans for
// the same pair produce exactly one success. Points are applied as a single
// arithmetic update, never read-modify-write.
func (s *Service) CheckIn(ctx context.Context, userID string, eventID string, points int) (*CheckInResult, error) {
	member, err := s.store.GetMemberByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve member: %w", err)
	}

	checkedIn, err := s.store.HasEventAttendee(ctx, member.ID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing check-in: %w", err)
	}
	if checkedIn {
		return nil, &DuplicateCheckInError{MemberName: member.FullName()}
	}

	if err = s.store.InsertEventAttendee(ctx, database.EventAttendee{
		MemberID: member.ID,
		EventID:  eventID,
	}); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, &DuplicateCheckInError{MemberName: member.FullName()}
		}
		return nil, fmt.Errorf("failed to insert check-in: %w", err)
	}

	if err = s.store.AddMemberPoints(ctx, member.ID, points); err != nil {
		return nil, fmt.Errorf("failed to add member points: %w", err)
	}

	return &CheckInResult{
		Message: fmt.Sprintf("%s has been checked in for the event", member.FullName()),
	}, nil
}

func (s *Service) ListEventAttendees(ctx context.Context, eventID string) ([]database.Member, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return s.store.GetEventAttendees(ctx, eventID)
}
