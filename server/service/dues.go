package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/knighthacks/blade/server/database"
)

func (s *Service) MarkDuesPaid(ctx context.Context, memberID string) error {
	if memberID == "" {
		return fmt.Errorf("Member ID is required to update dues paying status: %w", ErrMissingID)
	}

	now := time.Now()
	if err := s.store.InsertDuesPayment(ctx, database.DuesPayment{
		ID:          uuid.NewString(),
		MemberID:    memberID,
		Amount:      s.cfg.DuesAmount,
		PaymentDate: now,
		Year:        now.Year(),
	}); err != nil {
		return fmt.Errorf("failed to mark dues paid: %w", err)
	}

	return nil
}

func (s *Service) ClearDuesPaid(ctx context.Context, memberID string) error {
	if memberID == "" {
		return fmt.Errorf("Member ID is required to update dues paying status: %w", ErrMissingID)
	}

	if err := s.store.DeleteDuesPayments(ctx, memberID); err != nil {
		return fmt.Errorf("failed to clear dues paid: %w", err)
	}

	return nil
}

// ClearAllDues wipes the entire ledger for every member and year. There is no
// confirmation step here; callers gate this behind the admin surface.
func (s *Service) ClearAllDues(ctx context.Context) error {
	if err := s.store.DeleteAllDuesPayments(ctx); err != nil {
		return fmt.Errorf("failed to clear all dues: %w", err)
	}

	return nil
}

func (s *Service) ListDuesPayingMembers(ctx context.Context) ([]database.Member, error) {
	return s.store.GetDuesPayingMembers(ctx)
}
