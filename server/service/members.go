package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/knighthacks/blade/server/database"
)

type MemberCreate struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	School       string
	LevelOfStudy string
	DOB          time.Time
	ShirtSize    string
	GithubURL    string
	LinkedinURL  string
	WebsiteURL   string
	ResumeURL    string
}

type MemberUpdate struct {
	ID string
	MemberCreate
}

// CreateMember registers the calling identity as a member. QR badge
// provisioning is best-effort; its failures are logged and never block
// registration.
func (s *Service) CreateMember(ctx context.Context, userID string, create MemberCreate) (*database.Member, error) {
	if _, err := s.store.GetMemberByUserID(ctx, userID); err != nil {
		if !errors.Is(err, database.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up existing member: %w", err)
		}

		if err = s.ProvisionQRCode(ctx, userID); err != nil {
			slog.ErrorContext(ctx, "failed to provision QR code", slog.String("user_id", userID), slog.Any("err", err))
		}
	}

	member := database.Member{
		ID:           uuid.NewString(),
		UserID:       userID,
		FirstName:    create.FirstName,
		LastName:     create.LastName,
		Email:        create.Email,
		Phone:        create.Phone,
		School:       create.School,
		LevelOfStudy: create.LevelOfStudy,
		DOB:          create.DOB,
		Age:          Age(create.DOB, time.Now()),
		ShirtSize:    create.ShirtSize,
		GithubURL:    create.GithubURL,
		LinkedinURL:  create.LinkedinURL,
		WebsiteURL:   create.WebsiteURL,
		ResumeURL:    create.ResumeURL,
	}

	if err := s.store.InsertMember(ctx, member); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrMemberExists
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return &member, nil
}

func (s *Service) UpdateMember(ctx context.Context, update MemberUpdate) error {
	if update.ID == "" {
		return fmt.Errorf("Member ID is required to update a member: %w", ErrMissingID)
	}

	member, err := s.store.GetMember(ctx, update.ID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to get member: %w", err)
	}

	resumeURL := update.ResumeURL
	if resumeURL == "" {
		resumeURL = member.ResumeURL
	}

	member.FirstName = update.FirstName
	member.LastName = update.LastName
	member.Email = update.Email
	member.Phone = update.Phone
	member.School = update.School
	member.LevelOfStudy = update.LevelOfStudy
	member.DOB = update.DOB
	member.Age = Age(update.DOB, time.Now())
	member.ShirtSize = update.ShirtSize
	member.GithubURL = update.GithubURL
	member.LinkedinURL = update.LinkedinURL
	member.WebsiteURL = update.WebsiteURL
	member.ResumeURL = resumeURL

	if err = s.store.UpdateMember(ctx, *member); err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	return nil
}

func (s *Service) DeleteMember(ctx context.Context, memberID string) error {
	if memberID == "" {
		return fmt.Errorf("Member ID is required to delete a member: %w", ErrMissingID)
	}

	if err := s.store.DeleteMember(ctx, memberID); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}

	return nil
}

// GetMember returns the member registered for the identity, or nil when the
// identity has not registered yet.
func (s *Service) GetMember(ctx context.Context, userID string) (*database.Member, error) {
	member, err := s.store.GetMemberByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

func (s *Service) ListMembers(ctx context.Context) ([]database.Member, error) {
	return s.store.GetMembers(ctx)
}

func (s *Service) ListAttendedEvents(ctx context.Context, userID string) ([]database.AttendedEvent, error) {
	return s.store.GetAttendedEvents(ctx, userID)
}
