package service

import (
	"context"
	"fmt"
	"time"

	"github.com/knighthacks/blade/server/database"
)

// Store is the persistence surface the workflows run against. It is satisfied
// by *database.Database and by in-memory fakes in tests.
type Store interface {
	GetMember(ctx context.Context, memberID string) (*database.Member, error)
	GetMemberByUserID(ctx context.Context, userID string) (*database.Member, error)
	GetMembers(ctx context.Context) ([]database.Member, error)
	InsertMember(ctx context.Context, member database.Member) error
	UpdateMember(ctx context.Context, member database.Member) error
	DeleteMember(ctx context.Context, memberID string) error
	AddMemberPoints(ctx context.Context, memberID string, points int) error

	GetEvent(ctx context.Context, eventID string) (*database.Event, error)
	GetEvents(ctx context.Context) ([]database.Event, error)
	InsertEvent(ctx context.Context, event database.Event) error
	UpdateEvent(ctx context.Context, event database.Event) error
	DeleteEvent(ctx context.Context, eventID string) error
	GetAttendedEvents(ctx context.Context, userID string) ([]database.AttendedEvent, error)

	HasEventAttendee(ctx context.Context, memberID string, eventID string) (bool, error)
	InsertEventAttendee(ctx context.Context, attendee database.EventAttendee) error
	GetEventAttendees(ctx context.Context, eventID string) ([]database.Member, error)

	HasEventFeedback(ctx context.Context, memberID string, eventID string) (bool, error)
	InsertEventFeedback(ctx context.Context, feedback database.EventFeedback) error
	GetEventFeedback(ctx context.Context, eventID string) ([]database.EventFeedback, error)

	InsertDuesPayment(ctx context.Context, payment database.DuesPayment) error
	DeleteDuesPayments(ctx context.Context, memberID string) error
	DeleteAllDuesPayments(ctx context.Context) error
	GetDuesPayingMembers(ctx context.Context) ([]database.Member, error)
}

// Scheduler publishes events to the external scheduling service.
type Scheduler interface {
	CreateScheduledEvent(ctx context.Context, name string, description string, location string, start time.Time, end time.Time) (string, error)
}

// Notifier is a fire-and-forget log sink. Implementations swallow their own
// errors; a failed notification never fails the enclosing workflow.
type Notifier interface {
	Send(ctx context.Context, title string, message string, actorID string)
}

// ObjectStore holds member QR code images.
type ObjectStore interface {
	Put(ctx context.Context, name string, data []byte, contentType string) error
	Get(ctx context.Context, name string) ([]byte, error)
	Exists(ctx context.Context, name string) (bool, error)
}

type Config struct {
	DuesAmount int            `toml:"dues_amount"`
	Points     map[string]int `toml:"points"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n DuesAmount: %d\n Points: %v",
		c.DuesAmount,
		c.Points,
	)
}

func New(cfg Config, store Store, scheduler Scheduler, notifier Notifier, objects ObjectStore) *Service {
	return &Service{
		cfg:       cfg,
		store:     store,
		scheduler: scheduler,
		notifier:  notifier,
		objects:   objects,
	}
}

type Service struct {
	cfg       Config
	store     Store
	scheduler Scheduler
	notifier  Notifier
	objects   ObjectStore
}
