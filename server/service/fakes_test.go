package service

import (
	"context"
	"sync"
	"time"

	"github.com/knighthacks/blade/server/database"
)

func newFakeStore() *fakeStore {
	return &fakeStore{
		members:   make(map[string]database.Member),
		events:    make(map[string]database.Event),
		attendees: make(map[string]map[string]bool),
		feedback:  make(map[string]database.EventFeedback),
	}
}

// fakeStore mimics the uniqueness and atomic-increment guarantees of the real
// store; its mutex stands in for the database's constraint enforcement.
type fakeStore struct {
	mu        sync.Mutex
	members   map[string]database.Member
	events    map[string]database.Event
	attendees map[string]map[string]bool
	feedback  map[string]database.EventFeedback
	dues      []database.DuesPayment
}

func (s *fakeStore) GetMember(_ context.Context, memberID string) (*database.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	member, ok := s.members[memberID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &member, nil
}

func (s *fakeStore) GetMemberByUserID(_ context.Context, userID string) (*database.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, member := range s.members {
		if member.UserID == userID {
			return &member, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) GetMembers(_ context.Context) ([]database.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := make([]database.Member, 0, len(s.members))
	for _, member := range s.members {
		members = append(members, member)
	}
	return members, nil
}

func (s *fakeStore) InsertMember(_ context.Context, member database.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.members {
		if existing.UserID == member.UserID {
			return database.ErrDuplicate
		}
	}
	s.members[member.ID] = member
	return nil
}

func (s *fakeStore) UpdateMember(_ context.Context, member database.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.members[member.ID] = member
	return nil
}

func (s *fakeStore) DeleteMember(_ context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.members, memberID)
	return nil
}

func (s *fakeStore) AddMemberPoints(_ context.Context, memberID string, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	member := s.members[memberID]
	member.Points += points
	s.members[memberID] = member
	return nil
}

func (s *fakeStore) GetEvent(_ context.Context, eventID string) (*database.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &event, nil
}

func (s *fakeStore) GetEvents(_ context.Context) ([]database.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]database.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	return events, nil
}

func (s *fakeStore) InsertEvent(_ context.Context, event database.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[event.ID] = event
	return nil
}

func (s *fakeStore) UpdateEvent(_ context.Context, event database.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events[event.ID] = event
	return nil
}

func (s *fakeStore) DeleteEvent(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.events, eventID)
	return nil
}

func (s *fakeStore) GetAttendedEvents(_ context.Context, _ string) ([]database.AttendedEvent, error) {
	return nil, nil
}

func (s *fakeStore) HasEventAttendee(_ context.Context, memberID string, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.attendees[memberID][eventID], nil
}

func (s *fakeStore) InsertEventAttendee(_ context.Context, attendee database.EventAttendee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attendees[attendee.MemberID][attendee.EventID] {
		return database.ErrDuplicate
	}
	if s.attendees[attendee.MemberID] == nil {
		s.attendees[attendee.MemberID] = make(map[string]bool)
	}
	s.attendees[attendee.MemberID][attendee.EventID] = true
	return nil
}

func (s *fakeStore) GetEventAttendees(_ context.Context, eventID string) ([]database.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var members []database.Member
	for memberID, events := range s.attendees {
		if events[eventID] {
			members = append(members, s.members[memberID])
		}
	}
	return members, nil
}

func (s *fakeStore) HasEventFeedback(_ context.Context, memberID string, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.feedback[memberID+"/"+eventID]
	return ok, nil
}

func (s *fakeStore) InsertEventFeedback(_ context.Context, feedback database.EventFeedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := feedback.MemberID + "/" + feedback.EventID
	if _, ok := s.feedback[key]; ok {
		return database.ErrDuplicate
	}
	s.feedback[key] = feedback
	return nil
}

func (s *fakeStore) GetEventFeedback(_ context.Context, eventID string) ([]database.EventFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var feedback []database.EventFeedback
	for _, f := range s.feedback {
		if f.EventID == eventID {
			feedback = append(feedback, f)
		}
	}
	return feedback, nil
}

func (s *fakeStore) InsertDuesPayment(_ context.Context, payment database.DuesPayment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dues = append(s.dues, payment)
	return nil
}

func (s *fakeStore) DeleteDuesPayments(_ context.Context, memberID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.dues[:0]
	for _, payment := range s.dues {
		if payment.MemberID != memberID {
			remaining = append(remaining, payment)
		}
	}
	s.dues = remaining
	return nil
}

func (s *fakeStore) DeleteAllDuesPayments(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dues = nil
	return nil
}

func (s *fakeStore) GetDuesPayingMembers(_ context.Context) ([]database.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var members []database.Member
	for _, member := range s.members {
		for _, payment := range s.dues {
			if payment.MemberID == member.ID {
				members = append(members, member)
				break
			}
		}
	}
	return members, nil
}

type scheduledEvent struct {
	Name        string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

type fakeScheduler struct {
	id     string
	err    error
	events []scheduledEvent
}

func (s *fakeScheduler) CreateScheduledEvent(_ context.Context, name string, description string, location string, start time.Time, end time.Time) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.events = append(s.events, scheduledEvent{
		Name:        name,
		Description: description,
		Location:    location,
		Start:       start,
		End:         end,
	})
	return s.id, nil
}

type notification struct {
	Title   string
	Message string
	ActorID string
}

type fakeNotifier struct {
	mu            sync.Mutex
	notifications []notification
}

func (n *fakeNotifier) Send(_ context.Context, title string, message string, actorID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.notifications = append(n.notifications, notification{
		Title:   title,
		Message: message,
		ActorID: actorID,
	})
}

type fakeObjectStore struct {
	mu      sync.Mutex
	putErr  error
	objects map[string][]byte
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{
		objects: make(map[string][]byte),
	}
}

func (o *fakeObjectStore) Put(_ context.Context, name string, data []byte, _ string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.putErr != nil {
		return o.putErr
	}
	o.objects[name] = data
	return nil
}

func (o *fakeObjectStore) Get(_ context.Context, name string) ([]byte, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	data, ok := o.objects[name]
	if !ok {
		return nil, database.ErrNotFound
	}
	return data, nil
}

func (o *fakeObjectStore) Exists(_ context.Context, name string) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, ok := o.objects[name]
	return ok, nil
}

func newTestService(store Store) (*Service, *fakeScheduler, *fakeNotifier, *fakeObjectStore) {
	scheduler := &fakeScheduler{id: "1234567890"}
	notifier := &fakeNotifier{}
	objects := newFakeObjectStore()

	svc := New(Config{
		DuesAmount: 10,
		Points: map[string]int{
			"gbm":      5,
			"workshop": 10,
		},
	}, store, scheduler, notifier, objects)

	return svc, scheduler, notifier, objects
}
