package service

import (
	"errors"
)

var (
	ErrMissingID         = errors.New("missing required ID")
	ErrMemberNotFound    = errors.New("Member not found!")
	ErrEventNotFound     = errors.New("Event not found!")
	ErrMemberExists      = errors.New("Member is already registered")
	ErrDuplicateFeedback = errors.New("Cannot give feedback more than once for this event!")
	ErrExternalPublish   = errors.New("Failed to create event in Discord")
)

// DuplicateCheckInError names the member so the scanning admin can tell who
// double-scanned.
type DuplicateCheckInError struct {
	MemberName string
}

func (e *DuplicateCheckInError) Error() string {
	return e.MemberName + " is already checked in for the event"
}
