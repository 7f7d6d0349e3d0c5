package database

import (
	"database/sql"
	"time"

	"github.com/knighthacks/blade/internal/xpgtype"
)

type Member struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	School       string    `db:"school"`
	LevelOfStudy string    `db:"level_of_study"`
	DOB          time.Time `db:"dob"`
	Age          int       `db:"age"`
	ShirtSize    string    `db:"shirt_size"`
	GithubURL    string    `db:"github_url"`
	LinkedinURL  string    `db:"linkedin_url"`
	WebsiteURL   string    `db:"website_url"`
	ResumeURL    string    `db:"resume_url"`
	Points       int       `db:"points"`
	JoinedAt     time.Time `db:"joined_at"`
}

func (m Member) FullName() string {
	return m.FirstName + " " + m.LastName
}

type Event struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Location    string         `db:"location"`
	Datetime    time.Time      `db:"datetime"`
	Tag         string         `db:"tag"`
	Points      int            `db:"points"`
	DiscordID   string         `db:"discord_id"`
	HackathonID sql.NullString `db:"hackathon_id"`
	CreatedAt   time.Time      `db:"created_at"`
}

type EventAttendee struct {
	MemberID    string    `db:"member_id"`
	EventID     string    `db:"event_id"`
	CheckedInAt time.Time `db:"checked_in_at"`
}

type EventFeedback struct {
	ID          string                        `db:"id"`
	MemberID    string                        `db:"member_id"`
	EventID     string                        `db:"event_id"`
	Feedback    xpgtype.JSON[FeedbackPayload] `db:"feedback"`
	SubmittedAt time.Time                     `db:"submitted_at"`
}

type FeedbackPayload struct {
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}

type DuesPayment struct {
	ID          string    `db:"id"`
	MemberID    string    `db:"member_id"`
	Amount      int       `db:"amount"`
	PaymentDate time.Time `db:"payment_date"`
	Year        int       `db:"year"`
}

// AttendedEvent is an event joined with the number of members checked in to it.
type AttendedEvent struct {
	Event
	NumAttended int `db:"num_attended"`
}

type User struct {
	ID          string    `db:"id"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
	AvatarURL   string    `db:"avatar_url"`
	ImportedAt  time.Time `db:"imported_at"`
}

type Session struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
	UserID    string    `db:"user_id"`
	Admin     bool      `db:"admin"`
}

type SessionWithUser struct {
	Session
	User
}
