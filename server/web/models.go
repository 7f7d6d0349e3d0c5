package web

import (
	"time"

	"github.com/knighthacks/blade/internal/omit"
	"github.com/knighthacks/blade/server/database"
)

type Member struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	School       string    `json:"school,omitempty"`
	LevelOfStudy string    `json:"level_of_study,omitempty"`
	DOB          string    `json:"dob"`
	Age          int       `json:"age"`
	ShirtSize    string    `json:"shirt_size,omitempty"`
	GithubURL    string    `json:"github_url,omitempty"`
	LinkedinURL  string    `json:"linkedin_url,omitempty"`
	WebsiteURL   string    `json:"website_url,omitempty"`
	ResumeURL    string    `json:"resume_url,omitempty"`
	Points       int       `json:"points"`
	JoinedAt     time.Time `json:"joined_at"`
}

func newMember(member database.Member) Member {
	return Member{
		ID:           member.ID,
		UserID:       member.UserID,
		FirstName:    member.FirstName,
		LastName:     member.LastName,
		Email:        member.Email,
		Phone:        member.Phone,
		School:       member.School,
		LevelOfStudy: member.LevelOfStudy,
		DOB:          member.DOB.Format(time.DateOnly),
		Age:          member.Age,
		ShirtSize:    member.ShirtSize,
		GithubURL:    member.GithubURL,
		LinkedinURL:  member.LinkedinURL,
		WebsiteURL:   member.WebsiteURL,
		ResumeURL:    member.ResumeURL,
		Points:       member.Points,
		JoinedAt:     member.JoinedAt,
	}
}

func newMembers(members []database.Member) []Member {
	out := make([]Member, 0, len(members))
	for _, member := range members {
		out = append(out, newMember(member))
	}
	return out
}

type MemberRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	School       string `json:"school"`
	LevelOfStudy string `json:"level_of_study"`
	DOB          string `json:"dob"`
	ShirtSize    string `json:"shirt_size"`
	GithubURL    string `json:"github_url"`
	LinkedinURL  string `json:"linkedin_url"`
	WebsiteURL   string `json:"website_url"`
	ResumeURL    string `json:"resume_url"`
}

type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Datetime    time.Time `json:"datetime"`
	Tag         string    `json:"tag,omitempty"`
	Points      int       `json:"points"`
	DiscordID   string    `json:"discord_id"`
	HackathonID string    `json:"hackathon_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newEvent(event database.Event) Event {
	return Event{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		Location:    event.Location,
		Datetime:    event.Datetime,
		Tag:         event.Tag,
		Points:      event.Points,
		DiscordID:   event.DiscordID,
		HackathonID: event.HackathonID.String,
		CreatedAt:   event.CreatedAt,
	}
}

func newEvents(events []database.Event) []Event {
	out := make([]Event, 0, len(events))
	for _, event := range events {
		out = append(out, newEvent(event))
	}
	return out
}

type AttendedEvent struct {
	Event
	NumAttended int `json:"num_attended"`
}

type EventCreateRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Datetime    time.Time `json:"datetime"`
	Tag         string    `json:"tag"`
	HackathonID string    `json:"hackathon_id"`
}

type EventUpdateRequest struct {
	Name        omit.Omit[string]    `json:"name,omitzero"`
	Description omit.Omit[string]    `json:"description,omitzero"`
	Location    omit.Omit[string]    `json:"location,omitzero"`
	Datetime    omit.Omit[time.Time] `json:"datetime,omitzero"`
	Tag         omit.Omit[string]    `json:"tag,omitzero"`
	HackathonID omit.Omit[string]    `json:"hackathon_id,omitzero"`
}

type Feedback struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"member_id"`
	EventID     string    `json:"event_id"`
	Rating      int       `json:"rating"`
	Comments    string    `json:"comments,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func newFeedback(feedback database.EventFeedback) Feedback {
	return Feedback{
		ID:          feedback.ID,
		MemberID:    feedback.MemberID,
		EventID:     feedback.EventID,
		Rating:      feedback.Feedback.V.Rating,
		Comments:    feedback.Feedback.V.Comments,
		SubmittedAt: feedback.SubmittedAt,
	}
}

type CheckInRequest struct {
	UserID string `json:"user_id"`
	Points int    `json:"points"`
}

type FeedbackRequest struct {
	MemberID string `json:"member_id"`
	Rating   int    `json:"rating"`
	Comments string `json:"comments"`
}
