package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knighthacks/blade/server/database"
)

func feedbackFixtures(store *fakeStore) {
	store.members["m1"] = database.Member{
		ID:        "m1",
		UserID:    "u1",
		FirstName: "Lenny",
		LastName:  "Lion",
	}
	store.events["e1"] = database.Event{
		ID:   "e1",
		Name: "Intro to Go",
	}
}

func TestSubmitFeedback(t *testing.T) {
	store := newFakeStore()
	feedbackFixtures(store)
	svc, _, notifier, _ := newTestService(store)

	err := svc.SubmitFeedback(t.Context(), "admin-1", FeedbackCreate{
		MemberID: "m1",
		EventID:  "e1",
		Payload: database.FeedbackPayload{
			Rating:   4,
			Comments: "great pacing",
		},
	})
	require.NoError(t, err)

	stored, ok := store.feedback["m1/e1"]
	require.True(t, ok)
	assert.Equal(t, 4, stored.Feedback.V.Rating)

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, "Feedback Given", notifier.notifications[0].Title)
	assert.Equal(t, "Lenny Lion gave feedback for Intro to Go!", notifier.notifications[0].Message)
	assert.Equal(t, "admin-1", notifier.notifications[0].ActorID)
}

func TestSubmitFeedback_Duplicate(t *testing.T) {
	store := newFakeStore()
	feedbackFixtures(store)
	svc, _, notifier, _ := newTestService(store)

	create := FeedbackCreate{
		MemberID: "m1",
		EventID:  "e1",
		Payload:  database.FeedbackPayload{Rating: 4},
	}
	require.NoError(t, svc.SubmitFeedback(t.Context(), "admin-1", create))

	err := svc.SubmitFeedback(t.Context(), "admin-1", create)
	assert.ErrorIs(t, err, ErrDuplicateFeedback)
	assert.Len(t, notifier.notifications, 1)
}

func TestSubmitFeedback_DuplicateBeforeExistence(t *testing.T) {
	// the duplicate gate wins even when the event has since been deleted
	store := newFakeStore()
	feedbackFixtures(store)
	svc, _, _, _ := newTestService(store)

	create := FeedbackCreate{
		MemberID: "m1",
		EventID:  "e1",
		Payload:  database.FeedbackPayload{Rating: 4},
	}
	require.NoError(t, svc.SubmitFeedback(t.Context(), "admin-1", create))
	require.NoError(t, svc.DeleteEvent(t.Context(), "e1"))

	err := svc.SubmitFeedback(t.Context(), "admin-1", create)
	assert.ErrorIs(t, err, ErrDuplicateFeedback)
}

func TestListEventFeedback(t *testing.T) {
	store := newFakeStore()
	feedbackFixtures(store)
	svc, _, _, _ := newTestService(store)

	require.NoError(t, svc.SubmitFeedback(t.Context(), "admin-1", FeedbackCreate{
		MemberID: "m1",
		EventID:  "e1",
		Payload:  database.FeedbackPayload{Rating: 5, Comments: "more snacks"},
	}))

	feedback, err := svc.ListEventFeedback(t.Context(), "e1")
	require.NoError(t, err)
	require.Len(t, feedback, 1)
	assert.Equal(t, "more snacks", feedback[0].Feedback.V.Comments)

	_, err = svc.ListEventFeedback(t.Context(), "e-missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSubmitFeedback_EventNotFound(t *testing.T) {
	store := newFakeStore()
	feedbackFixtures(store)
	svc, _, _, _ := newTestService(store)

	err := svc.SubmitFeedback(t.Context(), "admin-1", FeedbackCreate{
		MemberID: "m1",
		EventID:  "e-missing",
	})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSubmitFeedback_MemberNotFound(t *testing.T) {
	store := newFakeStore()
	feedbackFixtures(store)
	svc, _, _, _ := newTestService(store)

	err := svc.SubmitFeedback(t.Context(), "admin-1", FeedbackCreate{
		MemberID: "m-missing",
		EventID:  "e1",
	})
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
