package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knighthacks/blade/server/database"
)

func TestCheckIn(t *testing.T) {
	store := newFakeStore()
	store.members["m1"] = database.Member{
		ID:        "m1",
		UserID:    "u1",
		FirstName: "Lenny",
		LastName:  "Lion",
	}
	svc, _, _, _ := newTestService(store)

	result, err := svc.CheckIn(t.Context(), "u1", "e1", 5)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Lenny Lion has been checked in for the event", result.Message)
	assert.Equal(t, 5, store.members["m1"].Points)
}

func TestCheckIn_UnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStore())

	result, err := svc.CheckIn(t.Context(), "u-missing", "e1", 5)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCheckIn_Duplicate(t *testing.T) {
	store := newFakeStore()
	store.members["m1"] = database.Member{
		ID:        "m1",
		UserID:    "u1",
		FirstName: "Lenny",
		LastName:  "Lion",
	}
	svc, _, _, _ := newTestService(store)

	_, err := svc.CheckIn(t.Context(), "u1", "e1", 5)
	require.NoError(t, err)

	result, err := svc.CheckIn(t.Context(), "u1", "e1", 5)
	assert.Nil(t, result)

	var dupErr *DuplicateCheckInError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Lenny Lion is already checked in for the event", dupErr.Error())

	// the duplicate scan must not award points a second time
	assert.Equal(t, 5, store.members["m1"].Points)
}

func TestListEventAttendees(t *testing.T) {
	store := newFakeStore()
	store.members["m1"] = database.Member{
		ID:        "m1",
		UserID:    "u1",
		FirstName: "Lenny",
		LastName:  "Lion",
	}
	store.events["e1"] = database.Event{ID: "e1", Name: "Intro to Go"}
	svc, _, _, _ := newTestService(store)

	_, err := svc.CheckIn(t.Context(), "u1", "e1", 5)
	require.NoError(t, err)

	attendees, err := svc.ListEventAttendees(t.Context(), "e1")
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.Equal(t, "m1", attendees[0].ID)

	_, err = svc.ListEventAttendees(t.Context(), "e-missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestCheckIn_Concurrent(t *testing.T) {
	store := newFakeStore()
	store.members["m1"] = database.Member{
		ID:        "m1",
		UserID:    "u1",
		FirstName: "Lenny",
		LastName:  "Lion",
	}
	svc, _, _, _ := newTestService(store)

	const scans = 8
	errs := make([]error, scans)

	var wg sync.WaitGroup
	for i := range scans {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = svc.CheckIn(t.Context(), "u1", "e1", 5)
		}()
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		var dupErr *DuplicateCheckInError
		require.ErrorAs(t, err, &dupErr)
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, 5, store.members["m1"].Points)
}
