package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knighthacks/blade/server/database"
)

func TestDues(t *testing.T) {
	store := newFakeStore()
	store.members["m1"] = database.Member{ID: "m1", UserID: "u1"}
	store.members["m2"] = database.Member{ID: "m2", UserID: "u2"}
	svc, _, _, _ := newTestService(store)

	paying, err := svc.ListDuesPayingMembers(t.Context())
	require.NoError(t, err)
	assert.Empty(t, paying)

	require.NoError(t, svc.MarkDuesPaid(t.Context(), "m1"))

	paying, err = svc.ListDuesPayingMembers(t.Context())
	require.NoError(t, err)
	require.Len(t, paying, 1)
	assert.Equal(t, "m1", paying[0].ID)

	// paying again leaves the member paying, with the configured amount
	require.NoError(t, svc.MarkDuesPaid(t.Context(), "m1"))
	require.Len(t, store.dues, 2)
	assert.Equal(t, 10, store.dues[0].Amount)

	require.NoError(t, svc.ClearDuesPaid(t.Context(), "m1"))

	paying, err = svc.ListDuesPayingMembers(t.Context())
	require.NoError(t, err)
	assert.Empty(t, paying)
}

func TestDues_ClearAll(t *testing.T) {
	store := newFakeStore()
	store.members["m1"] = database.Member{ID: "m1", UserID: "u1"}
	store.members["m2"] = database.Member{ID: "m2", UserID: "u2"}
	svc, _, _, _ := newTestService(store)

	require.NoError(t, svc.MarkDuesPaid(t.Context(), "m1"))
	require.NoError(t, svc.MarkDuesPaid(t.Context(), "m2"))

	require.NoError(t, svc.ClearAllDues(t.Context()))

	paying, err := svc.ListDuesPayingMembers(t.Context())
	require.NoError(t, err)
	assert.Empty(t, paying)
}

func TestDues_MissingID(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStore())

	assert.ErrorIs(t, svc.MarkDuesPaid(t.Context(), ""), ErrMissingID)
	assert.ErrorIs(t, svc.ClearDuesPaid(t.Context(), ""), ErrMissingID)
}
