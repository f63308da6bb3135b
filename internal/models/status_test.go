package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatusHistory_SeedsExactlyOneEntry(t *testing.T) {
	t.Parallel()

	h := NewStatusHistory(StatusPending, "received", "")

	require.Len(t, h, 1)
	assert.Equal(t, StatusPending, h.Current())
	assert.Equal(t, "received", h[0].Note)
	assert.False(t, h[0].UpdatedAt.IsZero())
}

func TestStatusHistory_AppendPreservesPriorEntries(t *testing.T) {
	t.Parallel()

	h := NewStatusHistory(StatusNew, "received", "")
	h2 := h.Append(StatusFollowup1, "called back", "admin@bytewave.com")
	h3 := h2.Append(StatusApproved, "", "admin@bytewave.com")

	require.Len(t, h3, 3)
	assert.Equal(t, StatusNew, h3[0].Status)
	assert.Equal(t, StatusFollowup1, h3[1].Status)
	assert.Equal(t, StatusApproved, h3.Current())

	// The original history is untouched
	require.Len(t, h, 1)
	assert.Equal(t, StatusNew, h.Current())
}

func TestStatusHistory_CurrentOfEmpty(t *testing.T) {
	t.Parallel()

	var h StatusHistory
	assert.Equal(t, Status(""), h.Current())
}
