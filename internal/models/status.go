package models

import "time"

// Status represents a submission's position in its review workflow
type Status string

const (
	StatusPartial   Status = "partial" // buffered draft, not yet submitted
	StatusNew       Status = "new"
	StatusPending   Status = "pending"
	StatusFollowup1 Status = "followup1"
	StatusFollowup2 Status = "followup2"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed" // training requests only
)

// StatusEntry is a single record in a submission's audit trail
type StatusEntry struct {
	Status    Status    `json:"status"`
	Note      string    `json:"note,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// StatusHistory is the append-only audit log of status transitions.
// Entries are never rewritten or removed; the current status is always
// the last element.
type StatusHistory []StatusEntry

// NewStatusHistory seeds a history with exactly one entry
func NewStatusHistory(initial Status, note, updatedBy string) StatusHistory {
	return StatusHistory{{
		Status:    initial,
		Note:      note,
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
	}}
}

// Append returns a new history with the entry added at the end.
// This is the only mutator; prior entries are left untouched.
func (h StatusHistory) Append(status Status, note, updatedBy string) StatusHistory {
	out := make(StatusHistory, len(h), len(h)+1)
	copy(out, h)
	return append(out, StatusEntry{
		Status:    status,
		Note:      note,
		UpdatedAt: time.Now(),
		UpdatedBy: updatedBy,
	})
}

// Current returns the status of the last entry, or "" for an empty history
func (h StatusHistory) Current() Status {
	if len(h) == 0 {
		return ""
	}
	return h[len(h)-1].Status
}
