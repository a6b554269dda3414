package checkin

import "time"

const (
	StatusActive     = "active"
	StatusCheckedOut = "checked_out"
)

// CheckInSession tracks one visit: it opens at the door scan and closes when
// the member checks out. A member has at most one active session across all
// gyms.
type CheckInSession struct {
	ID           int        `db:"id" json:"id"`
	UserID       int        `db:"user_id" json:"user_id"`
	GymID        int        `db:"gym_id" json:"gym_id"`
	Status       string     `db:"status" json:"status"`
	Notes        string     `db:"notes" json:"notes,omitempty"`
	CheckedInAt  time.Time  `db:"checked_in_at" json:"checked_in_at"`
	CheckedOutAt *time.Time `db:"checked_out_at" json:"checked_out_at,omitempty"`
}

// Duration is derived, never stored. Open sessions have no duration yet.
func (s *CheckInSession) Duration() (time.Duration, bool) {
	if s.CheckedOutAt == nil {
		return 0, false
	}
	return s.CheckedOutAt.Sub(s.CheckedInAt), true
}

type CheckInRequest struct {
	Token string `json:"token" binding:"required"`
	Notes string `json:"notes"`
}

// SessionWithDuration is the read shape for session history; closed sessions
// carry their derived duration in seconds.
type SessionWithDuration struct {
	CheckInSession
	DurationSeconds *int64 `json:"duration_seconds,omitempty"`
}

func withDuration(s CheckInSession) SessionWithDuration {
	out := SessionWithDuration{CheckInSession: s}
	if d, ok := s.Duration(); ok {
		secs := int64(d.Seconds())
		out.DurationSeconds = &secs
	}
	return out
}
