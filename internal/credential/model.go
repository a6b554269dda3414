package credential

import "time"

// GymAccessCredential is the QR payload members scan at the gym door. At
// most one credential per gym is active at a time; rotation retires the old
// one in the same transaction that issues the new one.
type GymAccessCredential struct {
	ID            int        `db:"id" json:"id"`
	GymID         int        `db:"gym_id" json:"gym_id"`
	Token         string     `db:"token" json:"token"`
	Active        bool       `db:"active" json:"active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	DeactivatedAt *time.Time `db:"deactivated_at" json:"deactivated_at,omitempty"`
}
