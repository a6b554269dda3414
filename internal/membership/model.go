package membership

import (
	"time"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
)

type Membership struct {
	ID        int        `db:"id" json:"id"`
	UserID    int        `db:"user_id" json:"user_id"`
	PlanID    int        `db:"plan_id" json:"plan_id"`
	StartsAt  time.Time  `db:"starts_at" json:"starts_at"`
	EndsAt    time.Time  `db:"ends_at" json:"ends_at"`
	Active    bool       `db:"active" json:"active"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

// CurrentMembership is a membership joined with its plan name for the
// member-facing view.
type CurrentMembership struct {
	Membership
	PlanName string `db:"plan_name" json:"plan_name"`
}

// EndFor computes the natural end of a membership started at start for the
// given billing cycle.
func EndFor(start time.Time, billingCycle string) time.Time {
	if billingCycle == catalog.BillingYearly {
		return start.AddDate(1, 0, 0)
	}
	return start.AddDate(0, 1, 0)
}
