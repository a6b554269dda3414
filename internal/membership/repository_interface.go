package membership

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	// GetCurrent returns the active membership, or the most recently started
	// one as a history fallback when none is active.
	GetCurrent(ctx context.Context, userID int) (*CurrentMembership, error)
	// GetActive returns the active, unexpired membership only.
	GetActive(ctx context.Context, userID int) (*Membership, error)
	GetByID(ctx context.Context, id int) (*Membership, error)
	CloseActive(ctx context.Context, userID int) (int64, error)
	Delete(ctx context.Context, id int) error

	// CloseActiveTx and IssueTx run inside a caller-owned transaction so
	// order confirmation and membership issuance commit as one unit.
	CloseActiveTx(ctx context.Context, tx *sqlx.Tx, userID int) error
	IssueTx(ctx context.Context, tx *sqlx.Tx, userID, planID int, start, end time.Time) (*Membership, error)
}
