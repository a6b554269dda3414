package checkin

import "context"

type Repository interface {
	// Create opens an active session. A second active session for the same
	// user violates the storage unique index and returns ErrAlreadyCheckedIn.
	Create(ctx context.Context, userID, gymID int, notes string) (*CheckInSession, error)
	GetByID(ctx context.Context, id int) (*CheckInSession, error)
	// CheckOut closes the session if it is still active and returns the
	// closed row; a session that is already closed returns no row.
	CheckOut(ctx context.Context, id int) (*CheckInSession, error)
	CountActive(ctx context.Context, gymID int) (int, error)
	ListByUser(ctx context.Context, userID int) ([]CheckInSession, error)
}
