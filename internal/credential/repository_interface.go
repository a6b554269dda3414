package credential

import "context"

type Repository interface {
	// Rotate deactivates any active credential for the gym and inserts the
	// new token, atomically.
	Rotate(ctx context.Context, gymID int, token string) (*GymAccessCredential, error)
	GetActive(ctx context.Context, gymID int) (*GymAccessCredential, error)
	// GetActiveByToken resolves a scanned token; only active credentials
	// resolve.
	GetActiveByToken(ctx context.Context, token string) (*GymAccessCredential, error)
	// Deactivate retires the gym's active credential without issuing a
	// replacement. Returns the number of credentials retired.
	Deactivate(ctx context.Context, gymID int) (int64, error)
}
