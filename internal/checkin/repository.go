package checkin

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/db"
)

var (
	ErrSessionNotFound  = errors.New("check-in session not found")
	ErrAlreadyCheckedIn = errors.New("user already has an active session")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, userID, gymID int, notes string) (*CheckInSession, error) {
	query := `
		INSERT INTO check_in_sessions (user_id, gym_id, status, notes, checked_in_at)
		VALUES ($1, $2, 'active', $3, NOW())
		RETURNING id, user_id, gym_id, status, notes, checked_in_at, checked_out_at
	`

	var s CheckInSession
	err := r.db.GetContext(ctx, &s, query, userID, gymID, notes)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	return &s, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*CheckInSession, error) {
	query := `
		SELECT id, user_id, gym_id, status, notes, checked_in_at, checked_out_at
		FROM check_in_sessions
		WHERE id = $1
	`

	var s CheckInSession
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) CheckOut(ctx context.Context, id int) (*CheckInSession, error) {
	query := `
		UPDATE check_in_sessions
		SET status = 'checked_out', checked_out_at = NOW()
		WHERE id = $1 AND status = 'active'
		RETURNING id, user_id, gym_id, status, notes, checked_in_at, checked_out_at
	`

	var s CheckInSession
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) CountActive(ctx context.Context, gymID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM check_in_sessions
		WHERE gym_id = $1 AND status = 'active'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, gymID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]CheckInSession, error) {
	query := `
		SELECT id, user_id, gym_id, status, notes, checked_in_at, checked_out_at
		FROM check_in_sessions
		WHERE user_id = $1
		ORDER BY checked_in_at DESC
	`

	var sessions []CheckInSession
	err := r.db.SelectContext(ctx, &sessions, query, userID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}
