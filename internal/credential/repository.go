package credential

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/db"
)

var (
	ErrCredentialNotFound = errors.New("credential not found")
	ErrRotationConflict   = errors.New("credential rotation conflict")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Rotate(ctx context.Context, gymID int, token string) (*GymAccessCredential, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE gym_access_credentials
		SET active = false, deactivated_at = NOW()
		WHERE gym_id = $1 AND active = true
	`, gymID)
	if err != nil {
		return nil, err
	}

	var cred GymAccessCredential
	err = tx.GetContext(ctx, &cred, `
		INSERT INTO gym_access_credentials (gym_id, token, active)
		VALUES ($1, $2, true)
		RETURNING id, gym_id, token, active, created_at, deactivated_at
	`, gymID, token)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrRotationConflict
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &cred, nil
}

func (r *repository) GetActive(ctx context.Context, gymID int) (*GymAccessCredential, error) {
	query := `
		SELECT id, gym_id, token, active, created_at, deactivated_at
		FROM gym_access_credentials
		WHERE gym_id = $1 AND active = true
	`

	var cred GymAccessCredential
	err := r.db.GetContext(ctx, &cred, query, gymID)
	if err != nil {
		return nil, err
	}

	return &cred, nil
}

func (r *repository) GetActiveByToken(ctx context.Context, token string) (*GymAccessCredential, error) {
	query := `
		SELECT id, gym_id, token, active, created_at, deactivated_at
		FROM gym_access_credentials
		WHERE token = $1 AND active = true
	`

	var cred GymAccessCredential
	err := r.db.GetContext(ctx, &cred, query, token)
	if err != nil {
		return nil, err
	}

	return &cred, nil
}

func (r *repository) Deactivate(ctx context.Context, gymID int) (int64, error) {
	query := `
		UPDATE gym_access_credentials
		SET active = false, deactivated_at = NOW()
		WHERE gym_id = $1 AND active = true
	`

	result, err := r.db.ExecContext(ctx, query, gymID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
