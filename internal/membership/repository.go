package membership

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var ErrMembershipNotFound = errors.New("membership not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetCurrent(ctx context.Context, userID int) (*CurrentMembership, error) {
	query := `
		SELECT m.id, m.user_id, m.plan_id, m.starts_at, m.ends_at, m.active,
		       m.deleted_at, m.created_at, m.updated_at,
		       p.name AS plan_name
		FROM memberships m
		JOIN plans p ON m.plan_id = p.id
		WHERE m.user_id = $1 AND m.deleted_at IS NULL
		ORDER BY m.active DESC, m.starts_at DESC
		LIMIT 1
	`

	var m CurrentMembership
	err := r.db.GetContext(ctx, &m, query, userID)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetActive(ctx context.Context, userID int) (*Membership, error) {
	query := `
		SELECT id, user_id, plan_id, starts_at, ends_at, active, deleted_at, created_at, updated_at
		FROM memberships
		WHERE user_id = $1 AND active = true AND ends_at > NOW() AND deleted_at IS NULL
	`

	var m Membership
	err := r.db.GetContext(ctx, &m, query, userID)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Membership, error) {
	query := `
		SELECT id, user_id, plan_id, starts_at, ends_at, active, deleted_at, created_at, updated_at
		FROM memberships
		WHERE id = $1 AND deleted_at IS NULL
	`

	var m Membership
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

func (r *repository) CloseActive(ctx context.Context, userID int) (int64, error) {
	query := `
		UPDATE memberships
		SET active = false, ends_at = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND active = true AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

func (r *repository) Delete(ctx context.Context, id int) error {
	query := `
		UPDATE memberships
		SET deleted_at = NOW(), active = false, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrMembershipNotFound
	}

	return nil
}

func (r *repository) CloseActiveTx(ctx context.Context, tx *sqlx.Tx, userID int) error {
	query := `
		UPDATE memberships
		SET active = false, ends_at = NOW(), updated_at = NOW()
		WHERE user_id = $1 AND active = true AND deleted_at IS NULL
	`

	_, err := tx.ExecContext(ctx, query, userID)
	return err
}

func (r *repository) IssueTx(ctx context.Context, tx *sqlx.Tx, userID, planID int, start, end time.Time) (*Membership, error) {
	query := `
		INSERT INTO memberships (user_id, plan_id, starts_at, ends_at, active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id, user_id, plan_id, starts_at, ends_at, active, deleted_at, created_at, updated_at
	`

	var m Membership
	err := tx.GetContext(ctx, &m, query, userID, planID, start, end)
	if err != nil {
		return nil, err
	}

	return &m, nil
}
