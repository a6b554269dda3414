package catalog

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrGymNotFound     = errors.New("gym not found")
	ErrPlanNotFound    = errors.New("plan not found")
	ErrProductNotFound = errors.New("product not found")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetGymByID(ctx context.Context, id int) (*Gym, error) {
	query := `
		SELECT id, name, location, is_active, created_at
		FROM gyms
		WHERE id = $1
	`

	var gym Gym
	err := r.db.GetContext(ctx, &gym, query, id)
	if err != nil {
		return nil, err
	}

	return &gym, nil
}

func (r *repository) ListGyms(ctx context.Context) ([]Gym, error) {
	query := `
		SELECT id, name, location, is_active, created_at
		FROM gyms
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	var gyms []Gym
	err := r.db.SelectContext(ctx, &gyms, query)
	if err != nil {
		return nil, err
	}

	return gyms, nil
}

func (r *repository) PlanIDsForGym(ctx context.Context, gymID int) ([]int, error) {
	query := `
		SELECT plan_id
		FROM gym_plans
		WHERE gym_id = $1
		ORDER BY plan_id ASC
	`

	var planIDs []int
	err := r.db.SelectContext(ctx, &planIDs, query, gymID)
	if err != nil {
		return nil, err
	}

	return planIDs, nil
}

func (r *repository) GetPlanByID(ctx context.Context, id int) (*Plan, error) {
	query := `
		SELECT id, name, billing_cycle, price_cents, created_at
		FROM plans
		WHERE id = $1
	`

	var plan Plan
	err := r.db.GetContext(ctx, &plan, query, id)
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (r *repository) ListPlans(ctx context.Context) ([]Plan, error) {
	query := `
		SELECT id, name, billing_cycle, price_cents, created_at
		FROM plans
		ORDER BY price_cents ASC
	`

	var plans []Plan
	err := r.db.SelectContext(ctx, &plans, query)
	if err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *repository) GetProductByID(ctx context.Context, id int) (*Product, error) {
	query := `
		SELECT id, name, price_cents, is_sellable, created_at
		FROM products
		WHERE id = $1
	`

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *repository) ListProducts(ctx context.Context) ([]Product, error) {
	query := `
		SELECT id, name, price_cents, is_sellable, created_at
		FROM products
		WHERE is_sellable = true
		ORDER BY name ASC
	`

	var products []Product
	err := r.db.SelectContext(ctx, &products, query)
	if err != nil {
		return nil, err
	}

	return products, nil
}
