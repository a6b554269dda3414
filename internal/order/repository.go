package order

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/db"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/membership"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrAlreadyDelivered   = errors.New("order already delivered")
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrMembershipConflict = errors.New("membership conflict")
)

type repository struct {
	db             *sqlx.DB
	membershipRepo membership.Repository
}

func NewRepository(database *sqlx.DB, membershipRepo membership.Repository) Repository {
	return &repository{db: database, membershipRepo: membershipRepo}
}

func (r *repository) CreateSupplementOrder(ctx context.Context, userID int, paymentMethod string, items []OrderItem, totalCents int64) (*Order, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var o Order
	err = tx.GetContext(ctx, &o, `
		INSERT INTO orders (user_id, payment_method, status, total_cents)
		VALUES ($1, $2, 'pending', $3)
		RETURNING id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at
	`, userID, paymentMethod, totalCents)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4)
		`, o.ID, item.ProductID, item.Quantity, item.UnitPriceCents)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) CreateSubscriptionOrder(ctx context.Context, userID, planID int, paymentMethod string, totalCents int64) (*Order, error) {
	var o Order
	err := r.db.GetContext(ctx, &o, `
		INSERT INTO orders (user_id, plan_id, payment_method, status, total_cents)
		VALUES ($1, $2, $3, 'pending', $4)
		RETURNING id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at
	`, userID, planID, paymentMethod, totalCents)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Order, error) {
	query := `
		SELECT id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at
		FROM orders
		WHERE id = $1 AND status != 'deleted'
	`

	var o Order
	err := r.db.GetContext(ctx, &o, query, id)
	if err != nil {
		return nil, err
	}

	return &o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int) ([]Order, error) {
	query := `
		SELECT id, user_id, plan_id, payment_method, status, total_cents, created_at, updated_at
		FROM orders
		WHERE user_id = $1 AND status != 'deleted'
		ORDER BY created_at DESC
	`

	var orders []Order
	err := r.db.SelectContext(ctx, &orders, query, userID)
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *repository) ListItems(ctx context.Context, orderID int) ([]OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price_cents
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`

	var items []OrderItem
	err := r.db.SelectContext(ctx, &items, query, orderID)
	if err != nil {
		return nil, err
	}

	return items, nil
}

// Confirm is the single atomic unit of the purchase pipeline: the guarded
// status flip is the only replay guard, and membership issuance commits or
// rolls back together with it.
func (r *repository) Confirm(ctx context.Context, o *Order, plan *catalog.Plan) (*membership.Membership, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET status = 'delivered', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`, o.ID)
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}

	if rowsAffected == 0 {
		return nil, ErrAlreadyDelivered
	}

	var issued *membership.Membership
	if plan != nil {
		if err := r.membershipRepo.CloseActiveTx(ctx, tx, o.UserID); err != nil {
			return nil, err
		}

		now := time.Now()
		issued, err = r.membershipRepo.IssueTx(ctx, tx, o.UserID, plan.ID, now, membership.EndFor(now, plan.BillingCycle))
		if err != nil {
			if db.IsUniqueViolation(err) {
				return nil, ErrMembershipConflict
			}
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return issued, nil
}

func (r *repository) Cancel(ctx context.Context, id int) error {
	query := `
		UPDATE orders
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
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
		return ErrOrderNotPending
	}

	return nil
}
