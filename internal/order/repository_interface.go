package order

import (
	"context"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/membership"
)

type Repository interface {
	CreateSupplementOrder(ctx context.Context, userID int, paymentMethod string, items []OrderItem, totalCents int64) (*Order, error)
	CreateSubscriptionOrder(ctx context.Context, userID, planID int, paymentMethod string, totalCents int64) (*Order, error)
	GetByID(ctx context.Context, id int) (*Order, error)
	ListByUser(ctx context.Context, userID int) ([]Order, error)
	ListItems(ctx context.Context, orderID int) ([]OrderItem, error)
	// Confirm flips the order to delivered and, for subscription orders,
	// issues the membership in the same transaction. plan must be non-nil
	// exactly when the order carries a plan reference.
	Confirm(ctx context.Context, o *Order, plan *catalog.Plan) (*membership.Membership, error)
	Cancel(ctx context.Context, id int) error
}
