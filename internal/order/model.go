package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
	StatusDeleted   Status = "deleted"
)

const (
	KindSupplement   = "supplement"
	KindSubscription = "subscription"
)

type Order struct {
	ID            int       `db:"id" json:"id"`
	UserID        int       `db:"user_id" json:"user_id"`
	PlanID        *int      `db:"plan_id" json:"plan_id,omitempty"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	Status        Status    `db:"status" json:"status"`
	TotalCents    int64     `db:"total_cents" json:"total_cents"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Kind reports whether the order purchases a subscription plan or a
// supplement basket.
func (o *Order) Kind() string {
	if o.PlanID != nil {
		return KindSubscription
	}
	return KindSupplement
}

// OrderItem is one supplement line with its unit price snapshotted at order
// time, so later catalog price changes never alter the ledger.
type OrderItem struct {
	ID             int   `db:"id" json:"id"`
	OrderID        int   `db:"order_id" json:"order_id"`
	ProductID      int   `db:"product_id" json:"product_id"`
	Quantity       int   `db:"quantity" json:"quantity"`
	UnitPriceCents int64 `db:"unit_price_cents" json:"unit_price_cents"`
}

type ItemRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type CreateSupplementOrderRequest struct {
	Items         []ItemRequest `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string        `json:"payment_method" binding:"required,payment_method"`
}

type CreateSubscriptionOrderRequest struct {
	PlanID        int    `json:"plan_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required,payment_method"`
}

type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items,omitempty"`
}
