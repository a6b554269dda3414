package catalog

import "time"

const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
)

type Gym struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Location  string    `db:"location" json:"location"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type Plan struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	BillingCycle string    `db:"billing_cycle" json:"billing_cycle"`
	PriceCents   int64     `db:"price_cents" json:"price_cents"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Product struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	IsSellable bool      `db:"is_sellable" json:"is_sellable"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
