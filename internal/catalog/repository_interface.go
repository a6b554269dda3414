package catalog

import "context"

// Repository is the read-only catalog store. Gyms, plans and products are
// administered elsewhere; this service only consumes them.
type Repository interface {
	GetGymByID(ctx context.Context, id int) (*Gym, error)
	ListGyms(ctx context.Context) ([]Gym, error)
	PlanIDsForGym(ctx context.Context, gymID int) ([]int, error)
	GetPlanByID(ctx context.Context, id int) (*Plan, error)
	ListPlans(ctx context.Context) ([]Plan, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
}
