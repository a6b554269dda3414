package order

import (
	"context"
	"errors"
	"time"

	"github.com/NasibAsgarbayli/NFIT-sub000/internal/catalog"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/logger"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/membership"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/metrics"
	"github.com/NasibAsgarbayli/NFIT-sub000/internal/user"
)

var (
	ErrEmptyBasket        = errors.New("basket is empty")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductNotSellable = errors.New("product is not sellable")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrNotOrderOwner      = errors.New("caller does not own this order")
)

// Notifier is the best-effort notification collaborator. Failures are
// logged and dropped; they never fail the business operation.
type Notifier interface {
	SendOrderPlaced(ctx context.Context, recipients []string, buyerName string, orderID int, totalCents int64) error
	SendOrderConfirmed(ctx context.Context, recipients []string, buyerName string, orderID int) error
	SendMembershipActivated(ctx context.Context, recipients []string, buyerName, planName string, endsAt time.Time) error
}

type Service interface {
	CreateSupplementOrder(ctx context.Context, userID int, req CreateSupplementOrderRequest) (*Order, error)
	CreateSubscriptionOrder(ctx context.Context, userID int, req CreateSubscriptionOrderRequest) (*Order, error)
	Confirm(ctx context.Context, userID, orderID int) (*Order, error)
	Cancel(ctx context.Context, userID, orderID int) error
	ListMy(ctx context.Context, userID int) ([]Order, error)
	Get(ctx context.Context, callerID int, callerRole string, orderID int) (*OrderWithItems, error)
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
	userRepo    user.Repository
	notifier    Notifier
}

func NewService(repo Repository, catalogRepo catalog.Repository, userRepo user.Repository, notifier Notifier) Service {
	return &service{
		repo:        repo,
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (s *service) CreateSupplementOrder(ctx context.Context, userID int, req CreateSupplementOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyBasket
	}

	items := make([]OrderItem, 0, len(req.Items))
	var totalCents int64
	for _, line := range req.Items {
		product, err := s.catalogRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			return nil, ErrProductNotFound
		}
		if !product.IsSellable {
			return nil, ErrProductNotSellable
		}

		items = append(items, OrderItem{
			ProductID:      product.ID,
			Quantity:       line.Quantity,
			UnitPriceCents: product.PriceCents,
		})
		totalCents += int64(line.Quantity) * product.PriceCents
	}

	o, err := s.repo.CreateSupplementOrder(ctx, userID, req.PaymentMethod, items, totalCents)
	if err != nil {
		return nil, err
	}

	metrics.RecordOrderCreated(KindSupplement)
	s.notifyPlaced(ctx, o)

	return o, nil
}

func (s *service) CreateSubscriptionOrder(ctx context.Context, userID int, req CreateSubscriptionOrderRequest) (*Order, error) {
	plan, err := s.catalogRepo.GetPlanByID(ctx, req.PlanID)
	if err != nil {
		return nil, ErrPlanNotFound
	}

	o, err := s.repo.CreateSubscriptionOrder(ctx, userID, plan.ID, req.PaymentMethod, plan.PriceCents)
	if err != nil {
		return nil, err
	}

	metrics.RecordOrderCreated(KindSubscription)
	s.notifyPlaced(ctx, o)

	return o, nil
}

func (s *service) Confirm(ctx context.Context, userID, orderID int) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if o.UserID != userID {
		return nil, ErrNotOrderOwner
	}

	var plan *catalog.Plan
	if o.PlanID != nil {
		plan, err = s.catalogRepo.GetPlanByID(ctx, *o.PlanID)
		if err != nil {
			return nil, ErrPlanNotFound
		}
	}

	issued, err := s.repo.Confirm(ctx, o, plan)
	if err != nil {
		return nil, err
	}

	o.Status = StatusDelivered
	metrics.RecordOrderConfirmed(o.Kind())
	if issued != nil && plan != nil {
		metrics.RecordMembershipIssued(plan.BillingCycle)
	}

	s.notifyConfirmed(ctx, o, plan, issued)

	return o, nil
}

func (s *service) Cancel(ctx context.Context, userID, orderID int) error {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return ErrOrderNotFound
	}

	if o.UserID != userID {
		return ErrNotOrderOwner
	}

	return s.repo.Cancel(ctx, orderID)
}

func (s *service) ListMy(ctx context.Context, userID int) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, callerID int, callerRole string, orderID int) (*OrderWithItems, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, ErrOrderNotFound
	}

	if o.UserID != callerID && callerRole != user.RoleAdmin {
		return nil, ErrNotOrderOwner
	}

	result := &OrderWithItems{Order: *o}
	if o.PlanID == nil {
		items, err := s.repo.ListItems(ctx, orderID)
		if err != nil {
			return nil, err
		}
		result.Items = items
	}

	return result, nil
}

func (s *service) notifyPlaced(ctx context.Context, o *Order) {
	buyer, err := s.userRepo.FindByID(ctx, o.UserID)
	if err != nil {
		logger.Errorf("Order %d placed, but buyer %d lookup failed: %v", o.ID, o.UserID, err)
		return
	}

	if err := s.notifier.SendOrderPlaced(ctx, []string{buyer.Email}, buyer.Name, o.ID, o.TotalCents); err != nil {
		logger.Errorf("Failed to notify buyer about order %d: %v", o.ID, err)
	}

	admins, err := s.userRepo.AdminEmails(ctx)
	if err != nil {
		logger.Errorf("Admin email lookup failed for order %d: %v", o.ID, err)
		return
	}

	if err := s.notifier.SendOrderPlaced(ctx, admins, buyer.Name, o.ID, o.TotalCents); err != nil {
		logger.Errorf("Failed to notify staff about order %d: %v", o.ID, err)
	}
}

func (s *service) notifyConfirmed(ctx context.Context, o *Order, plan *catalog.Plan, issued *membership.Membership) {
	buyer, err := s.userRepo.FindByID(ctx, o.UserID)
	if err != nil {
		logger.Errorf("Order %d confirmed, but buyer %d lookup failed: %v", o.ID, o.UserID, err)
		return
	}

	if err := s.notifier.SendOrderConfirmed(ctx, []string{buyer.Email}, buyer.Name, o.ID); err != nil {
		logger.Errorf("Failed to notify buyer about order %d confirmation: %v", o.ID, err)
	}

	if issued != nil && plan != nil {
		if err := s.notifier.SendMembershipActivated(ctx, []string{buyer.Email}, buyer.Name, plan.Name, issued.EndsAt); err != nil {
			logger.Errorf("Failed to notify buyer about membership %d: %v", issued.ID, err)
		}
	}

	admins, err := s.userRepo.AdminEmails(ctx)
	if err != nil {
		logger.Errorf("Admin email lookup failed for order %d: %v", o.ID, err)
		return
	}

	if err := s.notifier.SendOrderConfirmed(ctx, admins, buyer.Name, o.ID); err != nil {
		logger.Errorf("Failed to notify staff about order %d confirmation: %v", o.ID, err)
	}
}
