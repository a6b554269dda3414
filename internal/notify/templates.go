package notify

import (
	"context"
	"fmt"
	"time"
)

func (s *Service) SendOrderPlaced(ctx context.Context, recipients []string, buyerName string, orderID int, totalCents int64) error {
	subject := fmt.Sprintf("Order #%d placed", orderID)
	body := fmt.Sprintf(`Hi %s,

Your order #%d has been placed.

Total: %.2f

We will let you know once it is confirmed.

- NFIT Team`, buyerName, orderID, float64(totalCents)/100)

	return s.Send(ctx, recipients, "order_placed", subject, body)
}

func (s *Service) SendOrderConfirmed(ctx context.Context, recipients []string, buyerName string, orderID int) error {
	subject := fmt.Sprintf("Order #%d confirmed", orderID)
	body := fmt.Sprintf(`Hi %s,

Your order #%d has been confirmed and delivered.

Thank you for shopping with NFIT!

- NFIT Team`, buyerName, orderID)

	return s.Send(ctx, recipients, "order_confirmed", subject, body)
}

func (s *Service) SendMembershipActivated(ctx context.Context, recipients []string, buyerName, planName string, endsAt time.Time) error {
	subject := "Your NFIT membership is active"
	body := fmt.Sprintf(`Hi %s,

Your %s membership is now active and valid until %s.

See you at the gym!

- NFIT Team`, buyerName, planName, endsAt.Format("Jan 2, 2006"))

	return s.Send(ctx, recipients, "membership_activated", subject, body)
}
