package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nfit_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nfit_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	OrdersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nfit_orders_created_total",
			Help: "Total number of orders placed",
		},
		[]string{"kind"},
	)

	OrdersConfirmedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nfit_orders_confirmed_total",
			Help: "Total number of orders confirmed",
		},
		[]string{"kind"},
	)

	MembershipsIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nfit_memberships_issued_total",
			Help: "Total number of memberships issued",
		},
		[]string{"billing_cycle"},
	)

	CheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nfit_checkins_total",
			Help: "Total number of successful gym check-ins",
		},
	)

	CheckInRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nfit_checkin_rejections_total",
			Help: "Total number of rejected check-in attempts",
		},
		[]string{"reason"},
	)

	CheckOutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nfit_checkouts_total",
			Help: "Total number of gym check-outs",
		},
	)

	CredentialRotationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nfit_credential_rotations_total",
			Help: "Total number of gym credential rotations",
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nfit_notifications_total",
			Help: "Total number of notification emails",
		},
		[]string{"type", "status"},
	)

	NotificationQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "nfit_notification_queue_length",
			Help: "Current length of the notification queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordOrderCreated(kind string) {
	OrdersCreatedTotal.WithLabelValues(kind).Inc()
}

func RecordOrderConfirmed(kind string) {
	OrdersConfirmedTotal.WithLabelValues(kind).Inc()
}

func RecordMembershipIssued(billingCycle string) {
	MembershipsIssuedTotal.WithLabelValues(billingCycle).Inc()
}

func RecordCheckIn() {
	CheckInsTotal.Inc()
}

func RecordCheckInRejection(reason string) {
	CheckInRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordCheckOut() {
	CheckOutsTotal.Inc()
}

func RecordCredentialRotation() {
	CredentialRotationsTotal.Inc()
}

func RecordNotification(notifType, status string) {
	NotificationsTotal.WithLabelValues(notifType, status).Inc()
}
