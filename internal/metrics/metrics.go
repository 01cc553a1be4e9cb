package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the domain counters.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_ms",
			Help:    "Duration of HTTP requests in ms",
			Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600, 3200},
		},
		[]string{"method", "path"},
	)

	Payments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_payments_total",
			Help: "Checkout payments by outcome",
		},
		[]string{"outcome"},
	)

	GiftCardsPurchased = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storefront_gift_cards_purchased_total",
			Help: "Gift cards purchased",
		},
	)

	GiftCardRedemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_gift_card_redemptions_total",
			Help: "Gift card redemption attempts by outcome (success, invalid, expired, reverted)",
		},
		[]string{"outcome"},
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_auth_attempts_total",
			Help: "Sign-in and sign-up attempts by outcome",
		},
		[]string{"action", "outcome"},
	)

	PurchasesRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_purchases_recorded_total",
			Help: "Completed purchases handed to the recorder by outcome",
		},
		[]string{"outcome"},
	)
)

func Outcome(ok bool) string {
	if ok {
		return OutcomeSuccess
	}
	return OutcomeFailure
}
