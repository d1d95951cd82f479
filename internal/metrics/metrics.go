package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeRecorded        = "recorded"
	OutcomeRejected        = "rejected"
	OutcomeFailed          = "failed"
	OutcomeApproved        = "approved"
	OutcomeAlreadyApproved = "already_approved"
	OutcomeServed          = "served"
	OutcomeForbidden       = "forbidden"
	OutcomeNotFound        = "not_found"
)

var (
	// TopupRequestsTotal counts topup requests by outcome.
	TopupRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "topups",
		Name:      "requests_total",
		Help:      "Total topup requests by outcome.",
	}, []string{"outcome"})

	// MarkPaidTotal counts mark-paid calls by outcome.
	MarkPaidTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "topups",
		Name:      "mark_paid_total",
		Help:      "Total mark-paid calls by outcome.",
	}, []string{"outcome"})

	// PromotionsTotal counts subscription promotions by granted role.
	PromotionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "topups",
		Name:      "promotions_total",
		Help:      "Total user promotions by role.",
	}, []string{"role"})

	CredentialRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "topups",
		Name:      "credential_requests_total",
		Help:      "Total credential downloads by outcome.",
	}, []string{"outcome"})

	// HTTPDuration tracks request latency per route pattern and status code.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "topups",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "status"})
)
