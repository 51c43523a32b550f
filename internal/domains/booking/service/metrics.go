package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeCreated        = "created"
	outcomePaymentFailed  = "payment_failed"
	outcomeBackendFailed  = "backend_failed"
	outcomeDuplicateBlock = "duplicate_blocked"
)

var submissions = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "glamp",
	Subsystem: "booking",
	Name:      "submissions_total",
	Help:      "Booking confirmations by payment method and outcome.",
}, []string{"method", "outcome"})
