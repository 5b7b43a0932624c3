package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_sessions_created_total",
		Help: "Checkout sessions successfully created at the processor.",
	})

	StatusLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "checkout_status_lookups_total",
		Help: "Session status lookups successfully resolved.",
	})

	ProcessorFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_processor_failures_total",
		Help: "Processor calls that failed, by operation.",
	}, []string{"operation"})
)
