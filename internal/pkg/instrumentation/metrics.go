package instrumentation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "healthfirst_login_attempts_total",
		Help: "Login attempts partitioned by outcome.",
	}, []string{"outcome"})

	ForcedLogoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthfirst_forced_logouts_total",
		Help: "Sessions cleared because a downstream call came back unauthorized.",
	})

	WizardsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "healthfirst_wizards_created_total",
		Help: "Registration wizards created, partitioned by kind and mode.",
	}, []string{"kind", "mode"})

	WizardSubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "healthfirst_wizard_submissions_total",
		Help: "Wizard submit attempts partitioned by kind and outcome.",
	}, []string{"kind", "outcome"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "healthfirst_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
