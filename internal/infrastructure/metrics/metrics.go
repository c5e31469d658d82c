// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsSubmitted counts admitted movement records by direction and
	// the status they were admitted with (Pending or Approved).
	MovementsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakhaar_movements_submitted_total",
		Help: "Admitted movement records.",
	}, []string{"direction", "status"})

	// MovementsRejected counts admission failures by reason code.
	MovementsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakhaar_movements_rejected_total",
		Help: "Movement submissions refused at admission.",
	}, []string{"reason"})

	// RequestsDecided counts approval decisions on pending requests.
	RequestsDecided = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakhaar_requests_decided_total",
		Help: "Pending requests decided.",
	}, []string{"outcome"})

	// ReportsExported counts Excel report downloads by report type.
	ReportsExported = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bakhaar_reports_exported_total",
		Help: "Excel report exports.",
	}, []string{"type"})

	// HTTPRequestDuration observes request latency by route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bakhaar_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
