package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPErrorsTotal counts error responses by error type
	HTTPErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moving_http_errors_total",
			Help: "Total HTTP error responses by error type",
		},
		[]string{"type"},
	)

	SessionsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moving_sessions_created_total",
			Help: "Total moving sessions created",
		},
	)

	BoxesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moving_boxes_created_total",
			Help: "Total moving boxes created",
		},
	)

	ExtrasEditsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moving_box_extras_edits_total",
			Help: "Total edits of box item lists",
		},
	)

	// ReportRunsTotal counts inventory report runs by trigger (scheduled/forced) and status
	ReportRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moving_report_runs_total",
			Help: "Total inventory report runs by trigger and status",
		},
		[]string{"trigger", "status"},
	)
)
