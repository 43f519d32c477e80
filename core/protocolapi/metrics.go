package protocolapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScansTotal tracks server-side program-account scans.
	ScansTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monaco_client_scans_total",
		Help: "Total number of filtered program account scans",
	})

	// ScanDurationSeconds tracks scan round-trip latency.
	ScanDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "monaco_client_scan_duration_seconds",
		Help:    "Duration of filtered program account scans",
		Buckets: prometheus.DefBuckets,
	})

	// AccountFetchesTotal tracks accounts requested in batch fetches.
	AccountFetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monaco_client_account_fetches_total",
		Help: "Total number of accounts requested in batch fetches",
	})

	// AccountsPrunedTotal tracks accounts that vanished between the scan and
	// fetch phases and were dropped from results.
	AccountsPrunedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monaco_client_accounts_pruned_total",
		Help: "Total number of scanned accounts closed before the batch fetch",
	})

	// SubmissionsTotal tracks transaction submissions.
	SubmissionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monaco_client_tx_submissions_total",
		Help: "Total number of transaction submissions",
	})

	// SubmissionFailuresTotal tracks failed transaction submissions.
	SubmissionFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "monaco_client_tx_submission_failures_total",
		Help: "Total number of failed transaction submissions",
	})
)
