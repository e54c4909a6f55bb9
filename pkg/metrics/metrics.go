package metrics

// Package metrics provides the prometheus metrics of the reconstruction engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultSolved      = "solved"
	ResultNoConsensus = "no_consensus"
	ResultRejected    = "rejected"
	ResultCanceled    = "canceled"
)

var (
	TotalReconstructions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shardrecover_total_reconstructions",
			Help: "Total reconstruction requests by outcome",
		},
		[]string{"result"},
	)

	TotalCombinationsEvaluated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shardrecover_total_combinations_evaluated",
		Help: "Total share combinations interpolated",
	})
	TotalCombinationsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shardrecover_total_combinations_skipped",
		Help: "Total share combinations discarded because interpolation failed",
	})

	TotalInvalidDigits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shardrecover_error_total_invalid_digits",
		Help: "Total share sets rejected for an invalid digit",
	})

	LastConfidence = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shardrecover_last_confidence",
		Help: "Number of combinations agreeing with the last reconstructed secret",
	})
	LastOutliers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shardrecover_last_outliers",
		Help: "Number of shares not on the last reconstructed polynomial (High count may indicate corrupted input)",
	})

	TimedReconstructLag = promauto.NewSummary(prometheus.SummaryOpts{
		Name:       "shardrecover_reconstruct_lag_seconds",
		Help:       "Seconds taken to search all combinations",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})
)
