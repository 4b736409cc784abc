package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Drop Metrics
var (
	DropResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropResolutions,
			Help: HelpTextDropResolutions,
		},
		[]string{LabelBoxKind},
	)

	DropGroupRolls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropGroupRolls,
			Help: HelpTextDropGroupRolls,
		},
		[]string{LabelBoxKind, LabelOutcome},
	)

	DroppedItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDroppedItems,
			Help: HelpTextDroppedItems,
		},
		[]string{LabelBoxKind},
	)

	MesoConverted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMesoConverted,
			Help: HelpTextMesoConverted,
		},
	)

	ResolutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameResolutionSeconds,
			Help:    HelpTextResolutionSeconds,
			Buckets: ResolutionBuckets,
		},
		[]string{LabelBoxKind},
	)
)

// Operations Metrics
var (
	LootRate = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLootRate,
			Help: HelpTextLootRate,
		},
		[]string{LabelRateKey},
	)

	DropLogRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDropLogQueued,
			Help: HelpTextDropLogQueued,
		},
		[]string{LabelOutcome},
	)

	DropLogPending = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameDropLogPending,
			Help: HelpTextDropLogPending,
		},
	)

	GameDataReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGameDataReloads,
			Help: HelpTextGameDataReloads,
		},
		[]string{LabelOutcome},
	)
)
