package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Drop resolution metric names
const (
	MetricNameDropResolutions   = "drop_resolutions_total"
	MetricNameDropGroupRolls    = "drop_group_rolls_total"
	MetricNameDroppedItems      = "dropped_items_total"
	MetricNameMesoConverted     = "meso_converted_total"
	MetricNameLootRate          = "loot_rate_multiplier"
	MetricNameDropLogQueued     = "drop_log_records_total"
	MetricNameGameDataReloads   = "gamedata_reloads_total"
	MetricNameDropLogPending    = "drop_log_queue_pending"
	MetricNameResolutionSeconds = "drop_resolution_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Drop resolution help text
const (
	HelpTextDropResolutions   = "Total number of drop box resolutions"
	HelpTextDropGroupRolls    = "Total number of drop group evaluations by outcome"
	HelpTextDroppedItems      = "Total number of resolved items handed out"
	HelpTextMesoConverted     = "Total meso value produced by currency conversion"
	HelpTextLootRate          = "Current live loot rate multiplier"
	HelpTextDropLogQueued     = "Total number of drop log records by outcome"
	HelpTextGameDataReloads   = "Total number of game data reloads by outcome"
	HelpTextDropLogPending    = "Drop log inserts waiting in the queue"
	HelpTextResolutionSeconds = "Drop resolution latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelBoxKind = "box_kind"
	LabelOutcome = "outcome"
	LabelRateKey = "key"
)

// Group roll outcomes
const (
	OutcomeDropped    = "dropped"
	OutcomeVetoed     = "vetoed"
	OutcomeNoPositive = "no_positive"
	OutcomeZeroRate   = "zero_rate"
	OutcomeMissed     = "missed"
	OutcomeQueued     = "queued"
	OutcomeRejected   = "rejected"
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ResolutionBuckets covers in-process resolutions, from 1µs to 10ms
var ResolutionBuckets = []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001, .005, .01}

// UnmatchedRoute labels requests no route matched, keeping path cardinality bounded
const UnmatchedRoute = "unmatched"
