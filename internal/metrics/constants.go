package metrics

// Metric label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelResult  = "result"
	LabelOutcome = "outcome"
)

// Label values for logins_total
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Label values for transcript_requests_total
const (
	OutcomeNew       = "new"
	OutcomeDuplicate = "duplicate"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, ranging from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
