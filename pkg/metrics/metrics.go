package metrics

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// CaptureBuckets are histogram buckets in seconds sized for page captures,
// which routinely take several seconds and are capped by the capture budget.
var CaptureBuckets = []float64{.25, .5, 1, 2.5, 5, 10, 15, 20, 30, 45, 60} //nolint: gochecknoglobals
