// Package metrics exposes dtengine's operational counters and gauges as
// Prometheus collectors, grounded on donnigundala-dg-cache's
// observability/prometheus.go. dg-cache's collector is pull-based, scraping
// a driver's Stats() snapshot on every Collect; dtengine's events (a change
// applied, an evaluation completing) are discrete and push-based, so
// Recorder registers ordinary promauto-style collectors instead of a custom
// prometheus.Collector, and callers push observations as they happen.
package metrics
