package prometheus

import (
	"time"

	"github.com/turtacn/SLA-Sentinel/internal/application/escalation"
)

// Run duration buckets: a batch over a few thousand findings plus two
// notification channels per item can take minutes.
var defaultRunDurationBuckets = []float64{.5, 1, 5, 15, 30, 60, 120, 300, 600}

// EngineMetrics exposes the escalation engine's operational metrics and
// satisfies the runner's Metrics port.
type EngineMetrics struct {
	RunsTotal              CounterVec
	RunDuration            HistogramVec
	FindingsChecked        CounterVec
	WarningsSent           CounterVec
	EscalationsSent        CounterVec
	UnresolvableRecipients CounterVec
	ItemFailures           CounterVec
	LastRunTimestamp       GaugeVec
}

// NewEngineMetrics registers the engine metrics on collector.
func NewEngineMetrics(collector MetricsCollector) *EngineMetrics {
	return &EngineMetrics{
		RunsTotal:              collector.RegisterCounter("runs_total", "Escalation runs by result", "result"),
		RunDuration:            collector.RegisterHistogram("run_duration_seconds", "Escalation run duration", defaultRunDurationBuckets),
		FindingsChecked:        collector.RegisterCounter("findings_checked_total", "Findings evaluated across runs"),
		WarningsSent:           collector.RegisterCounter("warnings_sent_total", "Pre-due warnings dispatched"),
		EscalationsSent:        collector.RegisterCounter("escalations_sent_total", "Escalations dispatched by level", "level"),
		UnresolvableRecipients: collector.RegisterCounter("unresolvable_recipients_total", "Findings skipped because no recipient could be resolved"),
		ItemFailures:           collector.RegisterCounter("item_failures_total", "Findings that failed processing"),
		LastRunTimestamp:       collector.RegisterGauge("last_run_timestamp_seconds", "Unix time of the last completed run", "result"),
	}
}

// RecordRun folds one run's summary into the counters.  A failed run still
// records its duration and whatever partial counts the orchestrator reached.
func (m *EngineMetrics) RecordRun(summary *escalation.RunSummary, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.RunsTotal.WithLabelValues(result).Inc()
	m.RunDuration.WithLabelValues().Observe(duration.Seconds())
	m.LastRunTimestamp.WithLabelValues(result).Set(float64(time.Now().Unix()))

	if summary == nil {
		return
	}
	m.FindingsChecked.WithLabelValues().Add(float64(summary.FindingsChecked))
	m.WarningsSent.WithLabelValues().Add(float64(summary.WarningsSent))
	m.EscalationsSent.WithLabelValues("1").Add(float64(summary.EscalationsLevel1))
	m.EscalationsSent.WithLabelValues("2").Add(float64(summary.EscalationsLevel2))
	m.UnresolvableRecipients.WithLabelValues().Add(float64(summary.UnresolvableRecipients))
	m.ItemFailures.WithLabelValues().Add(float64(summary.Failures))
}

//Personal.AI order the ending
