// Package metrics records sample-data step outcomes and created content.
package metrics

import "time"

// ResultLabel enumerates step result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Result maps a success flag to its label.
func Result(success bool) ResultLabel {
	if success {
		return ResultSuccess
	}
	return ResultFailed
}

// Recorder defines observability hooks for sample-data generation.
type Recorder interface {
	ObserveStep(pluginType string, d time.Duration, result ResultLabel)
	IncRecordsCreated(kind string, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStep(string, time.Duration, ResultLabel) {}
func (NoopRecorder) IncRecordsCreated(string, int)                 {}
