package metrics

import "time"

// ResultLabel enumerates validation outcomes for counters.
type ResultLabel string

const (
	ResultValid   ResultLabel = "valid"
	ResultInvalid ResultLabel = "invalid"
)

// Recorder defines observability hooks for sitenav runs.
type Recorder interface {
	IncValidation(result ResultLabel)
	AddCheckFindings(kind string, n int)
	ObserveExportDuration(format string, d time.Duration)
	SetPagesDiscovered(n int)
	ObserveCommandDuration(command string, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncValidation(ResultLabel)                    {}
func (NoopRecorder) AddCheckFindings(string, int)                 {}
func (NoopRecorder) ObserveExportDuration(string, time.Duration)  {}
func (NoopRecorder) SetPagesDiscovered(int)                       {}
func (NoopRecorder) ObserveCommandDuration(string, time.Duration) {}
