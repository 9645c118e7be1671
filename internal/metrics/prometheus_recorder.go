package metrics

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	ferrors "github.com/javanotes/sitenav/internal/foundation/errors"
)

const namespace = "sitenav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once            sync.Once
	validations     *prom.CounterVec
	checkFindings   *prom.CounterVec
	exportDuration  *prom.HistogramVec
	pages           prom.Gauge
	commandDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.validations = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Site configuration validations by result",
		}, []string{"result"})
		pr.checkFindings = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "check_findings_total",
			Help:      "Link check findings by kind",
		}, []string{"kind"})
		pr.exportDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Duration of writing one export format",
			Buckets:   prom.DefBuckets,
		}, []string{"format"})
		pr.pages = prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "pages_discovered",
			Help:      "Markdown pages found in the docs tree by the last discovery",
		})
		pr.commandDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Duration of CLI commands",
			Buckets:   prom.DefBuckets,
		}, []string{"command"})
		reg.MustRegister(pr.validations, pr.checkFindings, pr.exportDuration, pr.pages, pr.commandDuration)
	})
	return pr
}

func (p *PrometheusRecorder) IncValidation(result ResultLabel) {
	if p == nil || p.validations == nil {
		return
	}
	p.validations.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) AddCheckFindings(kind string, n int) {
	if p == nil || p.checkFindings == nil {
		return
	}
	// Touch the series so a clean run still reports zero.
	c := p.checkFindings.WithLabelValues(kind)
	if n > 0 {
		c.Add(float64(n))
	}
}

func (p *PrometheusRecorder) ObserveExportDuration(format string, d time.Duration) {
	if p == nil || p.exportDuration == nil {
		return
	}
	p.exportDuration.WithLabelValues(format).Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetPagesDiscovered(n int) {
	if p == nil || p.pages == nil {
		return
	}
	p.pages.Set(float64(n))
}

func (p *PrometheusRecorder) ObserveCommandDuration(command string, d time.Duration) {
	if p == nil || p.commandDuration == nil {
		return
	}
	p.commandDuration.WithLabelValues(command).Observe(d.Seconds())
}

// WriteTextfile writes every metric in reg to path in the node-exporter
// textfile format. The parent directory is created when missing.
func WriteTextfile(path string, reg *prom.Registry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return ferrors.FileSystemError("create metrics directory").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	if err := prom.WriteToTextfile(path, reg); err != nil {
		return ferrors.FileSystemError("write metrics textfile").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
