package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	steps        *prom.CounterVec
	stepDuration *prom.HistogramVec
	created      *prom.CounterVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg. A nil
// reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		steps: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sampledata",
			Name:      "steps_total",
			Help:      "Applied sample-data steps by plugin type and result",
		}, []string{"type", "result"}),
		stepDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sampledata",
			Name:      "step_duration_seconds",
			Help:      "Duration of individual sample-data steps",
			Buckets:   prom.DefBuckets,
		}, []string{"type"}),
		created: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sampledata",
			Name:      "records_created_total",
			Help:      "Content records created through the content model, by kind",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.steps, pr.stepDuration, pr.created)
	return pr
}

func (p *PrometheusRecorder) ObserveStep(pluginType string, d time.Duration, result ResultLabel) {
	if p == nil {
		return
	}
	p.steps.WithLabelValues(pluginType, string(result)).Inc()
	p.stepDuration.WithLabelValues(pluginType).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRecordsCreated(kind string, n int) {
	if p == nil || n <= 0 {
		return
	}
	p.created.WithLabelValues(kind).Add(float64(n))
}

// HTTPHandler returns an http.Handler that serves the metrics in reg.
func HTTPHandler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
