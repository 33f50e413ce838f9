// Package metrics exposes operational metrics of the dashboard hosts in the
// Prometheus format.
//
// All methods are safe to call on a nil *Metrics, so callers that run
// without metrics do not need to guard every call.
package metrics

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/pipeline"
)

const namespace = "salarydash"

// Metrics holds the collectors of one process.
type Metrics struct {
	reg *prometheus.Registry

	renders        *prometheus.CounterVec   // salarydash_renders_total
	renderDuration *prometheus.HistogramVec // salarydash_render_duration_seconds
	emptySections  *prometheus.CounterVec   // salarydash_empty_sections_total
	loads          *prometheus.CounterVec   // salarydash_dataset_loads_total
	records        prometheus.Gauge         // salarydash_dataset_records
	dropped        prometheus.Gauge         // salarydash_dataset_dropped_rows
}

// New creates a registry with the dashboard collectors plus the standard Go
// runtime and process collectors.
func New() (*Metrics, error) {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		reg: reg,
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "renders_total",
				Help:      "Dashboard renders, partitioned by host and whether the selection matched any record.",
			},
			[]string{"host", "result"},
		),
		renderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "render_duration_seconds",
				Help:      "Time spent filtering and aggregating one dashboard.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"host"},
		),
		emptySections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "empty_sections_total",
				Help:      "Dashboard sections rendered with a no-data notice.",
			},
			[]string{"section"},
		),
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dataset_loads_total",
				Help:      "Dataset load attempts by status.",
			},
			[]string{"status"},
		),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Normalized records in the current dataset.",
		}),
		dropped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_dropped_rows",
			Help:      "Rows of the current dataset discarded during normalization.",
		}),
	}

	for _, c := range []prometheus.Collector{
		m.renders,
		m.renderDuration,
		m.emptySections,
		m.loads,
		m.records,
		m.dropped,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register collector")
		}
	}
	return m, nil
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

// ObserveRender records one dashboard render.
func (m *Metrics) ObserveRender(host string, d pipeline.Dashboard, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := "ok"
	if d.Empty() {
		result = "empty"
	}
	m.renders.WithLabelValues(host, result).Inc()
	m.renderDuration.WithLabelValues(host).Observe(elapsed.Seconds())
	for _, w := range d.Warnings {
		m.emptySections.WithLabelValues(w.Section).Inc()
	}
}

// ObserveLoad records a dataset load attempt. On success the dataset
// gauges are updated.
func (m *Metrics) ObserveLoad(ds *dataset.Dataset, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.loads.WithLabelValues("failure").Inc()
		return
	}
	m.loads.WithLabelValues("success").Inc()
	m.records.Set(float64(len(ds.Records)))
	m.dropped.Set(float64(ds.Dropped))
}
