// Package metrics records build activity as Prometheus metrics. A Recorder
// is both a builder.Observer and a configuration.PassObserver.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
	schemaerr "github.com/specialistvlad/schematic/internal/errors"
	"github.com/specialistvlad/schematic/internal/nodeid"
)

// Recorder owns the build metrics of one process.
type Recorder struct {
	gatherer prometheus.Gatherer

	componentDuration *prometheus.HistogramVec
	componentsBuilt   *prometheus.CounterVec
	cacheHits         *prometheus.CounterVec
	failures          *prometheus.CounterVec
	passes            *prometheus.CounterVec
	passDuration      *prometheus.HistogramVec
}

// New registers the build metrics on reg.
func New(reg *prometheus.Registry) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		gatherer: reg,

		// Component construction metrics
		componentDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "schematic_component_build_duration_seconds",
				Help:    "Duration of a single strategy invocation in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"category"},
		),
		componentsBuilt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schematic_components_built_total",
				Help: "Total number of components constructed",
			},
			[]string{"category"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schematic_cache_hits_total",
				Help: "Total number of builds served from the resolved value cache",
			},
			[]string{"category"},
		),
		failures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schematic_component_failures_total",
				Help: "Total number of component build failures by error code",
			},
			[]string{"category", "code"},
		),

		// Build pass metrics
		passes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "schematic_build_passes_total",
				Help: "Total number of facade build passes",
			},
			[]string{"project", "mode", "result"},
		),
		passDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "schematic_build_pass_duration_seconds",
				Help:    "Duration of facade build passes in seconds",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
			},
			[]string{"mode"},
		),
	}
}

// ComponentBuilt implements builder.Observer.
func (r *Recorder) ComponentBuilt(ref nodeid.Ref, elapsed time.Duration) {
	c := string(ref.Category)
	r.componentsBuilt.WithLabelValues(c).Inc()
	r.componentDuration.WithLabelValues(c).Observe(elapsed.Seconds())
}

// CacheHit implements builder.Observer.
func (r *Recorder) CacheHit(ref nodeid.Ref) {
	r.cacheHits.WithLabelValues(string(ref.Category)).Inc()
}

// ComponentFailed implements builder.Observer.
func (r *Recorder) ComponentFailed(ref nodeid.Ref, err error) {
	code, ok := schemaerr.CodeOf(err)
	if !ok {
		code = "UNKNOWN"
	}
	r.failures.WithLabelValues(string(ref.Category), string(code)).Inc()
}

// PassFinished implements configuration.PassObserver.
func (r *Recorder) PassFinished(project, mode string, elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	r.passes.WithLabelValues(project, mode, result).Inc()
	r.passDuration.WithLabelValues(mode).Observe(elapsed.Seconds())
}

// WriteText writes every gathered metric family in the Prometheus text
// exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.gatherer.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
