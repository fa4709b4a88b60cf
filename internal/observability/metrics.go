package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APICollector bundles Prometheus metrics for the geometry API surface and
// provides helpers to wire them into HTTP handlers.
type APICollector struct {
	gatherer prometheus.Gatherer

	Requests  *prometheus.CounterVec
	Durations *prometheus.HistogramVec

	ShapesAnalyzed *prometheus.CounterVec
	BatchItems     *prometheus.CounterVec
}

// NewAPICollector registers geometry API metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewAPICollector(reg prometheus.Registerer) (*APICollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geometry_requests_total",
		Help: "Total number of handled geometry API requests, labeled by operation and HTTP status code.",
	}, []string{"operation", "code"})
	requests, err := registerCounterVec(reg, requests, "geometry_requests_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "geometry_request_duration_seconds",
		Help:    "Geometry API request latency in seconds.",
		Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"operation"})
	durations, err = registerHistogramVec(reg, durations, "geometry_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	shapes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geometry_shapes_analyzed_total",
		Help: "Total number of shapes the metrics engine has analyzed, labeled by shape kind.",
	}, []string{"kind"})
	shapes, err = registerCounterVec(reg, shapes, "geometry_shapes_analyzed_total")
	if err != nil {
		return nil, err
	}

	batchItems := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "geometry_batch_items_total",
		Help: "Total number of batch items processed, labeled by per-item outcome.",
	}, []string{"outcome"})
	batchItems, err = registerCounterVec(reg, batchItems, "geometry_batch_items_total")
	if err != nil {
		return nil, err
	}

	return &APICollector{
		gatherer:       gatherer,
		Requests:       requests,
		Durations:      durations,
		ShapesAnalyzed: shapes,
		BatchItems:     batchItems,
	}, nil
}

// Middleware records request counts and durations for the named operation.
func (c *APICollector) Middleware(operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if c == nil {
				return
			}
			if c.Requests != nil {
				c.Requests.WithLabelValues(operation, strconv.Itoa(rec.status)).Inc()
			}
			if c.Durations != nil {
				c.Durations.WithLabelValues(operation).Observe(time.Since(start).Seconds())
			}
		})
	}
}

// CountShape increments the per-kind analysis counter.
func (c *APICollector) CountShape(kind string) {
	if c == nil || c.ShapesAnalyzed == nil {
		return
	}
	c.ShapesAnalyzed.WithLabelValues(kind).Inc()
}

// CountBatchItem increments the per-outcome batch item counter.
func (c *APICollector) CountBatchItem(outcome string) {
	if c == nil || c.BatchItems == nil {
		return
	}
	c.BatchItems.WithLabelValues(outcome).Inc()
}

// Handler exposes a ready-to-use /metrics handler.
func (c *APICollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
