package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shapeworks/geometry-service/core"
	"github.com/shapeworks/geometry-service/internal/logging"
	"github.com/shapeworks/geometry-service/internal/observability"
)

// GeometryService exposes the geometry engine over the HTTP JSON boundary.
// It holds no per-request state: every handler decodes its payload, invokes
// the pure engine, and encodes the result.
type GeometryService struct {
	log     logging.Logger
	metrics *observability.APICollector
	now     func() time.Time
}

// Option customises a GeometryService.
type Option func(*GeometryService)

// WithClock overrides the timestamp source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *GeometryService) { s.now = now }
}

// NewGeometryService constructs a GeometryService. The collector may be nil
// when metrics are not wired.
func NewGeometryService(log logging.Logger, metrics *observability.APICollector, opts ...Option) *GeometryService {
	if log == nil {
		log = logging.Noop()
	}
	s := &GeometryService{
		log:     log,
		metrics: metrics,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GeometryService) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// CalculateMetrics computes area, perimeter, centroid, and bounding box for
// a single shape in the requested unit.
func (s *GeometryService) CalculateMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, s.log)

	var req calculateMetricsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, log, err)
		return
	}

	shape, err := req.Shape.toShape()
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}
	unit, err := req.toUnit()
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}

	metrics, err := core.ComputeMetrics(shape, unit)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}
	s.metrics.CountShape(string(shape.Kind))

	log.Debug(ctx, "computed shape metrics",
		logging.String("kind", string(shape.Kind)),
		logging.Float64("area", metrics.Area),
	)
	writeJSON(ctx, w, log, http.StatusOK, calculateMetricsResponse{
		Metrics:   metrics,
		Timestamp: s.timestamp(),
	})
}

// AnalyzeTriangle classifies the triangle spanned by three vertices and
// returns its metrics alongside the classification flags.
func (s *GeometryService) AnalyzeTriangle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, s.log)

	var req analyzeTriangleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, log, err)
		return
	}
	if req.PointA == nil || req.PointB == nil || req.PointC == nil {
		writeError(ctx, w, log, fmt.Errorf("%w: pointA, pointB, and pointC are required", errBadRequest))
		return
	}

	props, err := core.ClassifyTriangleVertices(*req.PointA, *req.PointB, *req.PointC)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}

	shape := core.NewTriangle(*req.PointA, *req.PointB, *req.PointC)
	metrics, err := core.ComputeMetrics(shape, core.Meters)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}
	s.metrics.CountShape(string(core.KindTriangle))

	writeJSON(ctx, w, log, http.StatusOK, analyzeTriangleResponse{
		Properties: props,
		Metrics:    metrics,
		Timestamp:  s.timestamp(),
	})
}

// BatchAnalyze computes metrics for a collection of shapes with per-item
// isolation: individual failures are reported inline and never abort the
// batch.
func (s *GeometryService) BatchAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, s.log)

	var req batchAnalyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, log, err)
		return
	}
	unit, err := req.toUnit()
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}

	// Malformed geometry is a per-item failure, not a request failure:
	// items that fail to decode keep their slot and are reported inline,
	// mirroring the engine's isolation contract.
	decodeErrs := make([]error, len(req.Shapes))
	shapes := make([]core.DrawableShape, 0, len(req.Shapes))
	for i, d := range req.Shapes {
		shape, err := d.Geometry.toShape()
		decodeErrs[i] = err
		shapes = append(shapes, core.DrawableShape{ID: d.ID, Geometry: shape})
	}

	batch := core.BatchAnalyze(shapes, unit)

	results := make([]analysisResultPayload, 0, len(batch.Results))
	for i, res := range batch.Results {
		entry := analysisResultPayload{ShapeID: res.ShapeID}
		switch {
		case decodeErrs[i] != nil:
			entry.Error = decodeErrs[i].Error()
			s.metrics.CountBatchItem("error")
		case res.Err != nil:
			entry.Error = res.Err.Error()
			s.metrics.CountBatchItem("error")
		default:
			metrics := res.Metrics
			entry.Metrics = &metrics
			s.metrics.CountBatchItem("ok")
		}
		results = append(results, entry)
	}

	log.Info(ctx, "batch analysis complete",
		logging.Int("shapes", batch.ShapeCount),
		logging.Float64("total_area", batch.TotalArea),
	)
	writeJSON(ctx, w, log, http.StatusOK, batchAnalyzeResponse{
		Results:    results,
		TotalArea:  batch.TotalArea,
		ShapeCount: batch.ShapeCount,
		Timestamp:  s.timestamp(),
	})
}

// TransformShape applies a scale-rotate-translate transform and returns the
// transformed shape together with before/after metrics in meters.
func (s *GeometryService) TransformShape(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, s.log)

	var req transformShapeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, log, err)
		return
	}

	shape, err := req.Shape.toShape()
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}

	transform := core.Transform{
		Translate: req.Translate,
		Scale:     req.Scale,
		Rotate:    req.RotateRadians,
	}
	transformed, err := core.TransformShape(shape, transform)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}

	original, err := core.ComputeMetrics(shape, core.Meters)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}
	after, err := core.ComputeMetrics(transformed, core.Meters)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}
	s.metrics.CountShape(string(shape.Kind))

	writeJSON(ctx, w, log, http.StatusOK, transformShapeResponse{
		Shape:              shapeToPayload(transformed),
		OriginalMetrics:    original,
		TransformedMetrics: after,
		Timestamp:          s.timestamp(),
	})
}

// FindLargestShape ranks a collection by area or perimeter and returns the
// winner with the full ranking.
func (s *GeometryService) FindLargestShape(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, s.log)

	var req findLargestShapeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, log, err)
		return
	}
	unit, err := req.toUnit()
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}
	criterion, err := toCriterion(req.Criterion)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}

	shapes := make([]core.DrawableShape, 0, len(req.Shapes))
	for _, d := range req.Shapes {
		shape, err := d.Geometry.toShape()
		if err != nil {
			writeError(ctx, w, log, err)
			return
		}
		shapes = append(shapes, core.DrawableShape{ID: d.ID, Geometry: shape})
	}

	result, err := core.FindLargestShape(shapes, criterion, unit)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}

	log.Debug(ctx, "ranked shape collection",
		logging.Int("shapes", len(shapes)),
		logging.String("criterion", string(criterion)),
		logging.String("largest", result.Largest.ID),
	)
	writeJSON(ctx, w, log, http.StatusOK, findLargestShapeResponse{
		LargestShape: largestShapePayload{
			ID:       result.Largest.ID,
			Geometry: shapeToPayload(result.Largest.Geometry),
		},
		Metrics:      result.Metrics,
		RankedShapes: result.Ranking,
	})
}

// Healthz reports liveness.
func (s *GeometryService) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, s.log, http.StatusOK, map[string]string{"status": "ok"})
}
