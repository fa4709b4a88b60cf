package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shapeworks/geometry-service/internal/logging"
	"github.com/shapeworks/geometry-service/internal/observability"
)

// Operation names used for route naming, span naming, and metric labels.
const (
	OpCalculateMetrics = "CalculateMetrics"
	OpAnalyzeTriangle  = "AnalyzeTriangle"
	OpBatchAnalyze     = "BatchAnalyze"
	OpTransformShape   = "TransformShape"
	OpFindLargest      = "FindLargestShape"
	OpAnalyzePolygon   = "AnalyzePolygon"
)

// NewRouter builds the full five-operation geometry API router. The
// collector may be nil when metrics are not wired.
func NewRouter(svc *GeometryService, collector *observability.APICollector, log logging.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware(log))
	r.Use(TracingMiddleware())

	register := func(path, op string, h http.HandlerFunc) {
		var handler http.Handler = h
		if collector != nil {
			handler = collector.Middleware(op)(handler)
		}
		r.Handle(path, handler).Methods(http.MethodPost).Name(op)
	}

	register("/v1/metrics:calculate", OpCalculateMetrics, svc.CalculateMetrics)
	register("/v1/triangle:analyze", OpAnalyzeTriangle, svc.AnalyzeTriangle)
	register("/v1/shapes:batchAnalyze", OpBatchAnalyze, svc.BatchAnalyze)
	register("/v1/shapes:transform", OpTransformShape, svc.TransformShape)
	register("/v1/shapes:findLargest", OpFindLargest, svc.FindLargestShape)

	r.HandleFunc("/healthz", svc.Healthz).Methods(http.MethodGet)

	return r
}

// NewLegacyRouter builds the simplified two-operation router.
func NewLegacyRouter(svc *LegacyService, log logging.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware(log))

	r.HandleFunc("/v1/triangle:analyze", svc.AnalyzeTriangle).Methods(http.MethodPost).Name(OpAnalyzeTriangle)
	r.HandleFunc("/v1/polygon:analyze", svc.AnalyzePolygon).Methods(http.MethodPost).Name(OpAnalyzePolygon)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, logging.Noop(), http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
