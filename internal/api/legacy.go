package api

import (
	"fmt"
	"net/http"

	"github.com/shapeworks/geometry-service/core"
	"github.com/shapeworks/geometry-service/internal/logging"
)

// LegacyService is the simplified analysis surface: triangle classification
// from three points and convexity-only polygon analysis. It carries no
// units, timestamps, or transforms.
type LegacyService struct {
	log logging.Logger
}

// NewLegacyService constructs a LegacyService.
func NewLegacyService(log logging.Logger) *LegacyService {
	if log == nil {
		log = logging.Noop()
	}
	return &LegacyService{log: log}
}

type legacyTriangleRequest struct {
	PointA *core.Point `json:"pointA"`
	PointB *core.Point `json:"pointB"`
	PointC *core.Point `json:"pointC"`
}

type legacyPolygonRequest struct {
	Points []core.Point `json:"points"`
}

// AnalyzeTriangle classifies the triangle spanned by three points.
func (s *LegacyService) AnalyzeTriangle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, s.log)

	var req legacyTriangleRequest
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

	writeJSON(ctx, w, log, http.StatusOK, props)
}

// AnalyzePolygon reports convexity, area (zero when concave), and vertex
// count for a point sequence.
func (s *LegacyService) AnalyzePolygon(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logging.FromContext(ctx, s.log)

	var req legacyPolygonRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, log, err)
		return
	}

	props, err := core.AnalyzePolygon(req.Points)
	if err != nil {
		writeError(ctx, w, log, err)
		return
	}

	writeJSON(ctx, w, log, http.StatusOK, props)
}
