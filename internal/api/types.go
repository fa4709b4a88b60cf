package api

import (
	"fmt"
	"strings"

	"github.com/shapeworks/geometry-service/core"
)

// shapePayload is the wire form of the Shape tagged union. The kind field
// selects the variant; only that variant's fields are read.
type shapePayload struct {
	Kind     string       `json:"kind"`
	Vertices []core.Point `json:"vertices,omitempty"`
	Center   *core.Point  `json:"center,omitempty"`
	Radius   float64      `json:"radius,omitempty"`
	TopLeft  *core.Point  `json:"topLeft,omitempty"`
	Width    float64      `json:"width,omitempty"`
	Height   float64      `json:"height,omitempty"`
}

func (p shapePayload) toShape() (core.Shape, error) {
	switch core.ShapeKind(strings.ToLower(p.Kind)) {
	case core.KindTriangle:
		return core.Shape{Kind: core.KindTriangle, Vertices: append([]core.Point(nil), p.Vertices...)}, nil
	case core.KindCircle:
		if p.Center == nil {
			return core.Shape{}, fmt.Errorf("%w: circle requires a center", errBadRequest)
		}
		return core.NewCircle(*p.Center, p.Radius), nil
	case core.KindRectangle:
		if p.TopLeft == nil {
			return core.Shape{}, fmt.Errorf("%w: rectangle requires a topLeft corner", errBadRequest)
		}
		return core.NewRectangle(*p.TopLeft, p.Width, p.Height), nil
	case core.KindPolygon:
		return core.Shape{Kind: core.KindPolygon, Vertices: append([]core.Point(nil), p.Vertices...)}, nil
	case "":
		return core.Shape{}, fmt.Errorf("%w: shape kind is required", errBadRequest)
	default:
		return core.Shape{}, fmt.Errorf("%w: %q", core.ErrUnsupportedShape, p.Kind)
	}
}

func shapeToPayload(s core.Shape) shapePayload {
	out := shapePayload{Kind: string(s.Kind)}
	switch s.Kind {
	case core.KindCircle:
		center := s.Center
		out.Center = &center
		out.Radius = s.Radius
	case core.KindRectangle:
		topLeft := s.TopLeft
		out.TopLeft = &topLeft
		out.Width = s.Width
		out.Height = s.Height
	default:
		out.Vertices = s.Vertices
	}
	return out
}

// unitPayload is the wire form of the measurement unit. An empty unit means
// meters; the factor is only read for custom units.
type unitPayload struct {
	Unit   string  `json:"unit,omitempty"`
	Factor float64 `json:"unitFactor,omitempty"`
}

func (p unitPayload) toUnit() (core.Unit, error) {
	switch core.UnitKind(strings.ToLower(p.Unit)) {
	case core.UnitMeters, "":
		return core.Meters, nil
	case core.UnitFeet:
		return core.Feet, nil
	case core.UnitCustom:
		return core.CustomUnit(p.Factor), nil
	default:
		return core.Unit{}, fmt.Errorf("%w: unknown unit %q", errBadRequest, p.Unit)
	}
}

// drawablePayload pairs an identity with a shape for batch operations.
type drawablePayload struct {
	ID       string       `json:"id"`
	Geometry shapePayload `json:"geometry"`
}

type calculateMetricsRequest struct {
	Shape shapePayload `json:"shape"`
	unitPayload
}

type calculateMetricsResponse struct {
	Metrics   core.ShapeMetrics `json:"metrics"`
	Timestamp string            `json:"timestamp"`
}

type analyzeTriangleRequest struct {
	PointA *core.Point `json:"pointA"`
	PointB *core.Point `json:"pointB"`
	PointC *core.Point `json:"pointC"`
}

type analyzeTriangleResponse struct {
	Properties core.TriangleProperties `json:"properties"`
	Metrics    core.ShapeMetrics       `json:"metrics"`
	Timestamp  string                  `json:"timestamp"`
}

type batchAnalyzeRequest struct {
	Shapes []drawablePayload `json:"shapes"`
	unitPayload
}

// analysisResultPayload reports one batch item. Exactly one of metrics or
// error is present.
type analysisResultPayload struct {
	ShapeID string             `json:"shapeId"`
	Metrics *core.ShapeMetrics `json:"metrics,omitempty"`
	Error   string             `json:"error,omitempty"`
}

type batchAnalyzeResponse struct {
	Results    []analysisResultPayload `json:"results"`
	TotalArea  float64                 `json:"totalArea"`
	ShapeCount int                     `json:"shapeCount"`
	Timestamp  string                  `json:"timestamp"`
}

type transformShapeRequest struct {
	Shape         shapePayload `json:"shape"`
	Translate     core.Point   `json:"translate"`
	Scale         float64      `json:"scale"`
	RotateRadians float64      `json:"rotateRadians"`
}

type transformShapeResponse struct {
	Shape              shapePayload      `json:"shape"`
	OriginalMetrics    core.ShapeMetrics `json:"originalMetrics"`
	TransformedMetrics core.ShapeMetrics `json:"transformedMetrics"`
	Timestamp          string            `json:"timestamp"`
}

type findLargestShapeRequest struct {
	Shapes    []drawablePayload `json:"shapes"`
	Criterion string            `json:"criterion,omitempty"`
	unitPayload
}

type largestShapePayload struct {
	ID       string       `json:"id"`
	Geometry shapePayload `json:"geometry"`
}

type findLargestShapeResponse struct {
	LargestShape largestShapePayload `json:"largestShape"`
	Metrics      core.ShapeMetrics   `json:"metrics"`
	RankedShapes []core.RankedShape  `json:"rankedShapes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toCriterion(raw string) (core.RankCriterion, error) {
	switch core.RankCriterion(strings.ToLower(raw)) {
	case core.RankByArea, "":
		return core.RankByArea, nil
	case core.RankByPerimeter:
		return core.RankByPerimeter, nil
	default:
		return "", fmt.Errorf("%w: unknown criterion %q", errBadRequest, raw)
	}
}
