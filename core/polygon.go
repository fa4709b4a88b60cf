package core

import (
	"fmt"
	"math"
)

// PolygonProperties is the simplified polygon analysis output: convexity,
// area (zero for concave polygons in this variant), and the vertex count.
type PolygonProperties struct {
	IsConvex    bool    `json:"isConvex"`
	Area        float64 `json:"area"`
	VertexCount int     `json:"vertexCount"`
}

// IsConvex reports whether the points form a convex polygon.
//
// It walks consecutive vertex triples with wrap-around and compares the
// sign of each cross product against the first non-collinear one; any sign
// flip means a reflex vertex. Collinear triples (|cross| < Epsilon) are
// skipped. Fewer than three points is never convex; a polygon whose
// triples are all collinear is reported convex.
func IsConvex(points []Point) bool {
	n := len(points)
	if n < 3 {
		return false
	}

	sign := 0
	for i := 0; i < n; i++ {
		cross := Cross(points[i], points[(i+1)%n], points[(i+2)%n])
		if math.Abs(cross) < Epsilon {
			continue
		}
		if cross > 0 {
			if sign < 0 {
				return false
			}
			sign = 1
		} else {
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

// AnalyzePolygon runs the simplified polygon analysis: a convexity test
// plus a shoelace area that is only computed for convex input. Concave
// polygons report an area of zero in this variant.
func AnalyzePolygon(points []Point) (PolygonProperties, error) {
	if len(points) < 3 {
		return PolygonProperties{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(points))
	}

	props := PolygonProperties{
		IsConvex:    IsConvex(points),
		VertexCount: len(points),
	}
	if props.IsConvex {
		props.Area = shoelaceArea(points)
	}
	return props, nil
}
