package core

import (
	"fmt"
	"math"
)

// BoundingBox is the axis-aligned bounding box of a shape's representative
// point set, in the shape's native unit.
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// ShapeMetrics carries the derived geometric facts for a single shape.
// Area and Perimeter are expressed in the requested unit; Centroid and
// BoundingBox stay in the shape's native unit. Metrics are recomputed per
// request and never cached.
type ShapeMetrics struct {
	Area        float64     `json:"area"`
	Perimeter   float64     `json:"perimeter"`
	Centroid    Point       `json:"centroid"`
	BoundingBox BoundingBox `json:"boundingBox"`
}

// ComputeMetrics computes area, perimeter, centroid, and bounding box for a
// shape, converting area and perimeter into the requested unit. The input
// shape is not modified.
//
// Degenerate geometry (zero-length sides, zero radius) yields zero or
// near-zero area and perimeter rather than an error; only structural
// violations (wrong vertex counts, unknown kinds) fail.
func ComputeMetrics(shape Shape, unit Unit) (ShapeMetrics, error) {
	var area, perimeter float64

	switch shape.Kind {
	case KindTriangle:
		if len(shape.Vertices) != 3 {
			return ShapeMetrics{}, fmt.Errorf("%w: got %d", ErrInvalidTriangle, len(shape.Vertices))
		}
		a := shape.Vertices[0].DistanceTo(shape.Vertices[1])
		b := shape.Vertices[1].DistanceTo(shape.Vertices[2])
		c := shape.Vertices[2].DistanceTo(shape.Vertices[0])
		area = heronArea(a, b, c)
		perimeter = a + b + c

	case KindCircle:
		area = math.Pi * shape.Radius * shape.Radius
		perimeter = 2 * math.Pi * shape.Radius

	case KindRectangle:
		area = shape.Width * shape.Height
		perimeter = 2 * (shape.Width + shape.Height)

	case KindPolygon:
		if len(shape.Vertices) < 3 {
			return ShapeMetrics{}, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(shape.Vertices))
		}
		area = shoelaceArea(shape.Vertices)
		perimeter = ringPerimeter(shape.Vertices)

	default:
		return ShapeMetrics{}, fmt.Errorf("%w: %q", ErrUnsupportedShape, shape.Kind)
	}

	points := shape.samplePoints()
	return ShapeMetrics{
		Area:        unit.ConvertArea(area),
		Perimeter:   unit.ConvertDistance(perimeter),
		Centroid:    meanPoint(points),
		BoundingBox: boundsOf(points),
	}, nil
}

// heronArea computes a triangle's area from its side lengths via the
// semi-perimeter. The max guards against a slightly negative radicand for
// near-degenerate triangles.
func heronArea(a, b, c float64) float64 {
	s := (a + b + c) / 2
	return math.Sqrt(math.Max(0, s*(s-a)*(s-b)*(s-c)))
}

// shoelaceArea computes the unsigned polygon area from vertices in the
// given order. The winding sign is discarded.
func shoelaceArea(vertices []Point) float64 {
	n := len(vertices)
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	return math.Abs(sum) / 2
}

// ringPerimeter sums consecutive vertex distances including the closing
// edge back to the first vertex.
func ringPerimeter(vertices []Point) float64 {
	n := len(vertices)
	total := 0.0
	for i := 0; i < n; i++ {
		total += vertices[i].DistanceTo(vertices[(i+1)%n])
	}
	return total
}

// meanPoint returns the arithmetic mean of the points. This is the
// representative-point centroid used uniformly across shape kinds, not the
// area-weighted polygon centroid.
func meanPoint(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Point{X: sx / n, Y: sy / n}
}

func boundsOf(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	bb := BoundingBox{
		MinX: points[0].X, MinY: points[0].Y,
		MaxX: points[0].X, MaxY: points[0].Y,
	}
	for _, p := range points[1:] {
		bb.MinX = math.Min(bb.MinX, p.X)
		bb.MinY = math.Min(bb.MinY, p.Y)
		bb.MaxX = math.Max(bb.MaxX, p.X)
		bb.MaxY = math.Max(bb.MaxY, p.Y)
	}
	return bb
}
