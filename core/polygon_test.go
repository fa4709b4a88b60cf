package core

import (
	"errors"
	"math"
	"testing"
)

func TestIsConvex_Square(t *testing.T) {
	square := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if !IsConvex(square) {
		t.Errorf("expected the unit square to be convex")
	}
}

func TestIsConvex_ReflexVertex(t *testing.T) {
	// The (0.5, 0.5) vertex folds inward.
	quad := []Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 2}}
	if IsConvex(quad) {
		t.Errorf("expected a quad with a reflex vertex to be concave")
	}
}

func TestIsConvex_TooFewPoints(t *testing.T) {
	if IsConvex(nil) {
		t.Errorf("nil point set must not be convex")
	}
	if IsConvex([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}}) {
		t.Errorf("two points must not be convex")
	}
}

func TestIsConvex_CollinearTriplesSkipped(t *testing.T) {
	// A square with a redundant midpoint on the bottom edge: the collinear
	// triple must not break convexity.
	points := []Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2},
	}
	if !IsConvex(points) {
		t.Errorf("collinear triples must be ignored")
	}
}

func TestIsConvex_AllCollinear(t *testing.T) {
	// Every triple is collinear: reported convex in this variant.
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if !IsConvex(points) {
		t.Errorf("fully collinear point set is reported convex")
	}
}

func TestIsConvex_ClockwiseSquare(t *testing.T) {
	// Winding direction must not matter, only sign consistency.
	square := []Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}}
	if !IsConvex(square) {
		t.Errorf("expected a clockwise square to be convex")
	}
}

func TestAnalyzePolygon_ConvexSquare(t *testing.T) {
	props, err := AnalyzePolygon([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	if err != nil {
		t.Fatalf("AnalyzePolygon: %v", err)
	}

	if !props.IsConvex {
		t.Errorf("expected convex")
	}
	if math.Abs(props.Area-1) > 1e-9 {
		t.Errorf("area = %v, want 1", props.Area)
	}
	if props.VertexCount != 4 {
		t.Errorf("vertexCount = %d, want 4", props.VertexCount)
	}
}

func TestAnalyzePolygon_ConcaveReportsZeroArea(t *testing.T) {
	props, err := AnalyzePolygon([]Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 2}})
	if err != nil {
		t.Fatalf("AnalyzePolygon: %v", err)
	}

	if props.IsConvex {
		t.Errorf("expected concave")
	}
	if props.Area != 0 {
		t.Errorf("area = %v, want 0 for concave polygons", props.Area)
	}
	if props.VertexCount != 4 {
		t.Errorf("vertexCount = %d, want 4", props.VertexCount)
	}
}

func TestAnalyzePolygon_TooFewVertices(t *testing.T) {
	_, err := AnalyzePolygon([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if !errors.Is(err, ErrTooFewVertices) {
		t.Fatalf("err = %v, want ErrTooFewVertices", err)
	}
}
