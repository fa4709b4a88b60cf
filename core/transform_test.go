package core

import (
	"errors"
	"math"
	"testing"
)

var identity = Transform{Scale: 1}

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestTransformApply_Order(t *testing.T) {
	// Scale first, then rotate, then translate: (1,0) -> (2,0) -> (0,2) -> (5,2).
	tr := Transform{
		Translate: Point{X: 5, Y: 0},
		Scale:     2,
		Rotate:    math.Pi / 2,
	}

	got := tr.Apply(Point{X: 1, Y: 0})
	if !pointsClose(got, Point{X: 5, Y: 2}) {
		t.Errorf("Apply = %+v, want (5,2)", got)
	}
}

func TestTransformApply_TranslationNotScaledOrRotated(t *testing.T) {
	tr := Transform{
		Translate: Point{X: 10, Y: 20},
		Scale:     3,
		Rotate:    math.Pi,
	}

	// The origin is a fixed point of scale and rotation, so the result is
	// exactly the translation.
	got := tr.Apply(Point{})
	if !pointsClose(got, Point{X: 10, Y: 20}) {
		t.Errorf("Apply(origin) = %+v, want the raw translation", got)
	}
}

func TestTransformShape_IdentityPerVariant(t *testing.T) {
	shapes := []Shape{
		NewTriangle(Point{X: 0, Y: 0}, Point{X: 4, Y: 0}, Point{X: 0, Y: 3}),
		NewCircle(Point{X: 2, Y: 2}, 5),
		NewRectangle(Point{X: -1, Y: -1}, 3, 4),
		NewPolygon(Point{}, Point{X: 1}, Point{X: 1, Y: 1}, Point{Y: 1}),
	}

	for _, shape := range shapes {
		got, err := TransformShape(shape, identity)
		if err != nil {
			t.Fatalf("TransformShape(%s): %v", shape.Kind, err)
		}
		if got.Kind != shape.Kind {
			t.Fatalf("kind changed: %s -> %s", shape.Kind, got.Kind)
		}
		for i := range shape.Vertices {
			if !pointsClose(got.Vertices[i], shape.Vertices[i]) {
				t.Errorf("%s vertex %d = %+v, want %+v", shape.Kind, i, got.Vertices[i], shape.Vertices[i])
			}
		}
		if !pointsClose(got.Center, shape.Center) || got.Radius != shape.Radius {
			t.Errorf("%s circle fields changed: %+v", shape.Kind, got)
		}
		if !pointsClose(got.TopLeft, shape.TopLeft) || got.Width != shape.Width || got.Height != shape.Height {
			t.Errorf("%s rectangle fields changed: %+v", shape.Kind, got)
		}
	}
}

func TestTransformShape_TriangleVertexOrderPreserved(t *testing.T) {
	shape := NewTriangle(Point{X: 1, Y: 0}, Point{X: 0, Y: 1}, Point{X: -1, Y: 0})
	tr := Transform{Translate: Point{X: 1, Y: 1}, Scale: 2}

	got, err := TransformShape(shape, tr)
	if err != nil {
		t.Fatalf("TransformShape: %v", err)
	}

	want := []Point{{X: 3, Y: 1}, {X: 1, Y: 3}, {X: -1, Y: 1}}
	if len(got.Vertices) != len(want) {
		t.Fatalf("vertex count = %d, want %d", len(got.Vertices), len(want))
	}
	for i := range want {
		if !pointsClose(got.Vertices[i], want[i]) {
			t.Errorf("vertex %d = %+v, want %+v", i, got.Vertices[i], want[i])
		}
	}
}

func TestTransformShape_CircleRadiusScalesLinearly(t *testing.T) {
	shape := NewCircle(Point{X: 1, Y: 1}, 2)
	tr := Transform{Translate: Point{X: -1, Y: 0}, Scale: 3, Rotate: math.Pi / 4}

	got, err := TransformShape(shape, tr)
	if err != nil {
		t.Fatalf("TransformShape: %v", err)
	}

	if math.Abs(got.Radius-6) > 1e-9 {
		t.Errorf("radius = %v, want 6 (rotation and translation must not affect it)", got.Radius)
	}
	if !pointsClose(got.Center, tr.Apply(shape.Center)) {
		t.Errorf("center = %+v, want %+v", got.Center, tr.Apply(shape.Center))
	}
}

func TestTransformShape_RectangleStaysAxisAligned(t *testing.T) {
	shape := NewRectangle(Point{X: 1, Y: 1}, 4, 2)
	tr := Transform{Scale: 1, Rotate: math.Pi / 2}

	got, err := TransformShape(shape, tr)
	if err != nil {
		t.Fatalf("TransformShape: %v", err)
	}

	// Only the anchor moves; width and height are untouched by rotation.
	if got.Width != 4 || got.Height != 2 {
		t.Errorf("dimensions = (%v,%v), want (4,2)", got.Width, got.Height)
	}
	if !pointsClose(got.TopLeft, Point{X: -1, Y: 1}) {
		t.Errorf("topLeft = %+v, want (-1,1)", got.TopLeft)
	}
}

func TestTransformShape_UnknownKind(t *testing.T) {
	_, err := TransformShape(Shape{Kind: "blob"}, identity)
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("err = %v, want ErrUnsupportedShape", err)
	}
}

func TestTransformShape_DoesNotMutateInput(t *testing.T) {
	shape := NewPolygon(Point{}, Point{X: 1}, Point{X: 1, Y: 1})
	tr := Transform{Translate: Point{X: 100, Y: 100}, Scale: 2, Rotate: 1}

	if _, err := TransformShape(shape, tr); err != nil {
		t.Fatalf("TransformShape: %v", err)
	}

	want := []Point{{}, {X: 1}, {X: 1, Y: 1}}
	for i, v := range shape.Vertices {
		if v != want[i] {
			t.Fatalf("input vertex %d mutated: %+v", i, v)
		}
	}
}
