package core

import "fmt"

// Transform describes a similarity transform applied per point in a fixed
// order: scale about the origin, then rotate counter-clockwise about the
// origin, then translate. Because translation is applied last it is itself
// neither scaled nor rotated.
type Transform struct {
	Translate Point
	Scale     float64
	Rotate    float64 // radians, counter-clockwise
}

// Apply transforms a single point: scale, then rotate, then translate.
func (t Transform) Apply(p Point) Point {
	return p.Scale(t.Scale).Rotate(t.Rotate).Add(t.Translate)
}

// TransformShape returns a new shape of the same kind with the transform
// applied. The input shape is never modified.
//
// Circles transform their center and scale the radius linearly; rotation
// and translation leave the radius untouched. Rectangles transform only
// their TopLeft anchor and scale width and height, so they stay
// axis-aligned even for a non-zero rotation. That asymmetry matches the
// long-standing behaviour of this operation and is kept intentionally.
func TransformShape(shape Shape, t Transform) (Shape, error) {
	switch shape.Kind {
	case KindTriangle, KindPolygon:
		vertices := make([]Point, len(shape.Vertices))
		for i, v := range shape.Vertices {
			vertices[i] = t.Apply(v)
		}
		return Shape{Kind: shape.Kind, Vertices: vertices}, nil

	case KindCircle:
		return Shape{
			Kind:   KindCircle,
			Center: t.Apply(shape.Center),
			Radius: shape.Radius * t.Scale,
		}, nil

	case KindRectangle:
		return Shape{
			Kind:    KindRectangle,
			TopLeft: t.Apply(shape.TopLeft),
			Width:   shape.Width * t.Scale,
			Height:  shape.Height * t.Scale,
		}, nil

	default:
		return Shape{}, fmt.Errorf("%w: %q", ErrUnsupportedShape, shape.Kind)
	}
}
