package core

import "errors"

var (
	// ErrInvalidTriangle is returned when a triangle does not carry exactly
	// three vertices. The Shape constructors already enforce this; the
	// metrics engine re-checks it as an invariant.
	ErrInvalidTriangle = errors.New("triangle must have exactly 3 vertices")

	// ErrDegenerateTriangle is returned when the triangle inequality is
	// violated, i.e. the three side lengths describe collinear points.
	ErrDegenerateTriangle = errors.New("degenerate triangle: side lengths violate the triangle inequality")

	// ErrTooFewVertices is returned when a polygon has fewer than three
	// vertices.
	ErrTooFewVertices = errors.New("polygon requires at least 3 vertices")

	// ErrUnsupportedShape is returned when a shape carries an unknown kind.
	ErrUnsupportedShape = errors.New("unsupported shape kind")

	// ErrEmptyCollection is returned when a ranking operation receives no
	// shapes.
	ErrEmptyCollection = errors.New("shape collection is empty")

	// ErrNoValidShapes is returned when ranking scanned the whole collection
	// without finding a best shape. With a total metrics function and the
	// empty-collection check above, this path should be unreachable.
	ErrNoValidShapes = errors.New("no valid shapes found")
)
