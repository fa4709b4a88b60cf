package core

// ShapeKind selects the active variant of a Shape. The set of kinds is
// closed; every dispatch over it is an exhaustive switch with a defensive
// ErrUnsupportedShape fallback.
type ShapeKind string

const (
	KindTriangle  ShapeKind = "triangle"
	KindCircle    ShapeKind = "circle"
	KindRectangle ShapeKind = "rectangle"
	KindPolygon   ShapeKind = "polygon"
)

// Shape is a tagged union over the supported shape kinds. Exactly one
// variant's fields are meaningful, selected by Kind:
//
//   - Triangle: Vertices (exactly 3, in order)
//   - Circle: Center, Radius
//   - Rectangle: TopLeft, Width, Height (axis-aligned)
//   - Polygon: Vertices (3 or more, in order)
//
// Shapes are treated as immutable values; operations that derive a new
// shape always allocate fresh vertex slices.
type Shape struct {
	Kind ShapeKind `json:"kind"`

	Vertices []Point `json:"vertices,omitempty"`

	Center Point   `json:"center,omitempty"`
	Radius float64 `json:"radius,omitempty"`

	TopLeft Point   `json:"topLeft,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Height  float64 `json:"height,omitempty"`
}

// NewTriangle constructs a triangle from its three vertices.
func NewTriangle(a, b, c Point) Shape {
	return Shape{Kind: KindTriangle, Vertices: []Point{a, b, c}}
}

// NewCircle constructs a circle from its center and radius.
func NewCircle(center Point, radius float64) Shape {
	return Shape{Kind: KindCircle, Center: center, Radius: radius}
}

// NewRectangle constructs an axis-aligned rectangle anchored at its
// top-left corner.
func NewRectangle(topLeft Point, width, height float64) Shape {
	return Shape{Kind: KindRectangle, TopLeft: topLeft, Width: width, Height: height}
}

// NewPolygon constructs a polygon from its ordered vertices.
func NewPolygon(vertices ...Point) Shape {
	return Shape{Kind: KindPolygon, Vertices: vertices}
}

// DrawableShape pairs a shape with a caller-assigned identity for batch and
// ranking operations.
type DrawableShape struct {
	ID       string `json:"id"`
	Geometry Shape  `json:"geometry"`
}

// samplePoints returns the representative point set for a shape: the points
// the metrics engine averages for the centroid and scans for the bounding
// box. For circles this is the center alone; for rectangles the four
// derived corners.
func (s Shape) samplePoints() []Point {
	switch s.Kind {
	case KindCircle:
		return []Point{s.Center}
	case KindRectangle:
		return s.corners()
	default:
		return s.Vertices
	}
}

// corners derives the four corners of an axis-aligned rectangle in
// clockwise order starting from TopLeft. Y grows downward in the shape's
// coordinate convention, matching the TopLeft anchor.
func (s Shape) corners() []Point {
	return []Point{
		s.TopLeft,
		{X: s.TopLeft.X + s.Width, Y: s.TopLeft.Y},
		{X: s.TopLeft.X + s.Width, Y: s.TopLeft.Y + s.Height},
		{X: s.TopLeft.X, Y: s.TopLeft.Y + s.Height},
	}
}
