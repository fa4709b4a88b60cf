package core

import "math"

// Epsilon is the tolerance used for floating-point comparisons throughout
// the engine: side-length equality, right-angle tests, and collinearity
// checks all compare strictly against this constant.
const Epsilon = 0.0001

// Point is a 2D point (or vector) in the shape's native unit. Point values
// are immutable; every derived point is newly constructed.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the Euclidean distance to another point.
func (p Point) DistanceTo(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p scaled by k about the origin.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Rotate returns p rotated counter-clockwise by theta radians about the
// origin.
func (p Point) Rotate(theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Cross returns the z-component of (p2-p1) x (p3-p1). The sign indicates
// the turn direction at p2 when walking p1 -> p2 -> p3; the magnitude is
// twice the area of the triangle p1 p2 p3.
func Cross(p1, p2, p3 Point) float64 {
	return (p2.X-p1.X)*(p3.Y-p1.Y) - (p2.Y-p1.Y)*(p3.X-p1.X)
}
