package core

import (
	"fmt"
	"math"
	"sort"
)

// TriangleProperties carries the classification flags and base metrics for
// a triangle given by its side lengths.
//
// Invariants: IsEquilateral implies IsIsosceles, and IsScalene is always
// the negation of IsIsosceles.
type TriangleProperties struct {
	IsEquilateral   bool    `json:"isEquilateral"`
	IsIsosceles     bool    `json:"isIsosceles"`
	IsScalene       bool    `json:"isScalene"`
	IsRightTriangle bool    `json:"isRightTriangle"`
	Area            float64 `json:"area"`
	Perimeter       float64 `json:"perimeter"`
}

// ClassifyTriangle classifies a triangle by its three side lengths.
//
// It fails with ErrDegenerateTriangle when any side is greater than or
// equal to the sum of the other two; the comparison is exact, with no
// tolerance, so collinear inputs like (1, 2, 3) are rejected. All equality
// tests between sides use the engine Epsilon with strict less-than.
func ClassifyTriangle(a, b, c float64) (TriangleProperties, error) {
	if a >= b+c || b >= a+c || c >= a+b {
		return TriangleProperties{}, fmt.Errorf("%w: sides (%g, %g, %g)", ErrDegenerateTriangle, a, b, c)
	}

	equilateral := math.Abs(a-b) < Epsilon &&
		math.Abs(b-c) < Epsilon &&
		math.Abs(a-c) < Epsilon
	isosceles := equilateral ||
		math.Abs(a-b) < Epsilon ||
		math.Abs(b-c) < Epsilon ||
		math.Abs(a-c) < Epsilon

	sides := []float64{a, b, c}
	sort.Float64s(sides)
	right := math.Abs(sides[0]*sides[0]+sides[1]*sides[1]-sides[2]*sides[2]) < Epsilon

	return TriangleProperties{
		IsEquilateral:   equilateral,
		IsIsosceles:     isosceles,
		IsScalene:       !isosceles,
		IsRightTriangle: right,
		Area:            heronArea(a, b, c),
		Perimeter:       a + b + c,
	}, nil
}

// ClassifyTriangleVertices classifies the triangle spanned by three
// vertices, deriving the side lengths from pairwise distances.
func ClassifyTriangleVertices(a, b, c Point) (TriangleProperties, error) {
	return ClassifyTriangle(a.DistanceTo(b), b.DistanceTo(c), c.DistanceTo(a))
}
