package core

import (
	"math"
	"testing"
)

func TestUnitConvertDistance(t *testing.T) {
	cases := []struct {
		name string
		unit Unit
		in   float64
		want float64
	}{
		{"meters identity", Meters, 12.5, 12.5},
		{"zero value is meters", Unit{}, 7, 7},
		{"feet", Feet, 1, 3.28084},
		{"custom factor", CustomUnit(2.5), 4, 10},
		{"custom zero factor", CustomUnit(0), 4, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.unit.ConvertDistance(tc.in); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ConvertDistance(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestUnitConvertArea(t *testing.T) {
	cases := []struct {
		name string
		unit Unit
		in   float64
		want float64
	}{
		{"meters identity", Meters, 3, 3},
		{"feet", Feet, 1, 10.7639},
		{"custom squares the factor", CustomUnit(3), 2, 18},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.unit.ConvertArea(tc.in); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("ConvertArea(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
