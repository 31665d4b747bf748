// SPDX-License-Identifier: MIT

package fuzzy

import (
	"fmt"
	"math"
)

// Triangle is a triangular membership function with breakpoints A ≤ B ≤ C.
//
//	degree
//	  1 ┤      ╱╲
//	    │     ╱  ╲
//	  0 ┼────╱────╲────
//	         A  B  C
//
// A == B gives a falling ramp that starts at 1, B == C a rising ramp that ends
// at 1. Both are valid and never divide by zero.
type Triangle struct {
	A, B, C float64
}

// NewTriangle validates the breakpoints and returns the triangle.
// Returns ErrBadBreakpoints if a > b, b > c, or any value is NaN/±Inf.
func NewTriangle(a, b, c float64) (Triangle, error) {
	t := Triangle{A: a, B: b, C: c}
	if err := t.Validate(); err != nil {
		return Triangle{}, err
	}

	return t, nil
}

// Validate reports whether the breakpoints are finite and ordered.
func (t Triangle) Validate() error {
	for _, v := range [...]float64{t.A, t.B, t.C} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fuzzyErrorf(ErrBadBreakpoints, "triangle %v", t)
		}
	}
	if t.A > t.B || t.B > t.C {
		return fuzzyErrorf(ErrBadBreakpoints, "triangle %v", t)
	}

	return nil
}

// Degree returns the membership of x in [0,1].
//
// The peak check comes first so that degenerate edges (A==B or B==C) still
// reach 1 at B. Outside [A,C] the degree is 0 for any finite x.
// Complexity: O(1).
func (t Triangle) Degree(x float64) float64 {
	switch {
	case x == t.B:
		return 1
	case x <= t.A || x >= t.C:
		return 0
	case x < t.B:
		// A < x < B, hence B > A.
		return (x - t.A) / (t.B - t.A)
	default:
		// B < x < C, hence C > B.
		return (t.C - x) / (t.C - t.B)
	}
}

// String renders the triangle as "(a, b, c)".
func (t Triangle) String() string {
	return fmt.Sprintf("(%g, %g, %g)", t.A, t.B, t.C)
}
