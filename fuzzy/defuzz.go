// SPDX-License-Identifier: MIT

package fuzzy

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Method selects the defuzzification procedure.
//
//   - Centroid     - first moment over the sample grid: Σ x·μ(x) / Σ μ(x).
//   - CentroidArea - centre of area of the piecewise-linear set through the
//     samples; each segment contributes its trapezoid area and moment.
//
// Both read the same grid, so narrow terms falling between samples are
// invisible to either.
type Method int

const (
	// Centroid is the discrete first-moment centroid (default).
	Centroid Method = iota

	// CentroidArea integrates the piecewise-linear output set segment by segment.
	CentroidArea
)

// String returns the method's canonical name.
func (m Method) String() string {
	switch m {
	case Centroid:
		return "centroid"
	case CentroidArea:
		return "area"
	default:
		return "unknown"
	}
}

// ParseMethod maps "centroid" or "area" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "centroid", "":
		return Centroid, nil
	case "area", "coa":
		return CentroidArea, nil
	default:
		return 0, fuzzyErrorf(ErrUnknownMethod, "method %q", s)
	}
}

func (m Method) valid() bool {
	return m == Centroid || m == CentroidArea
}

// defuzzify returns the crisp value of the sampled set (xs, mu) and false when
// the set has zero mass.
func (m Method) defuzzify(xs, mu []float64) (float64, bool) {
	if m == CentroidArea {
		return centroidArea(xs, mu)
	}

	return centroid(xs, mu)
}

func centroid(xs, mu []float64) (float64, bool) {
	den := floats.Sum(mu)
	if den == 0 {
		return 0, false
	}

	return floats.Dot(xs, mu) / den, true
}

func centroidArea(xs, mu []float64) (float64, bool) {
	var moment, area float64
	for i := 1; i < len(xs); i++ {
		x1, x2 := xs[i-1], xs[i]
		y1, y2 := mu[i-1], mu[i]
		if (y1 == 0 && y2 == 0) || x1 == x2 {
			continue
		}
		w := x2 - x1

		var c, a float64
		switch {
		case y1 == y2: // rectangle
			c = 0.5 * (x1 + x2)
			a = w * y1
		case y1 == 0: // rising triangle
			c = 2.0/3.0*w + x1
			a = 0.5 * w * y2
		case y2 == 0: // falling triangle
			c = 1.0/3.0*w + x1
			a = 0.5 * w * y1
		default: // trapezoid
			c = (2.0/3.0*w*(y2+0.5*y1))/(y1+y2) + x1
			a = 0.5 * w * (y1 + y2)
		}
		moment += c * a
		area += a
	}
	if area == 0 {
		return 0, false
	}

	return moment / area, true
}
