// SPDX-License-Identifier: MIT

package fuzzy

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// MaxSamples bounds the number of points in a variable's sampling grid.
const MaxSamples = 1_000_000

// Term is a named linguistic value of a Variable, e.g. "low" → (0, 0, 0.5).
type Term struct {
	Name string
	MF   Triangle
}

// Variable is a linguistic variable: a named closed domain [Min, Max] described
// by an ordered set of overlapping terms.
//
// The sampling step only shapes Universe and Curve. Input variables are
// evaluated analytically; the output variable's universe is the grid that
// defuzzification integrates over.
//
// A Variable is immutable after NewVariable and safe for concurrent use.
type Variable struct {
	name     string
	min, max float64
	step     float64
	terms    []Term
	index    map[string]int
	universe []float64
}

// NewVariable validates and builds a linguistic variable.
//
// Errors (checked in this order):
//   - ErrEmptyName       - empty variable or term name.
//   - ErrBadDomain       - min >= max or non-finite bounds.
//   - ErrBadResolution   - step <= 0, non-finite, wider than the domain, or so
//     small that the grid would exceed MaxSamples points.
//   - ErrNoTerms         - no terms given.
//   - ErrDuplicateTerm   - two terms share a name.
//   - ErrBadBreakpoints  - a term's triangle is not ordered.
func NewVariable(name string, min, max, step float64, terms ...Term) (*Variable, error) {
	if name == "" {
		return nil, fuzzyErrorf(ErrEmptyName, "NewVariable")
	}
	if !isFinite(min) || !isFinite(max) || min >= max {
		return nil, fuzzyErrorf(ErrBadDomain, "variable %q [%g, %g]", name, min, max)
	}
	if !isFinite(step) || step <= 0 || step > max-min {
		return nil, fuzzyErrorf(ErrBadResolution, "variable %q step %g", name, step)
	}
	if (max-min)/step >= MaxSamples {
		return nil, fuzzyErrorf(ErrBadResolution, "variable %q step %g: more than %d samples", name, step, MaxSamples)
	}
	if len(terms) == 0 {
		return nil, fuzzyErrorf(ErrNoTerms, "variable %q", name)
	}

	v := &Variable{
		name:  name,
		min:   min,
		max:   max,
		step:  step,
		terms: make([]Term, len(terms)),
		index: make(map[string]int, len(terms)),
	}
	for i, t := range terms {
		if t.Name == "" {
			return nil, fuzzyErrorf(ErrEmptyName, "variable %q term #%d", name, i)
		}
		if _, dup := v.index[t.Name]; dup {
			return nil, fuzzyErrorf(ErrDuplicateTerm, "variable %q term %q", name, t.Name)
		}
		if err := t.MF.Validate(); err != nil {
			return nil, fuzzyErrorf(err, "variable %q term %q", name, t.Name)
		}
		v.terms[i] = t
		v.index[t.Name] = i
	}

	// Grid of round((max-min)/step)+1 points, first and last pinned to the bounds.
	n := int(math.Round((max-min)/step)) + 1
	if n < 2 {
		n = 2
	}
	v.universe = floats.Span(make([]float64, n), min, max)

	return v, nil
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Domain returns the closed interval [min, max].
func (v *Variable) Domain() (min, max float64) { return v.min, v.max }

// Step returns the configured sampling step.
func (v *Variable) Step() float64 { return v.step }

// Terms returns a copy of the terms in declaration order.
func (v *Variable) Terms() []Term {
	out := make([]Term, len(v.terms))
	copy(out, v.terms)

	return out
}

// TermNames returns the term names in declaration order.
func (v *Variable) TermNames() []string {
	names := make([]string, len(v.terms))
	for i, t := range v.terms {
		names[i] = t.Name
	}

	return names
}

// Term returns the membership function of the named term.
func (v *Variable) Term(name string) (Triangle, bool) {
	i, ok := v.index[name]
	if !ok {
		return Triangle{}, false
	}

	return v.terms[i].MF, true
}

// Universe returns a copy of the sample grid over the domain.
func (v *Variable) Universe() []float64 {
	out := make([]float64, len(v.universe))
	copy(out, v.universe)

	return out
}

// Curve samples the named term's membership over Universe.
// Returns ErrUnknownTerm if the term does not exist.
func (v *Variable) Curve(term string) ([]float64, error) {
	i, ok := v.index[term]
	if !ok {
		return nil, fuzzyErrorf(ErrUnknownTerm, "variable %q term %q", v.name, term)
	}

	return v.sample(i), nil
}

// Clamp saturates x to the domain.
func (v *Variable) Clamp(x float64) float64 {
	return math.Min(math.Max(x, v.min), v.max)
}

// Fuzzify returns the membership degree of x in every term, in term order.
//
// x is clamped to the domain first, so values beyond the bounds saturate at
// the boundary terms instead of failing. NaN is the caller's responsibility;
// Engine.Fuzzify rejects it.
func (v *Variable) Fuzzify(x float64) []float64 {
	x = v.Clamp(x)
	out := make([]float64, len(v.terms))
	for i, t := range v.terms {
		out[i] = t.MF.Degree(x)
	}

	return out
}

func (v *Variable) sample(term int) []float64 {
	mf := v.terms[term].MF
	out := make([]float64, len(v.universe))
	for i, x := range v.universe {
		out[i] = mf.Degree(x)
	}

	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
