// SPDX-License-Identifier: MIT

package fuzzy

// Fuzzification is the per-term membership of one set of crisp inputs.
// Produced by Engine.Fuzzify; read-only and safe to share.
type Fuzzification struct {
	inputs  []*Variable
	values  []float64   // clamped inputs
	degrees [][]float64 // [input][term]
}

// Value returns the clamped crisp value used for the named input.
func (f Fuzzification) Value(variable string) (float64, bool) {
	for i, v := range f.inputs {
		if v.name == variable {
			return f.values[i], true
		}
	}

	return 0, false
}

// Degree returns the membership of the named input in the named term.
func (f Fuzzification) Degree(variable, term string) (float64, bool) {
	for i, v := range f.inputs {
		if v.name != variable {
			continue
		}
		t, ok := v.index[term]
		if !ok {
			return 0, false
		}

		return f.degrees[i][t], true
	}

	return 0, false
}

// Map returns variable → term → degree. The result is a fresh copy.
func (f Fuzzification) Map() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(f.inputs))
	for i, v := range f.inputs {
		m := make(map[string]float64, len(v.terms))
		for t, term := range v.terms {
			m[term.Name] = f.degrees[i][t]
		}
		out[v.name] = m
	}

	return out
}

// Activation is the aggregated firing strength of one output term.
type Activation struct {
	Term     string  `json:"term"`
	Strength float64 `json:"strength"`
}

// Output is the result of one inference.
type Output struct {
	// Value is the defuzzified crisp output, inside the output domain.
	Value float64

	// Fired is false when no rule had a positive firing strength; Value then
	// holds the engine fallback.
	Fired bool

	terms     []Term
	strengths []float64
}

// Activations returns the aggregated strength of every output term, in term order.
func (o Output) Activations() []Activation {
	out := make([]Activation, len(o.terms))
	for i, t := range o.terms {
		out[i] = Activation{Term: t.Name, Strength: o.strengths[i]}
	}

	return out
}

// Activation returns the aggregated strength of the named output term (0 if unknown).
func (o Output) Activation(term string) float64 {
	for i, t := range o.terms {
		if t.Name == term {
			return o.strengths[i]
		}
	}

	return 0
}
