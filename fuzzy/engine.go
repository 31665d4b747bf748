// SPDX-License-Identifier: MIT

package fuzzy

import (
	"context"
	"log/slog"
	"math"
)

// Engine is a Mamdani fuzzy controller with N input variables and one output.
//
// Algorithm outline (Infer):
//  1. Fuzzify every input: degree of the clamped value in each term.
//  2. Firing strength of each rule = min of its clause degrees.
//  3. Aggregate per output term with max over the rules concluding it.
//  4. Clip each output term at its strength, union with max, and take the
//     centroid of the result over the output universe.
//  5. If nothing fired (zero mass), report the fallback value with Fired=false.
//
// An Engine holds only immutable configuration and is safe for concurrent use.
// Complexity per call: O(R·C + T·S) for R rules of C clauses, T output terms
// and S output samples.
type Engine struct {
	inputs  []*Variable
	output  *Variable
	rules   []Rule
	program []compiledRule
	curves  [][]float64 // output term curves over output.universe
	cfg     engineConfig
}

// New validates the configuration and builds an Engine.
//
// Every rule reference is resolved here, so evaluation never looks up names.
// Errors: ErrNoInputs, ErrNilVariable, ErrDuplicateVariable, ErrNoRules,
// ErrEmptyAntecedent, ErrUnknownVariable, ErrUnknownTerm, ErrDuplicateClause,
// ErrBadDomain (fallback outside the output domain).
func New(inputs []*Variable, output *Variable, rules []Rule, opts ...Option) (*Engine, error) {
	if len(inputs) == 0 {
		return nil, fuzzyErrorf(ErrNoInputs, "New")
	}
	if output == nil {
		return nil, fuzzyErrorf(ErrNilVariable, "New: output")
	}

	byName := make(map[string]int, len(inputs))
	for i, v := range inputs {
		if v == nil {
			return nil, fuzzyErrorf(ErrNilVariable, "New: input #%d", i)
		}
		if _, dup := byName[v.name]; dup || v.name == output.name {
			return nil, fuzzyErrorf(ErrDuplicateVariable, "New: %q", v.name)
		}
		byName[v.name] = i
	}

	if len(rules) == 0 {
		return nil, fuzzyErrorf(ErrNoRules, "New")
	}
	program := make([]compiledRule, len(rules))
	for i, r := range rules {
		cr, err := compileRule(r, inputs, byName, output)
		if err != nil {
			return nil, fuzzyErrorf(err, "rule #%d %q", i+1, r.String())
		}
		program[i] = cr
	}

	cfg := newEngineConfig(opts...)
	if !cfg.hasFallback {
		cfg.fallback = defaultFallback(output)
	} else if cfg.fallback < output.min || cfg.fallback > output.max {
		return nil, fuzzyErrorf(ErrBadDomain, "fallback %g outside %q", cfg.fallback, output.name)
	}

	e := &Engine{
		inputs:  append([]*Variable(nil), inputs...),
		output:  output,
		rules:   cloneRules(rules),
		program: program,
		curves:  make([][]float64, len(output.terms)),
		cfg:     cfg,
	}
	for t := range output.terms {
		e.curves[t] = output.sample(t)
	}

	return e, nil
}

func compileRule(r Rule, inputs []*Variable, byName map[string]int, output *Variable) (compiledRule, error) {
	if len(r.If) == 0 {
		return compiledRule{}, ErrEmptyAntecedent
	}
	cr := compiledRule{clauses: make([]compiledClause, len(r.If))}
	seen := make(map[int]bool, len(r.If))
	for j, c := range r.If {
		in, ok := byName[c.Variable]
		if !ok {
			return compiledRule{}, fuzzyErrorf(ErrUnknownVariable, "%q", c.Variable)
		}
		if seen[in] {
			return compiledRule{}, fuzzyErrorf(ErrDuplicateClause, "%q", c.Variable)
		}
		seen[in] = true
		term, ok := inputs[in].index[c.Term]
		if !ok {
			return compiledRule{}, fuzzyErrorf(ErrUnknownTerm, "%q has no term %q", c.Variable, c.Term)
		}
		cr.clauses[j] = compiledClause{input: in, term: term}
	}
	then, ok := output.index[r.Then]
	if !ok {
		return compiledRule{}, fuzzyErrorf(ErrUnknownTerm, "%q has no term %q", output.name, r.Then)
	}
	cr.then = then

	return cr, nil
}

// defaultFallback is 0 when the output domain contains it, else the midpoint.
func defaultFallback(out *Variable) float64 {
	if out.min <= 0 && 0 <= out.max {
		return 0
	}

	return out.min + (out.max-out.min)/2
}

// Inputs returns the input variables in argument order of Infer.
func (e *Engine) Inputs() []*Variable {
	return append([]*Variable(nil), e.inputs...)
}

// Output returns the output variable.
func (e *Engine) Output() *Variable { return e.output }

// Rules returns a copy of the rule base in declaration order.
func (e *Engine) Rules() []Rule { return cloneRules(e.rules) }

// Method returns the configured defuzzification method.
func (e *Engine) Method() Method { return e.cfg.method }

// Fallback returns the crisp value reported when no rule fires.
func (e *Engine) Fallback() float64 { return e.cfg.fallback }

// Fuzzify computes the membership degree of every input in every term.
// values are matched positionally to Inputs().
//
// Errors: ErrInputArity on a count mismatch, ErrInvalidInput on NaN/±Inf.
// Finite out-of-domain values are clamped.
func (e *Engine) Fuzzify(values ...float64) (Fuzzification, error) {
	if len(values) != len(e.inputs) {
		return Fuzzification{}, fuzzyErrorf(ErrInputArity, "got %d, want %d", len(values), len(e.inputs))
	}
	f := Fuzzification{
		inputs:  e.inputs,
		values:  make([]float64, len(values)),
		degrees: make([][]float64, len(values)),
	}
	for i, x := range values {
		if !isFinite(x) {
			return Fuzzification{}, fuzzyErrorf(ErrInvalidInput, "%q = %v", e.inputs[i].name, x)
		}
		f.values[i] = e.inputs[i].Clamp(x)
		f.degrees[i] = e.inputs[i].Fuzzify(x)
	}

	return f, nil
}

// Evaluate runs rule evaluation, aggregation and defuzzification on f.
// f must come from Fuzzify of an engine built over the same Variable values:
// a different input count is ErrInputArity, other variables are
// ErrForeignFuzzification.
func (e *Engine) Evaluate(f Fuzzification) (Output, error) {
	if len(f.inputs) != len(e.inputs) || len(f.degrees) != len(e.inputs) {
		return Output{}, fuzzyErrorf(ErrInputArity, "got %d inputs, want %d", len(f.inputs), len(e.inputs))
	}
	if !e.owns(f) {
		return Output{}, fuzzyErrorf(ErrForeignFuzzification, "Evaluate")
	}

	strengths := make([]float64, len(e.output.terms))
	for _, r := range e.program {
		if s := r.strength(f.degrees); s > strengths[r.then] {
			strengths[r.then] = s
		}
	}
	out := Output{
		Value:     e.cfg.fallback,
		terms:     e.output.terms,
		strengths: strengths,
	}

	mu := e.aggregate(strengths)
	v, ok := e.cfg.method.defuzzify(e.output.universe, mu)
	if !ok {
		e.logDegenerate(f)
		return out, nil
	}
	out.Value = v
	out.Fired = true

	return out, nil
}

// Infer is Fuzzify followed by Evaluate.
func (e *Engine) Infer(values ...float64) (Output, error) {
	f, err := e.Fuzzify(values...)
	if err != nil {
		return Output{}, err
	}

	return e.Evaluate(f)
}

// aggregate returns μ(x) = max_t min(s_t, μ_t(x)) over the output universe.
func (e *Engine) aggregate(strengths []float64) []float64 {
	mu := make([]float64, len(e.output.universe))
	for t, s := range strengths {
		if s == 0 {
			continue
		}
		for i, d := range e.curves[t] {
			mu[i] = math.Max(mu[i], math.Min(s, d))
		}
	}

	return mu
}

// owns reports whether f was computed over this engine's input variables.
func (e *Engine) owns(f Fuzzification) bool {
	for i, v := range f.inputs {
		if v != e.inputs[i] {
			return false
		}
	}

	return true
}

func (e *Engine) logDegenerate(f Fuzzification) {
	if !e.cfg.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := make([]any, 0, 2*len(e.inputs)+2)
	for i, v := range e.inputs {
		attrs = append(attrs, v.name, f.values[i])
	}
	attrs = append(attrs, "fallback", e.cfg.fallback)
	e.cfg.logger.Debug("no rule fired", attrs...)
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = Rule{If: append([]Clause(nil), r.If...), Then: r.Then}
	}

	return out
}
