// SPDX-License-Identifier: MIT
// Package: fuzzysent/fuzzy
//
// errors.go - sentinel errors for the fuzzy package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Constructors wrap sentinels with context via fuzzyErrorf (%w preserved).
//   • Configuration errors surface at construction time, never during Infer.
//   • A rule base that fires nothing for some input is NOT an error
//     (see Output.Fired).

package fuzzy

import (
	"errors"
	"fmt"
)

// Configuration errors. Any of these means the engine was not built.
var (
	// ErrBadBreakpoints indicates triangle breakpoints violating a ≤ b ≤ c
	// or containing NaN/±Inf.
	ErrBadBreakpoints = errors.New("fuzzy: breakpoints must satisfy a <= b <= c")

	// ErrBadDomain indicates a variable domain with Min >= Max or non-finite bounds.
	ErrBadDomain = errors.New("fuzzy: invalid domain")

	// ErrBadResolution indicates a sampling step that is not in (0, Max-Min].
	ErrBadResolution = errors.New("fuzzy: invalid sampling step")

	// ErrEmptyName indicates an empty variable or term name.
	ErrEmptyName = errors.New("fuzzy: empty name")

	// ErrNoTerms indicates a variable declared without linguistic terms.
	ErrNoTerms = errors.New("fuzzy: variable has no terms")

	// ErrDuplicateTerm indicates two terms with the same name in one variable.
	ErrDuplicateTerm = errors.New("fuzzy: duplicate term")

	// ErrDuplicateVariable indicates two variables with the same name in one engine.
	ErrDuplicateVariable = errors.New("fuzzy: duplicate variable")

	// ErrUnknownVariable indicates a rule clause naming a variable the engine does not know.
	ErrUnknownVariable = errors.New("fuzzy: unknown variable")

	// ErrUnknownTerm indicates a rule referencing a term absent from its variable.
	ErrUnknownTerm = errors.New("fuzzy: unknown term")

	// ErrDuplicateClause indicates a rule constraining the same input variable twice.
	ErrDuplicateClause = errors.New("fuzzy: variable used twice in one antecedent")

	// ErrEmptyAntecedent indicates a rule without clauses.
	ErrEmptyAntecedent = errors.New("fuzzy: rule has no antecedent")

	// ErrNoRules indicates an engine built from an empty rule base.
	ErrNoRules = errors.New("fuzzy: empty rule base")

	// ErrNoInputs indicates an engine built without input variables.
	ErrNoInputs = errors.New("fuzzy: no input variables")

	// ErrNilVariable indicates a nil *Variable passed to New.
	ErrNilVariable = errors.New("fuzzy: nil variable")

	// ErrUnknownMethod indicates an unrecognised defuzzification method name.
	ErrUnknownMethod = errors.New("fuzzy: unknown defuzzification method")
)

// Evaluation errors.
var (
	// ErrInputArity indicates Infer/Fuzzify received a number of values
	// different from the number of input variables.
	ErrInputArity = errors.New("fuzzy: wrong number of inputs")

	// ErrInvalidInput indicates a NaN or ±Inf input value. Out-of-range but
	// finite values are clamped, not rejected.
	ErrInvalidInput = errors.New("fuzzy: input must be a finite number")

	// ErrForeignFuzzification indicates Evaluate received a Fuzzification
	// computed over other Variable instances than the engine's inputs.
	ErrForeignFuzzification = errors.New("fuzzy: fuzzification from another engine")
)

// fuzzyErrorf prefixes err with a formatted context, keeping err matchable by errors.Is.
func fuzzyErrorf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
