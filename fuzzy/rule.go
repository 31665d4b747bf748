// SPDX-License-Identifier: MIT

package fuzzy

import "strings"

// Clause is one "Variable IS Term" proposition of a rule antecedent.
type Clause struct {
	Variable string
	Term     string
}

// Is builds a Clause; it reads naturally inside NewRule:
//
//	fuzzy.NewRule("positive", fuzzy.Is("positive", "high"), fuzzy.Is("negative", "low"))
func Is(variable, term string) Clause {
	return Clause{Variable: variable, Term: term}
}

// Rule is a Mamdani rule: IF c1 AND c2 AND ... THEN output IS Then.
//
// The antecedent is a Zadeh conjunction (minimum of clause degrees). Then names
// a term of the engine's single output variable.
type Rule struct {
	If   []Clause
	Then string
}

// NewRule builds a rule with consequent term then and the given clauses.
// Validation happens when the rule is handed to New.
func NewRule(then string, clauses ...Clause) Rule {
	return Rule{If: clauses, Then: then}
}

// String renders the rule as "IF a IS x AND b IS y THEN z".
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString("IF ")
	for i, c := range r.If {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString(c.Variable)
		sb.WriteString(" IS ")
		sb.WriteString(c.Term)
	}
	sb.WriteString(" THEN ")
	sb.WriteString(r.Then)

	return sb.String()
}

// compiledClause addresses a degree by input index and term index.
type compiledClause struct {
	input, term int
}

// compiledRule is a Rule with names resolved against the engine's variables.
type compiledRule struct {
	clauses []compiledClause
	then    int
}

// strength returns min over the antecedent degrees (at least one clause).
func (r compiledRule) strength(degrees [][]float64) float64 {
	s := 1.0
	for _, c := range r.clauses {
		if d := degrees[c.input][c.term]; d < s {
			s = d
		}
	}

	return s
}
