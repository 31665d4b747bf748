// SPDX-License-Identifier: MIT

package sentiment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/katalvlaran/fuzzysent/fuzzy"
	"gopkg.in/yaml.v3"
)

// TermConfig is a triangular term; Points holds the breakpoints a, b, c.
type TermConfig struct {
	Name   string    `yaml:"name"`
	Points []float64 `yaml:"points,flow"`
}

// VariableConfig describes one linguistic variable.
type VariableConfig struct {
	Name  string       `yaml:"name"`
	Min   float64      `yaml:"min"`
	Max   float64      `yaml:"max"`
	Step  float64      `yaml:"step"`
	Terms []TermConfig `yaml:"terms"`
}

// RuleConfig is one rule: If maps input variable name → term name.
type RuleConfig struct {
	If   map[string]string `yaml:"if,flow"`
	Then string            `yaml:"then"`
}

// Config is the complete, serializable classifier configuration.
//
// Example YAML:
//
//	method: centroid
//	positive:
//	  name: positive
//	  min: 0
//	  max: 1
//	  step: 0.1
//	  terms:
//	    - {name: low, points: [0, 0, 0.5]}
//	    ...
//	rules:
//	  - if: {positive: high, negative: low}
//	    then: positive
type Config struct {
	Method   string         `yaml:"method"`
	Positive VariableConfig `yaml:"positive"`
	Negative VariableConfig `yaml:"negative"`
	Output   VariableConfig `yaml:"output"`
	Rules    []RuleConfig   `yaml:"rules"`
}

// DefaultConfig returns the reference configuration: low/medium/high inputs on
// [0,1], negative/neutral/positive output on [-1,1], and five rules.
func DefaultConfig() Config {
	lmh := func(name string) VariableConfig {
		return VariableConfig{
			Name: name, Min: 0, Max: 1, Step: 0.1,
			Terms: []TermConfig{
				{Name: "low", Points: []float64{0, 0, 0.5}},
				{Name: "medium", Points: []float64{0, 0.5, 1}},
				{Name: "high", Points: []float64{0.5, 1, 1}},
			},
		}
	}

	return Config{
		Method:   fuzzy.Centroid.String(),
		Positive: lmh("positive"),
		Negative: lmh("negative"),
		Output: VariableConfig{
			Name: "sentiment", Min: -1, Max: 1, Step: 0.1,
			Terms: []TermConfig{
				{Name: "negative", Points: []float64{-1, -1, 0}},
				{Name: "neutral", Points: []float64{-0.5, 0, 0.5}},
				{Name: "positive", Points: []float64{0, 1, 1}},
			},
		},
		Rules: []RuleConfig{
			{If: map[string]string{"positive": "high", "negative": "low"}, Then: "positive"},
			{If: map[string]string{"positive": "medium", "negative": "low"}, Then: "positive"},
			{If: map[string]string{"positive": "low", "negative": "high"}, Then: "negative"},
			{If: map[string]string{"positive": "medium", "negative": "medium"}, Then: "neutral"},
			{If: map[string]string{"positive": "low", "negative": "low"}, Then: "neutral"},
		},
	}
}

// LoadConfig decodes YAML over DefaultConfig: keys present in the document
// override the defaults, lists (terms, rules) are replaced as a whole, and
// unknown keys are rejected. An empty document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return cfg, nil
}

// LoadConfigFile reads and decodes a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return LoadConfig(bytes.NewReader(data))
}

// YAML encodes the configuration.
func (c Config) YAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Build validates the configuration and constructs the fuzzy engine.
// opts are applied after the configured method.
func (c Config) Build(opts ...fuzzy.Option) (*fuzzy.Engine, error) {
	method, err := fuzzy.ParseMethod(c.Method)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	pos, err := c.Positive.build()
	if err != nil {
		return nil, fmt.Errorf("%w: positive: %w", ErrConfig, err)
	}
	neg, err := c.Negative.build()
	if err != nil {
		return nil, fmt.Errorf("%w: negative: %w", ErrConfig, err)
	}
	out, err := c.Output.build()
	if err != nil {
		return nil, fmt.Errorf("%w: output: %w", ErrConfig, err)
	}

	order := []string{pos.Name(), neg.Name()}
	rules := make([]fuzzy.Rule, len(c.Rules))
	for i, rc := range c.Rules {
		rules[i] = rc.rule(order)
	}

	eng, err := fuzzy.New([]*fuzzy.Variable{pos, neg}, out, rules,
		append([]fuzzy.Option{fuzzy.WithMethod(method)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return eng, nil
}

func (vc VariableConfig) build() (*fuzzy.Variable, error) {
	terms := make([]fuzzy.Term, len(vc.Terms))
	for i, tc := range vc.Terms {
		if len(tc.Points) != 3 {
			return nil, fmt.Errorf("term %q: want 3 points, got %d: %w", tc.Name, len(tc.Points), fuzzy.ErrBadBreakpoints)
		}
		mf, err := fuzzy.NewTriangle(tc.Points[0], tc.Points[1], tc.Points[2])
		if err != nil {
			return nil, fmt.Errorf("term %q: %w", tc.Name, err)
		}
		terms[i] = fuzzy.Term{Name: tc.Name, MF: mf}
	}

	return fuzzy.NewVariable(vc.Name, vc.Min, vc.Max, vc.Step, terms...)
}

// rule orders clauses by input position, then any unknown names alphabetically
// so that validation errors are reproducible.
func (rc RuleConfig) rule(order []string) fuzzy.Rule {
	clauses := make([]fuzzy.Clause, 0, len(rc.If))
	known := make(map[string]bool, len(order))
	for _, name := range order {
		known[name] = true
		if term, ok := rc.If[name]; ok {
			clauses = append(clauses, fuzzy.Is(name, term))
		}
	}
	var extra []string
	for name := range rc.If {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		clauses = append(clauses, fuzzy.Is(name, rc.If[name]))
	}

	return fuzzy.NewRule(rc.Then, clauses...)
}
