// SPDX-License-Identifier: MIT

package fuzzy_test

import (
	"fmt"

	"github.com/katalvlaran/fuzzysent/fuzzy"
)

// ExampleTriangle_Degree shows a full triangle and a degenerate ramp.
func ExampleTriangle_Degree() {
	medium := fuzzy.Triangle{A: 0, B: 0.5, C: 1}
	low := fuzzy.Triangle{A: 0, B: 0, C: 0.5}

	fmt.Println(medium.Degree(0.25), medium.Degree(0.5), medium.Degree(1))
	fmt.Println(low.Degree(0), low.Degree(0.25), low.Degree(-3))
	// Output:
	// 0.5 1 0
	// 1 0.5 0
}

// ExampleEngine_Infer builds the two-input sentiment controller and
// classifies a strongly positive score pair.
//
// Scenario:
//
//	positive = 0.9 → medium 0.2, high 0.8
//	negative = 0.0 → low 1
//	rule "high ∧ low → positive" fires at 0.8; the clipped positive term's
//	centroid over the 0.1 grid is 3.56 / 5.2.
func ExampleEngine_Infer() {
	lmh := []fuzzy.Term{
		{Name: "low", MF: fuzzy.Triangle{A: 0, B: 0, C: 0.5}},
		{Name: "medium", MF: fuzzy.Triangle{A: 0, B: 0.5, C: 1}},
		{Name: "high", MF: fuzzy.Triangle{A: 0.5, B: 1, C: 1}},
	}
	pos, _ := fuzzy.NewVariable("positive", 0, 1, 0.1, lmh...)
	neg, _ := fuzzy.NewVariable("negative", 0, 1, 0.1, lmh...)
	out, _ := fuzzy.NewVariable("sentiment", -1, 1, 0.1,
		fuzzy.Term{Name: "negative", MF: fuzzy.Triangle{A: -1, B: -1, C: 0}},
		fuzzy.Term{Name: "neutral", MF: fuzzy.Triangle{A: -0.5, B: 0, C: 0.5}},
		fuzzy.Term{Name: "positive", MF: fuzzy.Triangle{A: 0, B: 1, C: 1}},
	)
	rules := []fuzzy.Rule{
		fuzzy.NewRule("positive", fuzzy.Is("positive", "high"), fuzzy.Is("negative", "low")),
		fuzzy.NewRule("positive", fuzzy.Is("positive", "medium"), fuzzy.Is("negative", "low")),
		fuzzy.NewRule("negative", fuzzy.Is("positive", "low"), fuzzy.Is("negative", "high")),
		fuzzy.NewRule("neutral", fuzzy.Is("positive", "medium"), fuzzy.Is("negative", "medium")),
		fuzzy.NewRule("neutral", fuzzy.Is("positive", "low"), fuzzy.Is("negative", "low")),
	}

	eng, err := fuzzy.New([]*fuzzy.Variable{pos, neg}, out, rules)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := eng.Infer(0.9, 0.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("value=%.4f fired=%v positive=%.1f\n", res.Value, res.Fired, res.Activation("positive"))

	res, _ = eng.Infer(1, 1)
	fmt.Printf("value=%.4f fired=%v\n", res.Value, res.Fired)
	// Output:
	// value=0.6846 fired=true positive=0.8
	// value=0.0000 fired=false
}
