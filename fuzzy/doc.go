// Package fuzzy implements a small Mamdani fuzzy inference engine over
// triangular membership functions.
//
// 🚀 What is it?
//
//	A fuzzy controller maps crisp inputs to a crisp output through linguistic
//	rules such as
//	  IF positive IS high AND negative IS low THEN sentiment IS positive
//	Each input is fuzzified into term degrees, rules fire with the minimum of
//	their clause degrees, strengths are aggregated per output term with max,
//	and the clipped output set is defuzzified by its centroid.
//
// ✨ Key features:
//   - triangular terms (a ≤ b ≤ c), including degenerate ramps a==b / b==c
//   - any number of input variables and terms per variable
//   - all rule references validated once, in New (fail fast)
//   - two defuzzifiers: discrete Centroid (default) and CentroidArea
//   - no-fire inputs never fail: Output.Fired=false and a fallback value
//   - immutable engines, safe for concurrent Infer without locks
//
// ⚙️ Usage:
//
//	lo, _ := fuzzy.NewTriangle(0, 0, 0.5)
//	...
//	in, _ := fuzzy.NewVariable("positive", 0, 1, 0.1, fuzzy.Term{Name: "low", MF: lo}, ...)
//	eng, err := fuzzy.New([]*fuzzy.Variable{in, ...}, out, rules,
//	    fuzzy.WithMethod(fuzzy.Centroid))
//	res, err := eng.Infer(0.9, 0.0)
//	fmt.Println(res.Value, res.Fired)
//
// Input policy:
//
//   - finite out-of-domain inputs are clamped to the domain (saturation);
//   - NaN and ±Inf are rejected with ErrInvalidInput.
//
// See example_test.go for runnable examples.
package fuzzy
