// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzysent/sentiment"
)

type inferOptions struct {
	positive float64
	negative float64
	json     bool
}

func newInferCmd(root *rootOptions) *cobra.Command {
	o := &inferOptions{}

	cmd := &cobra.Command{
		Use:   "infer",
		Short: "Classify one positive/negative score pair",
		Long: `Classify one positive/negative score pair.

Scores outside [0,1] saturate at the domain edge; NaN and Inf are rejected.

Examples:
  fuzzysent infer --pos 0.9 --neg 0
  fuzzysent infer --pos 0.3 --neg 0.1 --method area --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.classifier(root.log())
			if err != nil {
				return err
			}
			r, err := c.Classify(o.positive, o.negative)
			if err != nil {
				return err
			}
			if o.json {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			writeResult(cmd.OutOrStdout(), r)

			return nil
		},
	}

	cmd.Flags().Float64VarP(&o.positive, "pos", "p", 0, "Positivity score")
	cmd.Flags().Float64VarP(&o.negative, "neg", "n", 0, "Negativity score")
	cmd.Flags().BoolVar(&o.json, "json", false, "Output the result as JSON")
	_ = cmd.MarkFlagRequired("pos")
	_ = cmd.MarkFlagRequired("neg")

	return cmd
}

// writeResult prints the crisp value, label and per-term activation.
func writeResult(w io.Writer, r sentiment.Result) {
	fmt.Fprintf(w, "value=%s label=%s fired=%t\n", formatValue(r.Value), r.Label, r.Fired)
	for _, a := range r.Activations {
		fmt.Fprintf(w, "  %-10s %.4f\n", a.Term, a.Strength)
	}
}

// formatValue renders v with sign and four decimals. Values that round to
// zero print as +0.0000 whatever the sign of the rounding residue.
func formatValue(v float64) string {
	s := fmt.Sprintf("%+.4f", v)
	if s == "-0.0000" {
		return "+0.0000"
	}

	return s
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
