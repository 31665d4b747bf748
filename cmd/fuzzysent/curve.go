// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzysent/fuzzy"
)

func newCurveCmd(root *rootOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the sampled membership curves of a variable",
		Long: `Print the membership degree of every term of a variable at each point
of its sampling grid. Without --var the output variable is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := root.classifier(root.log())
			if err != nil {
				return err
			}
			v, err := lookupVariable(c.Engine(), name)
			if err != nil {
				return err
			}

			return writeCurves(cmd.OutOrStdout(), v)
		},
	}

	cmd.Flags().StringVar(&name, "var", "", "Variable name (default: the output variable)")

	return cmd
}

func lookupVariable(e *fuzzy.Engine, name string) (*fuzzy.Variable, error) {
	if name == "" || name == e.Output().Name() {
		return e.Output(), nil
	}
	for _, v := range e.Inputs() {
		if v.Name() == name {
			return v, nil
		}
	}

	return nil, fmt.Errorf("%q: %w", name, fuzzy.ErrUnknownVariable)
}

func writeCurves(w io.Writer, v *fuzzy.Variable) error {
	names := v.TermNames()
	curves := make([][]float64, len(names))
	for i, n := range names {
		c, err := v.Curve(n)
		if err != nil {
			return err
		}
		curves[i] = c
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", v.Name(), strings.Join(names, "\t"))
	for i, x := range v.Universe() {
		fmt.Fprintf(tw, "%.2f", x)
		for _, c := range curves {
			fmt.Fprintf(tw, "\t%.4f", c[i])
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
