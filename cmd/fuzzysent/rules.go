// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzysent/fuzzy"
)

func newRulesCmd(root *rootOptions) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the variables and rule base",
		Long: `Print the variables and rule base of the active configuration.

With --yaml the configuration is printed in the format accepted by --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asYAML {
				cfg, err := root.config()
				if err != nil {
					return err
				}
				b, err := cfg.YAML()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(b)

				return err
			}

			c, err := root.classifier(root.log())
			if err != nil {
				return err
			}
			writeEngine(cmd.OutOrStdout(), c.Engine())

			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the configuration as YAML")

	return cmd
}

func writeEngine(w io.Writer, e *fuzzy.Engine) {
	fmt.Fprintln(w, "inputs:")
	for _, v := range e.Inputs() {
		writeVariable(w, v)
	}
	fmt.Fprintln(w, "output:")
	writeVariable(w, e.Output())
	fmt.Fprintln(w, "rules:")
	for i, r := range e.Rules() {
		fmt.Fprintf(w, "  %d. %s\n", i+1, r)
	}
	fmt.Fprintf(w, "method: %s\n", e.Method())
	fmt.Fprintf(w, "fallback: %g\n", e.Fallback())
}

func writeVariable(w io.Writer, v *fuzzy.Variable) {
	lo, hi := v.Domain()
	fmt.Fprintf(w, "  %s [%g, %g] step %g\n", v.Name(), lo, hi, v.Step())
	for _, t := range v.Terms() {
		fmt.Fprintf(w, "    %-10s %s\n", t.Name, t.MF)
	}
}
