// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzysent/internal/logging"
	"github.com/katalvlaran/fuzzysent/sentiment"
)

// =============================================================================
// Global Flags
// =============================================================================

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	method     string
	logLevel   string
	logFormat  string

	logger *slog.Logger
	// clock times batch runs; nil means the real clock.
	clock sentiment.Clock
}

// =============================================================================
// Root Command
// =============================================================================

func newRootCmd() *cobra.Command {
	return newRootCmdWith(&rootOptions{})
}

// newRootCmdWith builds the command tree over preset options (e.g. a clock).
func newRootCmdWith(o *rootOptions) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "fuzzysent",
		Short: "Fuzzy sentiment inference",
		Long: `fuzzysent turns a pair of lexicon intensity scores (positivity and
negativity, nominally in [0,1]) into a crisp sentiment value in [-1,1] and a
positive / negative / neutral label using Mamdani fuzzy inference.

Examples:
  fuzzysent infer --pos 0.9 --neg 0
  fuzzysent batch scores.csv --workers 8 --metrics-out metrics.prom
  fuzzysent rules --yaml > rules.yaml
  fuzzysent curve --var sentiment`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			o.logger = logging.New(cmd.ErrOrStderr(), o.logLevel, o.logFormat)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "YAML rule base (defaults to the built-in configuration)")
	pf.StringVarP(&o.method, "method", "m", "", "Defuzzification method: centroid or area (overrides the config)")
	pf.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&o.logFormat, "log-format", "text", "Log format: text or json")

	cmd.AddCommand(
		newInferCmd(o),
		newBatchCmd(o),
		newRulesCmd(o),
		newCurveCmd(o),
	)

	return cmd
}

// =============================================================================
// Shared Helpers
// =============================================================================

// config loads --config (or the defaults) and applies --method.
func (o *rootOptions) config() (sentiment.Config, error) {
	cfg := sentiment.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = sentiment.LoadConfigFile(o.configPath); err != nil {
			return sentiment.Config{}, err
		}
	}
	if o.method != "" {
		cfg.Method = o.method
	}

	return cfg, nil
}

// log returns the command logger, falling back to slog.Default outside Execute.
func (o *rootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}

	return o.logger
}

// classifier builds a classifier from the resolved configuration.
func (o *rootOptions) classifier(logger *slog.Logger, opts ...sentiment.Option) (*sentiment.Classifier, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}

	return sentiment.New(cfg, append([]sentiment.Option{sentiment.WithLogger(logger)}, opts...)...)
}
