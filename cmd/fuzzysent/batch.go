// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fuzzysent/internal/logging"
	"github.com/katalvlaran/fuzzysent/sentiment"
)

// errBadRow reports an unreadable pos,neg row.
var errBadRow = errors.New("fuzzysent: bad score row")

type batchOptions struct {
	workers    int
	json       bool
	metricsOut string
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	o := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Classify pos,neg rows from a CSV file or stdin",
		Long: `Classify pos,neg rows from a CSV file or stdin.

Each row holds two numbers. A non-numeric first row is treated as a header and
lines starting with # are ignored. Results keep input order and are followed by
a summary with label counts and phase timings.

Examples:
  fuzzysent batch scores.csv
  cat scores.csv | fuzzysent batch --workers 8 --json
  fuzzysent batch scores.csv --metrics-out batch.prom`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			return runBatch(cmd, root, o, in)
		},
	}

	cmd.Flags().IntVarP(&o.workers, "workers", "w", runtime.GOMAXPROCS(0), "Number of concurrent workers")
	cmd.Flags().BoolVar(&o.json, "json", false, "Output one JSON object per row, then the summary")
	cmd.Flags().StringVar(&o.metricsOut, "metrics-out", "", "Write Prometheus metrics in text format to this file")

	return cmd
}

func runBatch(cmd *cobra.Command, root *rootOptions, o *batchOptions, in io.Reader) error {
	items, err := readScores(in)
	if err != nil {
		return err
	}

	logger := logging.WithRun(root.log(), uuid.NewString())
	opts := []sentiment.Option{}
	reg := prometheus.NewRegistry()
	if o.metricsOut != "" {
		m, err := sentiment.NewMetrics(reg)
		if err != nil {
			return err
		}
		opts = append(opts, sentiment.WithMetrics(m))
	}
	c, err := root.classifier(logger, opts...)
	if err != nil {
		return err
	}

	timer := sentiment.NewTimer(c, root.clock)
	logger.Info("batch started", "items", len(items), "workers", o.workers)
	start := timer.Clock().Now()
	timed, err := timer.ClassifyAll(cmd.Context(), items, o.workers)
	if err != nil {
		return err
	}
	summary := sentiment.Summarize(sentiment.Results(timed))
	timing := sentiment.SummarizeTimings(timed)
	logger.Info("batch finished",
		"items", summary.Total,
		"fallbacks", summary.Fallbacks,
		"elapsed", timer.Clock().Now().Sub(start))

	if o.metricsOut != "" {
		if err := prometheus.WriteToTextfile(o.metricsOut, reg); err != nil {
			return err
		}
	}

	if o.json {
		return writeBatchJSON(cmd.OutOrStdout(), timed, summary, timing)
	}

	return writeBatchText(cmd.OutOrStdout(), timed, summary, timing)
}

// readScores parses pos,neg rows. A first row that does not parse is a header.
func readScores(r io.Reader) ([]sentiment.Scores, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var items []sentiment.Scores
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 2 {
			return nil, fmt.Errorf("%w: line %d: want 2 fields, got %d", errBadRow, line, len(rec))
		}
		pos, perr := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		neg, nerr := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if perr != nil || nerr != nil {
			if first {
				continue
			}
			return nil, fmt.Errorf("%w: line %d: %q", errBadRow, line, strings.Join(rec, ","))
		}
		items = append(items, sentiment.Scores{Positive: pos, Negative: neg})
	}

	return items, nil
}

func writeBatchText(w io.Writer, timed []sentiment.TimedResult, s sentiment.Summary, ts sentiment.TimingSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tPOSITIVE\tNEGATIVE\tVALUE\tLABEL\tFIRED\tFUZZIFY\tDEFUZZIFY\tTOTAL")
	for i, r := range timed {
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\t%s\t%s\t%t\t%s\t%s\t%s\n",
			i+1, r.Positive, r.Negative, formatValue(r.Value), r.Label, r.Fired, r.Fuzzify, r.Defuzzify, r.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\ntotal=%d positive=%d negative=%d neutral=%d fallbacks=%d mean_value=%s\n",
		s.Total, s.Counts[sentiment.Positive], s.Counts[sentiment.Negative], s.Counts[sentiment.Neutral],
		s.Fallbacks, formatValue(s.MeanValue))
	_, err := fmt.Fprintf(w, "time total=%s mean=%s fuzzify=%s defuzzify=%s\n",
		ts.Total, ts.Mean, ts.Fuzzify, ts.Defuzzify)

	return err
}

// batchSummary is the trailing JSON line of a --json batch.
type batchSummary struct {
	Summary sentiment.Summary       `json:"summary"`
	Timing  sentiment.TimingSummary `json:"timing"`
}

func writeBatchJSON(w io.Writer, timed []sentiment.TimedResult, s sentiment.Summary, ts sentiment.TimingSummary) error {
	enc := json.NewEncoder(w)
	for _, r := range timed {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}

	return enc.Encode(batchSummary{Summary: s, Timing: ts})
}
