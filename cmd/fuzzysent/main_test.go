// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fuzzysent/fuzzy"
	"github.com/katalvlaran/fuzzysent/sentiment"
)

// execute runs a fresh command tree and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	return executeWith(t, &rootOptions{}, stdin, args...)
}

func executeWith(t *testing.T, o *rootOptions, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmdWith(o)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// =============================================================================
// Root
// =============================================================================

func TestRootCmd_Definition(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "fuzzysent", cmd.Use)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"infer", "batch", "rules", "curve"}, names)

	pf := cmd.PersistentFlags()
	for _, name := range []string{"config", "method", "log-level", "log-format"} {
		assert.NotNil(t, pf.Lookup(name), name)
	}
	assert.Equal(t, "info", pf.Lookup("log-level").DefValue)
}

// =============================================================================
// infer
// =============================================================================

func TestInfer_Text(t *testing.T) {
	out, _, err := execute(t, "", "infer", "--pos", "0.9", "--neg", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "value=+0.6846 label=positive fired=true")
	assert.Contains(t, out, "positive   0.8000")
	assert.Contains(t, out, "negative   0.0000")
}

func TestInfer_JSON(t *testing.T) {
	out, _, err := execute(t, "", "infer", "--pos", "0", "--neg", "0.9", "--json")
	require.NoError(t, err)

	var r sentiment.Result
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, sentiment.Negative, r.Label)
	assert.InDelta(t, -0.6846153846153848, r.Value, 1e-12)
	assert.True(t, r.Fired)
	assert.Equal(t, 0.9, r.Negative)
	require.Len(t, r.Activations, 3)
	assert.Equal(t, "negative", r.Activations[0].Term)
	assert.InDelta(t, 0.8, r.Activations[0].Strength, 1e-12)
}

func TestInfer_Method(t *testing.T) {
	out, _, err := execute(t, "", "infer", "--pos", "0.9", "--neg", "0", "--method", "area")
	require.NoError(t, err)
	assert.Contains(t, out, "value=+0.6556 label=positive")

	_, _, err = execute(t, "", "infer", "--pos", "0.9", "--neg", "0", "--method", "bisector")
	require.Error(t, err)
	assert.ErrorIs(t, err, sentiment.ErrConfig)
	assert.ErrorIs(t, err, fuzzy.ErrUnknownMethod)
}

func TestInfer_Errors(t *testing.T) {
	_, _, err := execute(t, "", "infer", "--pos", "0.9")
	require.Error(t, err, "--neg is required")

	_, _, err = execute(t, "", "infer", "--pos", "NaN", "--neg", "0")
	assert.ErrorIs(t, err, fuzzy.ErrInvalidInput)
}

func TestInfer_NoFireIsLogged(t *testing.T) {
	out, stderr, err := execute(t, "", "--log-level", "debug", "infer", "--pos", "1", "--neg", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "label=neutral fired=false")
	assert.Contains(t, stderr, "no rule fired")

	_, stderr, err = execute(t, "", "infer", "--pos", "1", "--neg", "1")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "no rule fired", "debug records are hidden at info level")
}

func TestInfer_SymmetricPrintsPositiveZero(t *testing.T) {
	out, _, err := execute(t, "", "infer", "--pos", "0.5", "--neg", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "value=+0.0000 label=neutral fired=true")

	assert.Equal(t, "+0.0000", formatValue(-1e-17))
	assert.Equal(t, "+0.0000", formatValue(0))
	assert.Equal(t, "-0.0001", formatValue(-0.0001))
	assert.Equal(t, "+0.6846", formatValue(0.6846153846153848))
}

func TestInfer_ConfigFile(t *testing.T) {
	path := writeFile(t, "rules.yaml", "method: area\n")
	out, _, err := execute(t, "", "--config", path, "infer", "--pos", "0.3", "--neg", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "value=+0.3667")

	bad := writeFile(t, "bad.yaml", "rules:\n  - if: {positive: huge}\n    then: positive\n")
	_, _, err = execute(t, "", "--config", bad, "infer", "--pos", "0.3", "--neg", "0.1")
	assert.ErrorIs(t, err, sentiment.ErrConfig)
	assert.ErrorIs(t, err, fuzzy.ErrUnknownTerm)

	fine := writeFile(t, "fine.yaml", `output:
  name: sentiment
  min: -1
  max: 1
  step: 1e-15
  terms:
    - {name: negative, points: [-1, -1, 0]}
    - {name: neutral, points: [-0.5, 0, 0.5]}
    - {name: positive, points: [0, 1, 1]}
`)
	_, _, err = execute(t, "", "--config", fine, "infer", "--pos", "0.3", "--neg", "0.1")
	assert.ErrorIs(t, err, sentiment.ErrConfig)
	assert.ErrorIs(t, err, fuzzy.ErrBadResolution)
}

// =============================================================================
// batch
// =============================================================================

const batchInput = `positive,negative
# a comment
0.9,0
0,0.9
0.5,0.5
1,1
`

func TestBatch_Text(t *testing.T) {
	out, stderr, err := execute(t, batchInput, "batch", "--workers", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, []string{"#", "POSITIVE", "NEGATIVE", "VALUE", "LABEL", "FIRED", "FUZZIFY", "DEFUZZIFY", "TOTAL"}, strings.Fields(lines[0]))
	assert.Equal(t, "positive", strings.Fields(lines[1])[4])
	assert.Equal(t, "negative", strings.Fields(lines[2])[4])
	assert.Equal(t, "neutral", strings.Fields(lines[3])[4])
	assert.Equal(t, "false", strings.Fields(lines[4])[5])

	assert.Contains(t, out, "total=4 positive=1 negative=1 neutral=2 fallbacks=1")
	assert.Contains(t, out, "time total=")
	assert.Contains(t, stderr, "batch started")
	assert.Contains(t, stderr, "run_id=")
}

func TestBatch_FakeClock(t *testing.T) {
	o := &rootOptions{clock: clockwork.NewFakeClock()}
	out, stderr, err := executeWith(t, o, batchInput, "batch")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{"0s", "0s", "0s"}, strings.Fields(lines[1])[6:])
	assert.Contains(t, out, "time total=0s mean=0s fuzzify=0s defuzzify=0s")
	assert.Contains(t, stderr, "elapsed=0s")
}

func TestBatch_FileJSON(t *testing.T) {
	path := writeFile(t, "scores.csv", "0.9,0\n0.3,0.1\n")
	out, _, err := execute(t, "", "batch", path, "--json")
	require.NoError(t, err)

	sc := bufio.NewScanner(strings.NewReader(out))
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	require.Len(t, lines, 3)

	var first sentiment.TimedResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, sentiment.Positive, first.Label)
	assert.InDelta(t, 0.6846153846153848, first.Value, 1e-12)

	var second sentiment.TimedResult
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, sentiment.Neutral, second.Label)
	assert.InDelta(t, 0.39565217391304364, second.Value, 1e-12)

	var sum batchSummary
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &sum))
	assert.Equal(t, 2, sum.Summary.Total)
	assert.Equal(t, 1, sum.Summary.Counts[sentiment.Positive])
	assert.Equal(t, 1, sum.Summary.Counts[sentiment.Neutral])
}

func TestBatch_MetricsOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.prom")
	_, _, err := execute(t, batchInput, "batch", "-", "--metrics-out", path)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)
	assert.Contains(t, text, `fuzzysent_classifications_total{label="positive"} 1`)
	assert.Contains(t, text, `fuzzysent_classifications_total{label="neutral"} 2`)
	assert.Contains(t, text, "fuzzysent_degenerate_total 1")
	assert.Contains(t, text, "fuzzysent_inference_duration_seconds_count 4")
}

func TestBatch_Errors(t *testing.T) {
	_, _, err := execute(t, "0.9,0\nfoo,0\n", "batch")
	require.Error(t, err)
	assert.ErrorIs(t, err, errBadRow)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = execute(t, "0.9,0,1\n", "batch")
	assert.ErrorIs(t, err, errBadRow)

	_, _, err = execute(t, "0.9,0\n", "batch", "--workers", "0")
	assert.ErrorIs(t, err, sentiment.ErrWorkers)

	_, _, err = execute(t, "0.9,0\nNaN,0\n", "batch")
	assert.ErrorIs(t, err, fuzzy.ErrInvalidInput)

	_, _, err = execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadScores(t *testing.T) {
	items, err := readScores(strings.NewReader("pos, neg\n 0.1, 0.2\n1.5,-0.2\n"))
	require.NoError(t, err)
	assert.Equal(t, []sentiment.Scores{{Positive: 0.1, Negative: 0.2}, {Positive: 1.5, Negative: -0.2}}, items)

	items, err = readScores(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}

// =============================================================================
// rules / curve
// =============================================================================

func TestRules_Text(t *testing.T) {
	out, _, err := execute(t, "", "rules")
	require.NoError(t, err)
	assert.Contains(t, out, "positive [0, 1] step 0.1")
	assert.Contains(t, out, "sentiment [-1, 1] step 0.1")
	assert.Contains(t, out, "1. IF positive IS high AND negative IS low THEN positive")
	assert.Contains(t, out, "5. IF positive IS low AND negative IS low THEN neutral")
	assert.Contains(t, out, "method: centroid")
	assert.Contains(t, out, "fallback: 0")
}

func TestRules_YAMLRoundTrip(t *testing.T) {
	out, _, err := execute(t, "", "rules", "--yaml")
	require.NoError(t, err)

	cfg, err := sentiment.LoadConfig(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, sentiment.DefaultConfig(), cfg)
}

func TestCurve(t *testing.T) {
	out, _, err := execute(t, "", "curve", "--var", "positive")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, []string{"positive", "low", "medium", "high"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"0.00", "1.0000", "0.0000", "0.0000"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0.50", "0.0000", "1.0000", "0.0000"}, strings.Fields(lines[6]))
	assert.Equal(t, []string{"1.00", "0.0000", "0.0000", "1.0000"}, strings.Fields(lines[11]))

	out, _, err = execute(t, "", "curve")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 22)

	_, _, err = execute(t, "", "curve", "--var", "anger")
	assert.ErrorIs(t, err, fuzzy.ErrUnknownVariable)
}
