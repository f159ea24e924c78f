package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// captureStdout redirects stdout into a buffer for the duration of the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var b bytes.Buffer
	old := stdout
	stdout = &b
	t.Cleanup(func() { stdout = old })
	return &b
}

// createTempFile creates a file with content in a temporary folder.
func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return filename
}

// execute parses args for c and executes it.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Parse(%v) error = %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

type jsonResult struct {
	Metric   string     `json:"metric"`
	Rate     *float64   `json:"rate"`
	Periods  int        `json:"periods"`
	Currency string     `json:"currency"`
	HPRs     []*float64 `json:"hprs"`
	Error    string     `json:"error"`
}

func decodeResult(t *testing.T, b *bytes.Buffer) jsonResult {
	t.Helper()
	var res jsonResult
	if err := json.Unmarshal(b.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON output %q: %v", b.String(), err)
	}
	return res
}

func TestIRRCmd_Args(t *testing.T) {
	out := captureStdout(t)
	status := execute(t, &irrCmd{}, "-json", "--", "-100", "39", "59", "55", "20")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	res := decodeResult(t, out)
	if res.Rate == nil || *res.Rate < 0.28094 || *res.Rate > 0.28096 {
		t.Errorf("rate = %v, want 0.28095", res.Rate)
	}
	if res.Periods != 4 {
		t.Errorf("periods = %d, want 4", res.Periods)
	}
}

func TestIRRCmd_File(t *testing.T) {
	filename := createTempFile(t, "flows.jsonl", "-100\n0\n0\n74\n")
	out := captureStdout(t)
	if status := execute(t, &irrCmd{}, "-json", "-f", filename); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	res := decodeResult(t, out)
	if res.Rate == nil || *res.Rate > -0.09549 || *res.Rate < -0.09551 {
		t.Errorf("rate = %v, want -0.09550", res.Rate)
	}
}

func TestIRRCmd_JSONPath(t *testing.T) {
	filename := createTempFile(t, "project.json", `{"flows":[{"cf":-123400},{"cf":36200},{"cf":54800},{"cf":48100}]}`)
	out := captureStdout(t)
	if status := execute(t, &irrCmd{}, "-json", "-f", filename, "-path", "$.flows[*].cf"); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	res := decodeResult(t, out)
	if res.Rate == nil || *res.Rate < 0.05955 || *res.Rate > 0.05965 {
		t.Errorf("rate = %v, want 0.0596", res.Rate)
	}
}

func TestIRRCmd_NoSolution(t *testing.T) {
	out := captureStdout(t)
	if status := execute(t, &irrCmd{}, "-json", "100", "20"); status != subcommands.ExitFailure {
		t.Fatalf("Execute() = %v, want ExitFailure", status)
	}
	res := decodeResult(t, out)
	if res.Rate != nil {
		t.Errorf("rate = %v, want null", *res.Rate)
	}
	if res.Error != "no positive real root" {
		t.Errorf("error = %q, want %q", res.Error, "no positive real root")
	}
}

func TestIRRCmd_UsageErrors(t *testing.T) {
	captureStdout(t)
	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"--", "-100", "abc"}},
		{"path without file", []string{"-path", "$.x"}},
		{"file and args", []string{"-f", "x.jsonl", "1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := execute(t, &irrCmd{}, tt.args...); status != subcommands.ExitUsageError {
				t.Errorf("Execute(%v) = %v, want ExitUsageError", tt.args, status)
			}
		})
	}
}

func TestIRRCmd_DurandKerner(t *testing.T) {
	old := *rootsFinder
	*rootsFinder = "durand-kerner"
	defer func() { *rootsFinder = old }()

	out := captureStdout(t)
	if status := execute(t, &irrCmd{}, "-json", "--", "-5", "10.5", "1", "-8", "1"); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	res := decodeResult(t, out)
	if res.Rate == nil || *res.Rate < 0.08859 || *res.Rate > 0.08861 {
		t.Errorf("rate = %v, want 0.08860", res.Rate)
	}
}

func TestIRRCmd_UnknownFinder(t *testing.T) {
	old := *rootsFinder
	*rootsFinder = "bisection"
	defer func() { *rootsFinder = old }()

	if status := execute(t, &irrCmd{}, "--", "-100", "110"); status != subcommands.ExitUsageError {
		t.Errorf("Execute() = %v, want ExitUsageError", status)
	}
}

func TestIRRCmd_Markdown(t *testing.T) {
	out := captureStdout(t)
	if status := execute(t, &irrCmd{}, "--", "-100", "110"); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if !strings.Contains(out.String(), "10.00%") {
		t.Errorf("output does not contain the rate:\n%s", out)
	}
}

func TestTWRRCmd_Flags(t *testing.T) {
	out := captureStdout(t)
	status := execute(t, &twrrCmd{}, "-json", "-end", "120,260", "-begin", "100,240", "-flow", "2,4")
	if status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	res := decodeResult(t, out)
	if res.Rate == nil || *res.Rate < 0.15844 || *res.Rate > 0.15846 {
		t.Errorf("rate = %v, want 0.15845", res.Rate)
	}
	if len(res.HPRs) != 2 {
		t.Errorf("hprs = %v, want 2 of them", res.HPRs)
	}
}

func TestTWRRCmd_File(t *testing.T) {
	filename := createTempFile(t, "values.jsonl", `{"begin":100,"end":110,"currency":"EUR"}
{"begin":110,"end":121,"currency":"EUR"}
`)
	out := captureStdout(t)
	if status := execute(t, &twrrCmd{}, "-json", "-f", filename); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	res := decodeResult(t, out)
	if res.Rate == nil || *res.Rate < 0.0999999 || *res.Rate > 0.1000001 {
		t.Errorf("rate = %v, want 0.1", res.Rate)
	}
	if res.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", res.Currency)
	}
}

func TestTWRRCmd_LengthMismatch(t *testing.T) {
	captureStdout(t)
	if status := execute(t, &twrrCmd{}, "-end", "120,260", "-begin", "100"); status != subcommands.ExitUsageError {
		t.Errorf("Execute() = %v, want ExitUsageError", status)
	}
}

func TestTWRRCmd_NoPeriods(t *testing.T) {
	captureStdout(t)
	if status := execute(t, &twrrCmd{}, "-json"); status != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want ExitFailure", status)
	}
}

func TestHPRCmd(t *testing.T) {
	out := captureStdout(t)
	if status := execute(t, &hprCmd{}, "120", "100", "2"); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if got, want := strings.TrimSpace(out.String()), "22.00%"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	for _, args := range [][]string{
		{"120"},
		{"120", ","},
		{"120", "100", "2", "3"},
		{"120,100,2,3"},
	} {
		if status := execute(t, &hprCmd{}, args...); status != subcommands.ExitUsageError {
			t.Errorf("Execute(%q) = %v, want ExitUsageError", args, status)
		}
	}

	// comma lists count as several values.
	out.Reset()
	if status := execute(t, &hprCmd{}, "260,240,4"); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if got, want := strings.TrimSpace(out.String()), "10.00%"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestTopicCmd(t *testing.T) {
	out := captureStdout(t)
	if status := execute(t, &topicCmd{}, "irr"); status != subcommands.ExitSuccess {
		t.Fatalf("Execute() = %v, want ExitSuccess", status)
	}
	if !strings.Contains(out.String(), "Internal Rate of Return") {
		t.Errorf("output does not contain the topic:\n%s", out)
	}
	if status := execute(t, &topicCmd{}, "nope"); status != subcommands.ExitFailure {
		t.Errorf("Execute() = %v, want ExitFailure", status)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion(flag.NewFlagSet("ror", flag.ContinueOnError))
	for _, name := range []string{"irr", "twrr", "hpr", "topic"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("Completion() has no sub command %q", name)
		}
	}
	if _, ok := c.Sub["irr"].Flags["path"]; !ok {
		t.Error(`Completion() irr has no "path" flag`)
	}
	if c.Sub["topic"].Args == nil {
		t.Error("Completion() topic does not complete topics")
	}
}
