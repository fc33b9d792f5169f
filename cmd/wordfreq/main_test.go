package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/wordfreq"
)

type RunCase struct {
	Name  string
	Args  []string
	Stdin string
	Code  int
	Out   string
	Err   string
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(input, []byte("a a b b bb aa"), 0644); err != nil {
		t.Fatalf("fail to write %s: %s", input, err)
	}
	data := []RunCase{
		{
			Name: "test",
			Args: []string{"test"},
			Code: 0,
			Out:  "...... ok",
		},
		{
			Name: "batch",
			Args: []string{input, filepath.Join(dir, "out.txt")},
			Code: 0,
		},
		{
			Name: "batch-missing-input",
			Args: []string{filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt")},
			Code: 1,
			Err:  "unreadable input",
		},
		{
			Name: "batch-unwritable-output",
			Args: []string{input, filepath.Join(dir, "nodir", "out.txt")},
			Code: 1,
			Err:  "unwritable output",
		},
		{
			Name:  "interactive",
			Stdin: "hello world\n\\q\nfoo\n",
			Code:  0,
			Out:   "1 hello\n1 world\n",
		},
		{
			Name:  "interactive-limit",
			Args:  []string{"-n", "1", "-q", "exit"},
			Stdin: "b a b\nexit\n",
			Code:  0,
			Out:   "2 b\n",
		},
		{
			Name: "too-many-args",
			Args: []string{"a", "b", "c"},
			Code: 2,
			Err:  "usage: wordfreq",
		},
		{
			Name: "unknown-command",
			Args: []string{"check"},
			Code: 2,
			Err:  "usage: wordfreq",
		},
		{
			Name: "bad-flag",
			Args: []string{"-x"},
			Code: 2,
			Err:  "usage: wordfreq",
		},
		{
			Name: "empty-sentinel",
			Args: []string{"-q", ""},
			Code: 1,
			Err:  wordfreq.ErrSentinel.Error(),
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(d.Args, strings.NewReader(d.Stdin), &stdout, &stderr)
			if code != d.Code {
				t.Fatalf("exit code mismatched! want %d, got %d (stderr: %s)", d.Code, code, stderr.String())
			}
			if !strings.Contains(stdout.String(), d.Out) {
				t.Errorf("stdout mismatched! want %q in %q", d.Out, stdout.String())
			}
			if d.Err == "" && stderr.Len() != 0 {
				t.Errorf("stderr is not empty: %s", stderr.String())
			}
			if !strings.Contains(stderr.String(), d.Err) {
				t.Errorf("stderr mismatched! want %q in %q", d.Err, stderr.String())
			}
		})
	}
	report, err := os.ReadFile(filepath.Join(dir, "out.txt"))
	if err != nil {
		t.Fatalf("fail to read report: %s", err)
	}
	if want := "2 a\n2 b\n1 aa\n1 bb\n"; string(report) != want {
		t.Errorf("report mismatched! want %q, got %q", want, report)
	}
}

func TestRunFailingScenario(t *testing.T) {
	scenarios := wordfreq.Scenarios
	defer func() { wordfreq.Scenarios = scenarios }()

	wordfreq.Scenarios = append(scenarios[:len(scenarios):len(scenarios)], wordfreq.Scenario{
		Name:  "wrong expectation",
		Input: "foo",
		Want:  "2 foo\n",
	})

	var stdout, stderr bytes.Buffer
	if code := run([]string{"test"}, strings.NewReader(""), &stdout, &stderr); code != 1 {
		t.Fatalf("exit code mismatched! want 1, got %d", code)
	}
	if !strings.Contains(stdout.String(), "failed:") {
		t.Errorf("failure not reported on stdout: %s", stdout.String())
	}
	if want := "1/9 tests failed"; !strings.Contains(stderr.String(), want) {
		t.Errorf("stderr mismatched! want %q in %q", want, stderr.String())
	}
}
