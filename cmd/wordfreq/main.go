package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/midbel/wordfreq"
)

const usage = `usage: wordfreq [-n limit] [-p] <input|-> <output>
       wordfreq test
       wordfreq [-n limit] [-q sentinel] [-prompt str]

options:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	set := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	set.SetOutput(stderr)
	set.Usage = func() {
		fmt.Fprint(set.Output(), usage)
		set.PrintDefaults()
	}
	var (
		limit    = set.Int("n", 0, "keep only the n most frequent words")
		progress = set.Bool("p", false, "show a progress bar while reading input")
		quit     = set.String("q", wordfreq.DefaultQuit, "line ending interactive mode")
		prompt   = set.String("prompt", "", "prompt printed before reading a line")
	)
	if err := set.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var err error
	switch {
	case set.NArg() == 1 && set.Arg(0) == "test":
		err = runTests(stdout)
	case set.NArg() == 2:
		var bar io.Writer
		if *progress {
			bar = stderr
		}
		err = runBatch(set.Arg(0), set.Arg(1), *limit, bar)
	case set.NArg() == 0:
		options := []wordfreq.SessionOption{
			wordfreq.WithStdin(stdin),
			wordfreq.WithStdout(stdout),
			wordfreq.WithStderr(stderr),
			wordfreq.WithQuit(*quit),
			wordfreq.WithPrompt(*prompt),
			wordfreq.WithSessionLimit(*limit),
		}
		err = runSession(options...)
	default:
		set.Usage()
		return 2
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func runTests(w io.Writer) error {
	if n := wordfreq.RunScenarios(w); n > 0 {
		return fmt.Errorf("%d/%d tests failed", n, len(wordfreq.Scenarios))
	}
	return nil
}

func runBatch(input, output string, limit int, progress io.Writer) error {
	options := []wordfreq.BatchOption{
		wordfreq.WithLimit(limit),
	}
	if progress != nil {
		options = append(options, wordfreq.WithProgress(progress))
	}
	return wordfreq.Batch(input, output, options...)
}

func runSession(options ...wordfreq.SessionOption) error {
	sess, err := wordfreq.NewSession(options...)
	if err != nil {
		return err
	}
	return sess.Run()
}
