package wordfreq

import (
	"fmt"
	"io"
)

type Scenario struct {
	Name  string
	Input string
	Want  string
}

// Scenarios is the suite run by the test mode of the command.
var Scenarios = []Scenario{
	{
		Name:  "Empty input works",
		Input: "",
		Want:  "",
	},
	{
		Name:  "Input with only spaces and special symbols works",
		Input: " 1234567890-= ",
		Want:  "",
	},
	{
		Name:  "Trivial case works",
		Input: "hello world",
		Want:  "1 hello\n1 world\n",
	},
	{
		Name:  "Spaces in beginning and end",
		Input: "  hello  world  ",
		Want:  "1 hello\n1 world\n",
	},
	{
		Name:  "Non-letter symbols are treated as spaces",
		Input: "_+=hello=,.\n/1234567890=world=+_",
		Want:  "1 hello\n1 world\n",
	},
	{
		Name:  "Correct output ordering",
		Input: "a a b b bb aa",
		Want:  "2 a\n2 b\n1 aa\n1 bb\n",
	},
	{
		Name:  "Newlines don't mess anything up",
		Input: "\na\na\n b\nb\n bb\n\naa\n\n",
		Want:  "2 a\n2 b\n1 aa\n1 bb\n",
	},
	{
		Name:  "No big letters in output",
		Input: "HeLLO hello",
		Want:  "2 hello\n",
	},
}

func (s Scenario) Run() (string, bool) {
	got := Frequencies(s.Input)
	return got, got == s.Want
}

// RunScenarios runs every scenario, reports each of them on w and returns
// the number of failures.
func RunScenarios(w io.Writer) int {
	var failed int
	for i, s := range Scenarios {
		fmt.Fprintf(w, "======= test %d: %s ...... ", i+1, s.Name)
		got, ok := s.Run()
		if ok {
			fmt.Fprintln(w, "ok")
			continue
		}
		failed++
		fmt.Fprintln(w, " failed:")
		fmt.Fprintf(w, "=> expected:\n%s\n", s.Want)
		fmt.Fprintf(w, "=> got:\n%s\n", got)
	}
	return failed
}
