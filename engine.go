package wordfreq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var (
	ErrInput  = errors.New("unreadable input")
	ErrOutput = errors.New("unwritable output")
)

// Frequencies runs the whole pipeline over str and returns the report.
func Frequencies(str string) string {
	return Format(entries(str))
}

func entries(str string) []Entry {
	return Rank(Count(Tokenize(Normalize(str))))
}

// CountReader counts the words of r line by line. Lines have no length
// limit.
func CountReader(r io.Reader) (Table, error) {
	var (
		rs  = bufio.NewReader(r)
		tab = make(Table)
	)
	for {
		line, err := rs.ReadString('\n')
		if len(line) > 0 {
			tab.Add(Tokenize(Normalize(line))...)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInput, err)
		}
	}
	return tab, nil
}

// Process reads all of r and writes the ranked report to w.
func Process(r io.Reader, w io.Writer) error {
	tab, err := CountReader(r)
	if err != nil {
		return err
	}
	if err := WriteEntries(w, Rank(tab)); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}
