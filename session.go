package wordfreq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const DefaultQuit = `\q`

// Session reads lines from Stdin and prints the report of each line on
// Stdout until the quit sentinel or the end of input.
type Session struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	quit   string
	prompt string
	limit  int
}

func NewSession(options ...SessionOption) (*Session, error) {
	s := Session{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		quit:   DefaultQuit,
	}
	for _, o := range options {
		if err := o(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (s *Session) Run() error {
	rs := bufio.NewReader(s.Stdin)
	for {
		if s.prompt != "" {
			fmt.Fprint(s.Stderr, s.prompt)
		}
		line, err := rs.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %w", ErrInput, err)
		}
		eof := err != nil
		if len(line) == 0 && eof {
			return nil
		}
		if line = trimEOL(line); line == s.quit {
			return nil
		}
		if err := s.Execute(line); err != nil {
			return err
		}
		if eof {
			return nil
		}
	}
}

// Execute prints the report of a single line.
func (s *Session) Execute(line string) error {
	list := Top(entries(line), s.limit)
	if err := WriteEntries(s.Stdout, list); err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
