package wordfreq

import (
	"errors"
	"io"
)

var ErrSentinel = errors.New("empty quit sentinel")

type SessionOption func(*Session) error

func WithStdin(r io.Reader) SessionOption {
	return func(s *Session) error {
		s.Stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) SessionOption {
	return func(s *Session) error {
		s.Stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) SessionOption {
	return func(s *Session) error {
		s.Stderr = w
		return nil
	}
}

// WithQuit changes the line that ends a session.
func WithQuit(sentinel string) SessionOption {
	return func(s *Session) error {
		if sentinel == "" {
			return ErrSentinel
		}
		s.quit = sentinel
		return nil
	}
}

// WithPrompt sets the prompt printed on stderr before each line is read.
func WithPrompt(prompt string) SessionOption {
	return func(s *Session) error {
		s.prompt = prompt
		return nil
	}
}

func WithSessionLimit(n int) SessionOption {
	return func(s *Session) error {
		s.limit = n
		return nil
	}
}

type BatchOption func(*batch)

// WithProgress draws a progress bar of the input read on w.
func WithProgress(w io.Writer) BatchOption {
	return func(b *batch) {
		b.progress = w
	}
}

func WithLimit(n int) BatchOption {
	return func(b *batch) {
		b.limit = n
	}
}
