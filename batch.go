package wordfreq

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cheggaaa/pb/v3"
	"github.com/midbel/rw"
)

// Stdin is the input name that makes Batch read the standard input.
const Stdin = "-"

type batch struct {
	progress io.Writer
	limit    int
}

type source struct {
	io.Reader
	name string
}

func (s source) Unwrap() io.Reader {
	return s.Reader
}

// Batch counts the words of the input file and writes the report to the
// output file. The output file is only created once the input has been
// fully read and it is replaced atomically: a failed run never leaves a
// partial report behind.
func Batch(input, output string, options ...BatchOption) error {
	src := source{
		Reader: os.Stdin,
		name:   "<stdin>",
	}
	if input != Stdin {
		r, err := os.Open(input)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInput, err)
		}
		defer r.Close()
		src = source{
			Reader: r,
			name:   input,
		}
	}
	if err := BatchReader(src, output, options...); err != nil {
		return fmt.Errorf("%s: %w", src.name, err)
	}
	return nil
}

// BatchReader is Batch for an already opened input. When a progress bar is
// requested, its total is the size of the file behind r, if any.
func BatchReader(r io.Reader, output string, options ...BatchOption) error {
	var b batch
	for _, o := range options {
		o(&b)
	}
	if b.progress != nil {
		bar := pb.New64(inputSize(r))
		bar.SetWriter(b.progress)
		bar.Start()
		defer bar.Finish()

		r = bar.NewProxyReader(r)
	}
	tab, err := CountReader(r)
	if err != nil {
		return err
	}
	return writeReport(output, Top(Rank(tab), b.limit))
}

// writeReport replaces the target of file, following symlinks, and keeps
// the permissions of the report it replaces.
func writeReport(file string, list []Entry) error {
	file, mode := resolveOutput(file)
	w, err := os.CreateTemp(filepath.Dir(file), "."+filepath.Base(file)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	tmp := w.Name()
	if err = WriteEntries(w, list); err == nil {
		err = w.Chmod(mode)
	}
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, file)
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrOutput, err)
	}
	return nil
}

func resolveOutput(file string) (string, fs.FileMode) {
	if target, err := filepath.EvalSymlinks(file); err == nil {
		file = target
	}
	mode := fs.FileMode(0644)
	if fi, err := os.Stat(file); err == nil && fi.Mode().IsRegular() {
		mode = fi.Mode().Perm()
	}
	return file, mode
}

func inputSize(r io.Reader) int64 {
	f, ok := r.(*os.File)
	if !ok {
		f, ok = unwrapFile(r)
	}
	if !ok {
		return 0
	}
	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return 0
	}
	return fi.Size()
}

func unwrapFile(r io.Reader) (*os.File, bool) {
	u, ok := r.(rw.UnwrapReader)
	if !ok {
		return nil, ok
	}
	f, ok := u.Unwrap().(*os.File)
	return f, ok
}
