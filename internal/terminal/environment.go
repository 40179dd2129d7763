// Package terminal tracks what has been printed and moves the cursor over
// it. Everything it knows about the real terminal comes from an Environment.
package terminal

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Default window size used when the terminal cannot report one.
const (
	DefaultColumns = 80
	DefaultRows    = 40
)

// Environment is the terminal the output ends up on.
type Environment interface {
	// IsInteractive reports whether output reaches a real terminal.
	IsInteractive() bool
	// WindowSize returns the terminal size in columns and rows.
	WindowSize() (columns, rows int)
	// WriteRaw writes s without any processing.
	WriteRaw(s string) error
}

// Stdio is the Environment of an *os.File, normally os.Stdout.
type Stdio struct {
	out *os.File
}

// NewStdio returns the Environment of out; nil means os.Stdout.
func NewStdio(out *os.File) *Stdio {
	if out == nil {
		out = os.Stdout
	}
	return &Stdio{out: out}
}

// IsInteractive returns true if the file is a terminal (Cygwin included).
func (s *Stdio) IsInteractive() bool {
	fd := s.out.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// WindowSize asks the terminal for its size, falling back to 80x40.
func (s *Stdio) WindowSize() (int, int) {
	w, h, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return DefaultColumns, DefaultRows
	}
	return orDefault(w, DefaultColumns), orDefault(h, DefaultRows)
}

// WriteRaw writes s to the file.
func (s *Stdio) WriteRaw(str string) error {
	_, err := io.WriteString(s.out, str)
	return err
}

// Fixed is an Environment with a fixed answer to every question. It records
// everything written, which makes it the environment of choice for tests and
// for output piped into other programs.
type Fixed struct {
	Interactive bool
	Columns     int
	Rows        int
	// Out receives raw writes when set.
	Out io.Writer
	// Writes holds every string passed to WriteRaw.
	Writes []string
}

// IsInteractive returns f.Interactive.
func (f *Fixed) IsInteractive() bool { return f.Interactive }

// WindowSize returns the configured size, 80x40 for zero values.
func (f *Fixed) WindowSize() (int, int) {
	return orDefault(f.Columns, DefaultColumns), orDefault(f.Rows, DefaultRows)
}

// WriteRaw records s and forwards it to Out.
func (f *Fixed) WriteRaw(s string) error {
	f.Writes = append(f.Writes, s)
	if f.Out == nil {
		return nil
	}
	_, err := io.WriteString(f.Out, s)
	return err
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
