package util

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer buffers diagnostic/log text behind one abstraction, the way the
// teacher's util.Writer isolates all textual output from the compiler's
// stages. Spec.md §5 runs every pass on a single goroutine, so this is the
// single-threaded variant: no channel, no background listener goroutine,
// just a buffer flushed synchronously to its destination.
type Writer struct {
	sb  strings.Builder
	out io.Writer
}

// NewWriter returns a Writer that flushes to out. Passing nil defaults to
// os.Stderr, the diagnostics stream (stage timing, --verbose summaries).
func NewWriter(out io.Writer) *Writer {
	if out == nil {
		out = os.Stderr
	}
	return &Writer{out: out}
}

// Write appends a formatted line to the buffer.
func (w *Writer) Write(format string, args ...interface{}) {
	fmt.Fprintf(&w.sb, format, args...)
}

// WriteString appends s verbatim to the buffer.
func (w *Writer) WriteString(s string) { w.sb.WriteString(s) }

// Flush writes the buffered text to the destination and resets the buffer.
func (w *Writer) Flush() error {
	_, err := io.WriteString(w.out, w.sb.String())
	w.sb.Reset()
	return err
}

// ReadSource reads Latte source from opt.Src, or from stdin when Src is
// empty.
func ReadSource(opt Options) (string, error) {
	if opt.Src != "" {
		b, err := os.ReadFile(opt.Src)
		if err != nil {
			return "", fmt.Errorf("reading source: %w", err)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(b), nil
}

// WriteOutput writes the emitted IR text to opt.Out, or to stdout when Out
// is empty.
func WriteOutput(opt Options, ir string) error {
	if opt.Out == "" {
		_, err := io.WriteString(os.Stdout, ir)
		return err
	}
	f, err := os.OpenFile(opt.Out, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening output file: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := w.WriteString(ir); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return w.Flush()
}
