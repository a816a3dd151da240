package commands

import (
	"fmt"
	"io"
	"os"
)

// Sender represents the origin of a command. It carries the two logical
// output channels a command can write to: normal output and errors. Both
// methods support printf-style formatting; when called with no trailing
// arguments the format string is written verbatim, so callers can safely
// print untrusted text containing '%'.
type Sender interface {
	Print(format string, args ...any)
	PrintErr(format string, args ...any)
}

// WriterSender is a Sender backed by a pair of [io.Writer]. Each message is
// written as a single line.
type WriterSender struct {
	Out io.Writer
	Err io.Writer
}

// NewWriterSender returns a WriterSender writing normal output to out and
// errors to errOut.
func NewWriterSender(out, errOut io.Writer) *WriterSender {
	return &WriterSender{Out: out, Err: errOut}
}

// NewStdSender returns a WriterSender bound to [os.Stdout] and [os.Stderr].
func NewStdSender() *WriterSender {
	return NewWriterSender(os.Stdout, os.Stderr)
}

func (s *WriterSender) Print(format string, args ...any) {
	writeLine(s.Out, format, args...)
}

func (s *WriterSender) PrintErr(format string, args ...any) {
	writeLine(s.Err, format, args...)
}

func writeLine(w io.Writer, format string, args ...any) {
	if w == nil {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	_, _ = fmt.Fprintln(w, msg)
}
