package diag

import (
	"fmt"
	"io"
)

// WriterSink renders each Diagnostic to an io.Writer in the wire format
// from spec.md §6, one line per diagnostic. It is the plain equivalent of
// the source's direct write to stderr, just routed through an injected
// collaborator instead of a global stream.
type WriterSink struct {
	W io.Writer
}

// NewWriterSink wraps w. A nil w is replaced with io.Discard.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	return &WriterSink{W: w}
}

func (s *WriterSink) Report(d Diagnostic) {
	fmt.Fprintln(s.W, d.Message())
}
