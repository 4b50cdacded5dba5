package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ColorSink renders diagnostics the same way WriterSink does, but with the
// "<file>:<line>:" prefix in red when the underlying writer is a terminal.
// Piped output (CI logs, `go test` captures) falls back to plain text, the
// same detection go-mix's REPL would need if it colorized a non-interactive
// stream. On Windows, the writer is wrapped with go-colorable so ANSI
// escapes render even on consoles that don't natively understand them.
type ColorSink struct {
	w       io.Writer
	colored bool
	prefix  *color.Color
}

// NewColorSink wraps w, auto-detecting whether it is a terminal. Pass
// os.Stderr for the common case; a non-tty w (a file, a bytes.Buffer, a
// pipe) disables coloring automatically.
func NewColorSink(w io.Writer) *ColorSink {
	colored := false
	out := w
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			colored = true
			out = colorable.NewColorable(f)
		}
	}
	prefix := color.New(color.FgRed, color.Bold)
	prefix.EnableColor()
	return &ColorSink{w: out, colored: colored, prefix: prefix}
}

func (s *ColorSink) Report(d Diagnostic) {
	if !s.colored {
		io.WriteString(s.w, d.Message()+"\n")
		return
	}
	prefix := fmt.Sprintf("%s:%d:", d.File, d.Line)
	s.prefix.Fprint(s.w, prefix)
	io.WriteString(s.w, strings.TrimPrefix(d.Message(), prefix)+"\n")
}
