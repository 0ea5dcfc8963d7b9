package repl

import (
	"fmt"
	"strings"
)

// ANSI output sequences used by the redraw protocol.
const (
	eraseToEnd = "\x1b[K"
	cursorBack = "\x1b[%dD"
)

// redraw re-renders the current line: carriage return, prompt, full text,
// erase to end of line, then a cursor-back sequence when the cursor is not at
// the end of the text. Output is flushed so the screen never lags the model.
func (r *Repl) redraw() error {
	line := r.history.Current()

	var out strings.Builder
	out.WriteByte('\r')
	out.WriteString(r.cfg.Prompt)
	out.WriteString(line.Text())
	out.WriteString(eraseToEnd)
	if back := line.Len() - line.Cursor(); back > 0 {
		fmt.Fprintf(&out, cursorBack, back)
	}

	if err := r.term.WriteString(out.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := r.term.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	return nil
}
