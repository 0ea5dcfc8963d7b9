package repl

import (
	"fmt"

	"github.com/dshills/repline/internal/editor"
	"github.com/dshills/repline/internal/input"
)

// Control bytes handled by normal dispatch.
const (
	ctrlA     = 0x01
	ctrlE     = 0x05
	backspace = 0x7F
)

// Terminal is the byte channel the engine reads from and renders through.
// *term.Session satisfies it; tests supply an in-memory implementation.
type Terminal interface {
	ReadByte() (byte, error)
	WriteString(s string) error
	Flush() error
}

// CompleteFunc decides whether accumulated text is a finished logical line.
type CompleteFunc func(text string) bool

// ProcessFunc transforms a completed logical line into the value returned to
// the caller.
type ProcessFunc func(text string) (string, error)

// Config carries the caller-supplied behavior and display strings.
type Config struct {
	// Prompt is printed before the editable line on every redraw.
	Prompt string
	// Banner is printed once by PrintWelcome.
	Banner string
	// Welcome is printed after the banner by PrintWelcome.
	Welcome string
	// Complete decides when a logical line is finished.
	Complete CompleteFunc
	// Process transforms each finished line.
	Process ProcessFunc
}

// Repl is the edit/redraw engine. It owns the line history and input state
// machine and is the only reader of its Terminal. Repl is single-threaded:
// all methods must be called from one goroutine.
type Repl struct {
	term    Terminal
	cfg     Config
	history *editor.History
	machine *input.Machine
}

// New creates an engine over the given terminal.
func New(t Terminal, cfg Config) (*Repl, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil terminal", ErrInit)
	}
	if cfg.Complete == nil {
		return nil, fmt.Errorf("%w: nil completion predicate", ErrInit)
	}
	if cfg.Process == nil {
		return nil, fmt.Errorf("%w: nil line processor", ErrInit)
	}

	return &Repl{
		term:    t,
		cfg:     cfg,
		history: editor.NewHistory(),
		machine: input.NewMachine(),
	}, nil
}

// History returns the engine's line history.
func (r *Repl) History() *editor.History {
	return r.history
}

// PrintWelcome writes the banner and welcome message through the terminal.
func (r *Repl) PrintWelcome() error {
	if err := r.term.WriteString(r.cfg.Banner + "\r\n" + r.cfg.Welcome + "\r\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := r.term.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	return nil
}

// PrintPrompt writes the prompt for a fresh line.
func (r *Repl) PrintPrompt() error {
	if err := r.term.WriteString(r.cfg.Prompt); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := r.term.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFlush, err)
	}
	return nil
}

// ReadLine blocks until the completion predicate accepts the current line at
// a newline keypress, then returns the processed text. A fresh history entry
// becomes current before ReadLine returns, whether processing succeeded or
// not. I/O errors abort immediately.
func (r *Repl) ReadLine() (string, error) {
	if err := r.term.Flush(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrFlush, err)
	}

	for {
		b, err := r.term.ReadByte()
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRead, err)
		}

		action, arg := r.machine.Feed(b)
		switch action {
		case input.ActionEscape:
			if err := r.handleEscape(arg); err != nil {
				return "", err
			}

		case input.ActionDispatch:
			done, err := r.handleKey(arg)
			if err != nil {
				return "", err
			}
			if done {
				text := r.history.Current().Text()
				out, perr := r.cfg.Process(text)
				r.history.Append()
				if perr != nil {
					return "", fmt.Errorf("%w: %w", ErrProcess, perr)
				}
				return out, nil
			}
		}
	}
}

// handleKey dispatches a plain byte against the current line. It returns true
// when the line is complete and ReadLine should emit it.
func (r *Repl) handleKey(b byte) (bool, error) {
	line := r.history.Current()

	switch {
	case b == '\n' || b == '\r':
		if r.cfg.Complete(line.Text()) {
			if err := r.term.WriteString("\r\n"); err != nil {
				return false, fmt.Errorf("%w: %w", ErrWrite, err)
			}
			return true, nil
		}
		// Incomplete: keep the newline and continue reading.
		line.Insert('\n')
		return false, nil

	case b == backspace:
		line.Backspace()
		return false, r.redraw()

	case b == ctrlA:
		line.MoveToStart()
		return false, r.redraw()

	case b == ctrlE:
		line.MoveToEnd()
		return false, r.redraw()

	case b < 0x20:
		// Unhandled control byte.
		return false, nil

	default:
		line.Insert(rune(b))
		return false, r.redraw()
	}
}

// handleEscape dispatches the final byte of a recognized two-byte CSI.
// Unrecognized final bytes are ignored.
func (r *Repl) handleEscape(final byte) error {
	switch final {
	case 'A': // up: recall previous history entry
		if r.history.Prev() {
			return r.redraw()
		}
	case 'B': // down: next entry, or a fresh line past the newest
		r.history.Next()
		return r.redraw()
	case 'C': // right
		r.history.Current().MoveRight()
		return r.redraw()
	case 'D': // left
		r.history.Current().MoveLeft()
		return r.redraw()
	}
	return nil
}
