// Package repl implements the edit/redraw engine: the blocking read loop that
// turns raw terminal bytes into completed logical lines.
//
// The engine reads one byte at a time from its Terminal, classifies it through
// the input state machine, mutates the current line buffer or the history
// index, and re-renders the line after every mutation. A logical line is
// complete when the caller's completion predicate accepts the accumulated text
// at a newline keypress; until then, newlines are inserted literally to
// support multi-line continuation.
//
// # Rendering
//
// Each redraw emits a carriage return, the prompt, the full line text, and an
// erase-to-end-of-line sequence, then steps the terminal cursor back to the
// logical cursor position and flushes. Re-rendering the whole line after every
// handled byte keeps the visible terminal consistent with internal state even
// across read hiccups.
package repl
