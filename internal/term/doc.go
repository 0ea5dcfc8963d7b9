// Package term owns the terminal session for the REPL engine.
//
// A Session switches the controlling terminal into raw input mode (canonical
// processing and echo off, one-byte reads, no timeout) and provides the byte
// read, buffered write, and flush primitives everything else renders through.
// The original terminal attributes are captured when the session opens and are
// restored exactly once when it closes, on every exit path.
//
// The termios mechanism is isolated behind per-platform files so the editing
// logic never touches OS specifics.
package term
