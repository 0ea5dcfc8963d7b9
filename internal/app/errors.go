package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the user asked to leave the session.
	ErrQuit = errors.New("quit requested")

	// ErrNoTerminal indicates Run was called before a terminal was attached.
	ErrNoTerminal = errors.New("no terminal attached")
)
