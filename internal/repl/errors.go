package repl

import "errors"

// Engine errors. I/O failures abort the current ReadLine call and propagate;
// nothing is retried internally.
var (
	// ErrInit indicates the engine could not be constructed.
	ErrInit = errors.New("initialization failed")

	// ErrRead indicates a failure reading from the terminal.
	ErrRead = errors.New("read failed")

	// ErrWrite indicates a failure writing to the terminal.
	ErrWrite = errors.New("write failed")

	// ErrFlush indicates a failure flushing terminal output.
	ErrFlush = errors.New("flush failed")

	// ErrProcess indicates the line processor rejected a completed line.
	ErrProcess = errors.New("process line failed")
)
