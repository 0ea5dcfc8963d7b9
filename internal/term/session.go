package term

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// Session errors.
var (
	// ErrNotTerminal indicates stdin is not attached to a terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrClosed indicates the session has already been closed.
	ErrClosed = errors.New("session closed")

	// ErrEndOfInput indicates the input stream ended. An interactive
	// session expects an always-available stream, so this is a failure,
	// not a normal terminator.
	ErrEndOfInput = errors.New("end of input stream")
)

// Session is the sole owner of the raw-mode terminal resource. All reads from
// and writes to the terminal go through it; at most one session may be open
// per process at a time.
type Session struct {
	in      io.Reader
	out     *bufio.Writer
	fd      int
	restore func() error

	closeOnce sync.Once
	closeErr  error
	closed    bool
}

// Open captures the current terminal attributes on stdin, enters raw mode,
// and returns a session over stdin/stdout. The captured attributes are
// restored by Close.
func Open() (*Session, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	restore, err := enterRawMode(fd)
	if err != nil {
		return nil, err
	}

	return &Session{
		in:      os.Stdin,
		out:     bufio.NewWriter(os.Stdout),
		fd:      fd,
		restore: restore,
	}, nil
}

// NewSession creates a session over arbitrary streams without touching
// terminal modes. Used for tests and non-tty callers.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{in: in, out: bufio.NewWriter(out), fd: -1}
}

// ReadByte blocks until one byte is available and returns it.
// End of stream is reported as ErrEndOfInput.
func (s *Session) ReadByte() (byte, error) {
	if s.closed {
		return 0, ErrClosed
	}

	var buf [1]byte
	for {
		n, err := s.in.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			if err == io.EOF {
				return 0, ErrEndOfInput
			}
			return 0, err
		}
	}
}

// Write buffers p for output.
func (s *Session) Write(p []byte) error {
	if s.closed {
		return ErrClosed
	}
	_, err := s.out.Write(p)
	return err
}

// WriteString buffers the string for output.
func (s *Session) WriteString(str string) error {
	if s.closed {
		return ErrClosed
	}
	_, err := s.out.WriteString(str)
	return err
}

// Flush pushes buffered output to the terminal.
func (s *Session) Flush() error {
	if s.closed {
		return ErrClosed
	}
	return s.out.Flush()
}

// Size returns the terminal dimensions in columns and rows.
func (s *Session) Size() (width, height int, err error) {
	if s.fd < 0 {
		return 0, 0, ErrNotTerminal
	}
	return term.GetSize(s.fd)
}

// Close flushes pending output and restores the originally captured terminal
// attributes. It is safe to call from any exit path; the restoration runs
// exactly once and later calls return the first result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = s.out.Flush()
		if s.restore != nil {
			if err := s.restore(); err != nil && s.closeErr == nil {
				s.closeErr = err
			}
		}
		s.closed = true
	})
	return s.closeErr
}
