package app

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dshills/repline/internal/repl"
)

// scriptTerm is an in-memory terminal for driving the run loop.
type scriptTerm struct {
	in     *strings.Reader
	out    bytes.Buffer
	closed int
}

func newScriptTerm(input string) *scriptTerm {
	return &scriptTerm{in: strings.NewReader(input)}
}

func (s *scriptTerm) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := s.in.Read(buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (s *scriptTerm) WriteString(str string) error {
	s.out.WriteString(str)
	return nil
}

func (s *scriptTerm) Flush() error { return nil }

func (s *scriptTerm) Close() error {
	s.closed++
	return nil
}

func newTestApp(t *testing.T, input string) (*Application, *scriptTerm) {
	t.Helper()
	a, err := New(Options{LogLevel: "error"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	term := newScriptTerm(input)
	if err := a.SetTerminal(term); err != nil {
		t.Fatalf("SetTerminal() error = %v", err)
	}
	return a, term
}

func TestRunEvaluatesAndQuits(t *testing.T) {
	a, term := newTestApp(t, "1 + 1\nexit\n")
	defer a.Shutdown()

	err := a.Run()
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}
	if !strings.Contains(term.out.String(), "2\r\n") {
		t.Errorf("output %q missing evaluation result", term.out.String())
	}
}

func TestRunMultiLineLuaChunk(t *testing.T) {
	a, term := newTestApp(t, "if true then\nx = 42\nend\nx\nquit\n")
	defer a.Shutdown()

	err := a.Run()
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}
	if !strings.Contains(term.out.String(), "42\r\n") {
		t.Errorf("output %q missing chunk result", term.out.String())
	}
}

func TestRunSurvivesEvaluationError(t *testing.T) {
	a, term := newTestApp(t, "nosuchfn()\n1 + 2\nexit\n")
	defer a.Shutdown()

	err := a.Run()
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}
	out := term.out.String()
	if !strings.Contains(out, "error:") {
		t.Errorf("output %q missing evaluation error", out)
	}
	if !strings.Contains(out, "3\r\n") {
		t.Errorf("output %q missing result after error", out)
	}
}

func TestRunReportsReadFailure(t *testing.T) {
	a, _ := newTestApp(t, "1 + 1\n")
	defer a.Shutdown()

	// Input ends without a quit command, so the loop hits EOF.
	err := a.Run()
	if err == nil || errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want read failure", err)
	}
	if !errors.Is(err, repl.ErrRead) {
		t.Errorf("Run() error = %v, want ErrRead in chain", err)
	}
}

func TestRunWithoutTerminal(t *testing.T) {
	a, err := New(Options{LogLevel: "error"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Shutdown()

	if err := a.Run(); !errors.Is(err, ErrNoTerminal) {
		t.Errorf("Run() error = %v, want ErrNoTerminal", err)
	}
}

func TestShutdownClosesTerminalOnce(t *testing.T) {
	a, term := newTestApp(t, "")
	a.Shutdown()
	a.Shutdown()
	if term.closed != 1 {
		t.Errorf("terminal closed %d times, want exactly 1", term.closed)
	}
}

func TestPromptOverride(t *testing.T) {
	a, err := New(Options{Prompt: "lua> ", LogLevel: "error"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer a.Shutdown()

	term := newScriptTerm("exit\n")
	if err := a.SetTerminal(term); err != nil {
		t.Fatalf("SetTerminal() error = %v", err)
	}
	if err := a.Run(); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}
	if !strings.Contains(term.out.String(), "lua> ") {
		t.Errorf("output %q missing overridden prompt", term.out.String())
	}
}

var _ io.Closer = (*scriptTerm)(nil)
