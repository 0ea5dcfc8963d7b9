package luaeval

import (
	"errors"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// ErrClosed indicates the evaluator's Lua state has been released.
var ErrClosed = errors.New("evaluator closed")

// Evaluator wraps a Lua state for interactive evaluation.
//
// gopher-lua's LState is not goroutine-safe; the mutex serializes access so
// an Evaluator can be shared, though the REPL itself is single-threaded.
type Evaluator struct {
	mu sync.Mutex
	L  *lua.LState

	closed bool
}

// Option configures an Evaluator.
type Option func(*lua.Options)

// WithRegistrySize sets the initial Lua registry size.
func WithRegistrySize(size int) Option {
	return func(o *lua.Options) {
		o.RegistrySize = size
	}
}

// WithCallStackSize sets the Lua call stack size.
func WithCallStackSize(size int) Option {
	return func(o *lua.Options) {
		o.CallStackSize = size
	}
}

// New creates an evaluator with the standard libraries opened.
func New(opts ...Option) *Evaluator {
	var lopts lua.Options
	for _, opt := range opts {
		opt(&lopts)
	}
	return &Evaluator{L: lua.NewState(lopts)}
}

// Close releases the Lua state. Safe to call more than once.
func (e *Evaluator) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.closed {
		e.L.Close()
		e.closed = true
	}
}

// Complete reports whether src parses as a finished chunk. A parse error at
// end of input means the user is mid-construct (unclosed block, trailing
// operator) and the line editor should keep reading; any other parse error is
// "complete" so Eval can surface it.
func (e *Evaluator) Complete(src string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return true
	}

	_, rerr := e.L.LoadString("return " + src)
	if rerr == nil {
		return true
	}
	_, serr := e.L.LoadString(src)
	if serr == nil {
		return true
	}
	return !incompleteChunk(rerr) && !incompleteChunk(serr)
}

// Eval compiles and runs src, returning its results joined by tabs.
// Expressions are tried first ("return " + src) so they print their values.
func (e *Evaluator) Eval(src string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return "", ErrClosed
	}

	fn, err := e.L.LoadString("return " + src)
	if err != nil {
		fn, err = e.L.LoadString(src)
		if err != nil {
			return "", err
		}
	}

	base := e.L.GetTop()
	e.L.Push(fn)
	if err := e.L.PCall(0, lua.MultRet, nil); err != nil {
		e.L.SetTop(base)
		return "", err
	}

	nret := e.L.GetTop() - base
	parts := make([]string, 0, nret)
	for i := base + 1; i <= base+nret; i++ {
		parts = append(parts, e.L.Get(i).String())
	}
	e.L.SetTop(base)

	return strings.Join(parts, "\t"), nil
}

// incompleteChunk reports whether a LoadString error marks input that ended
// mid-construct. The parser positions such errors at the end-of-file token.
func incompleteChunk(err error) bool {
	if apiErr, ok := err.(*lua.ApiError); ok {
		if parseErr, ok := apiErr.Cause.(*parse.Error); ok {
			return parseErr.Pos.Line == parse.EOF
		}
	}
	return false
}
