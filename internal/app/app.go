// Package app wires the repline demo binary: configuration, logging, the Lua
// evaluator, the terminal session, and the line editor engine.
package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dshills/repline/internal/config"
	"github.com/dshills/repline/internal/luaeval"
	"github.com/dshills/repline/internal/repl"
)

// Options configure the application at startup.
type Options struct {
	// ConfigPath is the TOML config file; empty skips file loading.
	ConfigPath string
	// Prompt overrides the configured prompt when non-empty.
	Prompt string
	// LogLevel overrides the configured log level when non-empty.
	LogLevel string
}

// Application owns the demo REPL's components and run loop.
type Application struct {
	cfg    config.Config
	log    *Logger
	eval   *luaeval.Evaluator
	term   repl.Terminal
	engine *repl.Repl

	shutdownOnce sync.Once
}

// New loads configuration and creates the application. A terminal must be
// attached with SetTerminal before Run.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Prompt != "" {
		cfg.Prompt = opts.Prompt
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	return &Application{
		cfg:  cfg,
		log:  NewLogger(ParseLogLevel(cfg.LogLevel), nil),
		eval: luaeval.New(),
	}, nil
}

// Logger returns the application's logger.
func (a *Application) Logger() *Logger {
	return a.log
}

// SetTerminal attaches the terminal and builds the line editor engine over it,
// with Lua chunk completeness as the completion predicate and Lua evaluation
// as the line processor.
func (a *Application) SetTerminal(t repl.Terminal) error {
	engine, err := repl.New(t, repl.Config{
		Prompt:   a.cfg.Prompt,
		Banner:   a.cfg.Banner,
		Welcome:  a.cfg.Welcome,
		Complete: a.eval.Complete,
		Process:  a.processLine,
	})
	if err != nil {
		return err
	}

	a.term = t
	a.engine = engine
	return nil
}

// processLine is the engine's line processor: quit commands short-circuit,
// everything else goes to the Lua evaluator.
func (a *Application) processLine(text string) (string, error) {
	switch strings.TrimSpace(text) {
	case "exit", "quit":
		return "", ErrQuit
	}
	return a.eval.Eval(text)
}

// Run drives the prompt/read/print loop until the user quits or the terminal
// fails. Evaluation errors are printed and the loop continues; I/O errors
// terminate the session.
func (a *Application) Run() error {
	if a.engine == nil {
		return ErrNoTerminal
	}

	if err := a.engine.PrintWelcome(); err != nil {
		return err
	}

	for {
		if err := a.engine.PrintPrompt(); err != nil {
			return err
		}

		out, err := a.engine.ReadLine()
		switch {
		case errors.Is(err, ErrQuit):
			return ErrQuit

		case errors.Is(err, repl.ErrProcess):
			if werr := a.printLine(fmt.Sprintf("error: %v", err)); werr != nil {
				return werr
			}
			a.log.Debug("line processing failed: %v", err)

		case err != nil:
			a.log.Error("session aborted: %v", err)
			return err

		default:
			if out != "" {
				if werr := a.printLine(out); werr != nil {
					return werr
				}
			}
		}
	}
}

// printLine writes a result line through the terminal's output sink.
func (a *Application) printLine(s string) error {
	if err := a.term.WriteString(s + "\r\n"); err != nil {
		return err
	}
	return a.term.Flush()
}

// Shutdown releases the evaluator and closes the terminal (restoring its
// mode) exactly once. Safe to call from any exit path.
func (a *Application) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.eval.Close()
		if closer, ok := a.term.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				a.log.Error("terminal close failed: %v", err)
			}
		}
	})
}
