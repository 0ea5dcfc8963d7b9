// Package editor provides the editable line buffer and line history for the
// REPL engine.
//
// A Line is a single logical line of text with a cursor offset. The cursor is
// always within [0, len(text)]; every mutating operation re-establishes that
// invariant by construction. A Line may contain embedded newline characters
// when the caller's completion predicate defers line completion.
//
// A History is an append-only sequence of Lines with a current index. Entries
// are never removed during a session; navigating forward past the newest entry
// appends a fresh empty Line, mirroring how most REPLs treat the end of
// history.
package editor
