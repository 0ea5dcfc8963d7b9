// Package luaeval runs Lua source for the repline demo binary.
//
// The Evaluator supplies both caller-side behaviors the line editor needs: a
// completion predicate (a chunk that fails to parse only because input ended
// early is an unfinished logical line) and a line processor (compile, run,
// and render the results of a finished chunk).
package luaeval
