// Package input classifies raw terminal bytes for the REPL engine.
//
// The Machine is a three-state byte classifier. Plain bytes pass through for
// normal dispatch; an ESC byte starts escape-sequence accumulation. Only the
// minimal two-byte CSI form (ESC '[' <final>) is recognized; parameterized
// sequences are not distinguished and get consumed at the two-byte threshold.
// A bare ESC, or ESC followed by anything but '[', is discarded silently.
package input
