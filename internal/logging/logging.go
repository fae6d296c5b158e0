// Package logging centralizes the verbose-gated debug logger every
// package in this tree needs. reqtraq has no equivalent package of its
// own — it inlines `if Verbose { log.Print(...) }` at each call site
// (see linepipes.Verbose) — here the gate is pulled out once instead of
// repeated at each call site. The declaration processor (decl) is
// currently its only caller.
package logging

import "log"

// Verbose gates Debugf. Set from the CLI's -v/--verbose flag (see
// cmd/common.go), exactly like reqtraq's linepipes.Verbose / fVerbose.
var Verbose bool

// Debugf logs a formatted trace message when Verbose is set. Used for
// the "ignored with a trace log" cases spec §4.2 calls for when the
// declaration processor walks past a cursor kind it doesn't translate.
func Debugf(format string, args ...interface{}) {
	if !Verbose {
		return
	}
	log.Printf(format, args...)
}
