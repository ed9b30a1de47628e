// Package debug provides optional file-based logging for commands that own
// the terminal.
//
// When the BOXFLOW_DEBUG environment variable is set to a file path, Logger
// appends to that file. Otherwise, logging is a no-op.
package debug
