// Package commands implements the xmlite CLI subcommands.
package commands

import (
	"io"

	"github.com/wwxtp/xmlite-go/logging"
)

// Exit codes shared by all subcommands.
const (
	exitSuccess      = 0
	exitCommandError = 1
	exitInvalid      = 2
)

// newLogger returns a debug logger writing to w when verbose is set, and a
// no-op logger otherwise.
func newLogger(verbose bool, w io.Writer) logging.Logger {
	if verbose {
		return logging.NewStandardLogger(w)
	}
	return logging.Noop{}
}
