package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	xmlite "github.com/wwxtp/xmlite-go"
	"github.com/wwxtp/xmlite-go/logging"
)

// RunFmt parses the named file and prints its canonical serialization:
// entities normalized, whitespace inside tags dropped, and childless
// elements self-closed.
func RunFmt(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: xmlite fmt [-v] <file>")
		return exitCommandError
	}
	name := fs.Arg(0)

	logger := newLogger(*verbose, stderr)

	data, err := os.ReadFile(name)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	n, err := xmlite.Parse(string(data))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", name, err)
		return exitInvalid
	}

	out := xmlite.Serialize(n)
	logger.Logf(logging.Debug, "%s: %d bytes in, %d bytes out", name, len(data), len(out))
	fmt.Fprintln(stdout, out)
	return exitSuccess
}
