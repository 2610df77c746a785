package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	xmlite "github.com/wwxtp/xmlite-go"
	"github.com/wwxtp/xmlite-go/logging"
)

// RunCheck parses each named file and reports syntax errors with byte
// offsets. It returns exitInvalid when any file fails to parse.
func RunCheck(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(stderr, "Error: no files specified")
		fmt.Fprintln(stderr, "Usage: xmlite check [-v] <file>...")
		return exitCommandError
	}

	logger := newLogger(*verbose, stderr)

	invalid := false
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}

		if _, err := xmlite.Parse(string(data)); err != nil {
			fmt.Fprintf(stdout, "%s: %v\n", name, err)
			invalid = true
			continue
		}
		logger.Logf(logging.Debug, "%s: ok", name)
	}

	if invalid {
		return exitInvalid
	}
	return exitSuccess
}
