package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	xmlite "github.com/wwxtp/xmlite-go"
	"github.com/wwxtp/xmlite-go/document"
	"github.com/wwxtp/xmlite-go/logging"
)

// RunConvert parses the named file and emits its decoded form in another
// encoding. JSON and YAML outputs are text; CBOR output is raw bytes and
// is normally redirected to a file.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("f", "json", "output format: json, yaml, or cbor")
	verbose := fs.Bool("v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: xmlite convert [-f json|yaml|cbor] [-v] <file>")
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

	var out []byte
	switch *format {
	case "json":
		out, err = document.EncodeJSON(n)
		if err == nil {
			out = append(out, '\n')
		}
	case "yaml":
		out, err = document.EncodeYAML(n)
	case "cbor":
		out, err = document.EncodeCBOR(n)
	default:
		fmt.Fprintf(stderr, "Error: unknown format %q\n", *format)
		return exitCommandError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	logger.Logf(logging.Debug, "%s: converted to %s (%d bytes)", name, *format, len(out))
	if _, err := stdout.Write(out); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	return exitSuccess
}
