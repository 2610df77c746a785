// xmlite is a CLI tool for checking, formatting, and converting the XML
// subset handled by the xmlite library.
package main

import (
	"fmt"
	"os"

	"github.com/wwxtp/xmlite-go/cmd/xmlite/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "check":
		exitCode = commands.RunCheck(args, os.Stdout, os.Stderr)
	case "fmt":
		exitCode = commands.RunFmt(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "--version":
		fmt.Println("xmlite version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`Usage: xmlite <command> [options] [files...]

Commands:
  check     Parse files and report syntax errors with byte offsets
  fmt       Parse a file and print its canonical serialization
  convert   Parse a file and emit it as JSON, YAML, or CBOR
  help      Show this help
  version   Show version

Run 'xmlite <command> -h' for command options.`)
}
