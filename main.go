package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mcncl/jsoncanon/internal/config"
	"github.com/mcncl/jsoncanon/internal/dom"
	"github.com/mcncl/jsoncanon/internal/errors"
	"github.com/mcncl/jsoncanon/internal/parser"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Check       bool   `help:"Validate the input without writing canonical output." short:"c"`
	MaxDepth    int    `help:"Maximum container nesting allowed during serialization."`
	Config      string `help:"Path to a config file. Defaults to searching for .jsoncanon.yml." type:"path"`
	Debug       bool   `help:"Enable debug logging." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	cliParser := kong.Must(&CLI,
		kong.Name("jsoncanon"),
		kong.Description("A tool to canonicalize JSON documents"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsoncanon version %s\n", Version)
		return
	}

	cfg, err := config.LoadConfigWithCLI(CLI.Config, CLI.MaxDepth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	err = run(&Context{Debug: CLI.Debug, Config: cfg})
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsoncanon --help\n")

		os.Exit(1)
	}
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Parse JSON input into the document model
	root, err := parseInput()
	if err != nil {
		// Error is already wrapped by parseInput
		return err
	}

	if ctx.Debug {
		fmt.Fprintf(os.Stderr, "parsed a %s root\n", root.Kind())
	}

	// 2. Validation-only mode stops here
	if CLI.Check {
		return nil
	}

	// 3. Serialize the tree in canonical form
	text, err := dom.MarshalWithLimit(root, ctx.Config.Limits.MaxDepth)
	if err != nil {
		return err
	}

	// 4. Output the result
	out := string(text)
	if ctx.Config.Output.TrailingNewline {
		out += "\n"
	}
	return writeOutput(out)
}

// parseInput reads JSON from file or stdin
func parseInput() (dom.Value, error) {
	if CLI.Input != "" {
		// Parse from file
		return parser.ParseFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return parser.ParseString(string(jsonData))
}

// writeOutput writes canonical JSON to file or stdout
func writeOutput(text string) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(text), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Canonical JSON written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Print(text)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (dom.Value, error) {
	fmt.Fprintln(os.Stderr, "jsoncanon Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// End of input
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return parser.ParseString(jsonData)
}
