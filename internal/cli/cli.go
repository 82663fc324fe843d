// Package cli provides the command-line interface for jsoncstrip.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/seanhalberthal/jsoncstrip/internal/stripper"
	"github.com/seanhalberthal/jsoncstrip/internal/types"
)

const errorFormat = "Error: %v\n"

// exitFunc is the function used to exit the program. Override in tests.
var exitFunc = os.Exit

// isTerminal reports whether fd is an interactive terminal. Override in tests.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Run executes the CLI with the given stripper and arguments.
func Run(s *stripper.Stripper, args []string) {
	if len(args) == 0 {
		printUsage()
		exitFunc(1)
		return
	}

	switch args[0] {
	case "status":
		runStatus(s, parseOutputFlags(args[1:]))
	case "strip":
		runStrip(s, parseStripFlags(args[1:]))
	case "check":
		if len(args) < 2 {
			_, _ = fmt.Fprintln(os.Stderr, "Error: check requires a path argument")
			exitFunc(1)
			return
		}
		runCheck(s, args[1], parseCheckFlags(args[2:], s.Config().Validate))
	case "help", "--help", "-h":
		printUsage()
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		exitFunc(1)
		return
	}
}

func printUsage() {
	fmt.Println(`jsoncstrip - blank out comments in JSON files

Usage:
  jsoncstrip <command>              Run in CLI mode (default)
  jsoncstrip --mcp                  Run as MCP server
  jsoncstrip --config <file> ...    Use a specific YAML config file

Commands:
  status [--json]                   Show version, comment forms and config
  strip [files...] [--write]        Strip comments to stdout (stdin if no files)
  check <path> [--recursive]        Check files for unterminated strings,
        [--no-validate]             comments and stray slashes`)
}

type outputOptions struct {
	JSON bool
}

func parseOutputFlags(args []string) outputOptions {
	var opts outputOptions
	for _, arg := range args {
		if arg == "--json" {
			opts.JSON = true
		}
	}
	return opts
}

type stripOptions struct {
	outputOptions
	Write bool
	Files []string
}

func parseStripFlags(args []string) stripOptions {
	var opts stripOptions
	for _, arg := range args {
		switch arg {
		case "--write", "-w":
			opts.Write = true
		case "--json":
			opts.JSON = true
		default:
			opts.Files = append(opts.Files, arg)
		}
	}
	return opts
}

type checkOptions struct {
	outputOptions
	Recursive bool
	Validate  bool
}

func parseCheckFlags(args []string, validate bool) checkOptions {
	opts := checkOptions{Validate: validate}
	for _, arg := range args {
		switch arg {
		case "--recursive", "-r":
			opts.Recursive = true
		case "--validate":
			opts.Validate = true
		case "--no-validate":
			opts.Validate = false
		case "--json":
			opts.JSON = true
		}
	}
	return opts
}

// styled reports whether human-readable output should be used.
func styled(opts outputOptions) bool {
	return !opts.JSON && isTerminal(os.Stdout.Fd())
}

// stdout returns a writer for styled output that also renders colour on
// legacy Windows consoles.
func stdout() io.Writer {
	return colorable.NewColorable(os.Stdout)
}

func runStatus(s *stripper.Stripper, opts outputOptions) {
	status := types.StatusResponse{
		Version:           types.Version,
		SupportedComments: types.SupportedComments,
		Config:            s.Config().Info(),
	}
	if styled(opts) {
		printStatus(stdout(), &status)
		return
	}
	printJSON(status)
}

func runStrip(s *stripper.Stripper, opts stripOptions) {
	if len(opts.Files) == 0 || (len(opts.Files) == 1 && opts.Files[0] == "-") {
		if opts.Write {
			_, _ = fmt.Fprintln(os.Stderr, "Error: --write requires file arguments")
			exitFunc(1)
			return
		}
		if _, err := s.StripTo(os.Stdout, os.Stdin); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, errorFormat, err)
			exitFunc(1)
		}
		return
	}

	if opts.Write {
		runStripWrite(s, opts)
		return
	}

	if opts.JSON {
		results := make([]types.StripResult, 0, len(opts.Files))
		for _, path := range opts.Files {
			result, err := s.StripFile(path)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, errorFormat, err)
				exitFunc(1)
				return
			}
			results = append(results, *result)
		}
		printJSON(results)
		return
	}

	for _, path := range opts.Files {
		if err := stripFileTo(s, os.Stdout, path); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, errorFormat, err)
			exitFunc(1)
			return
		}
	}
}

func stripFileTo(s *stripper.Stripper, w io.Writer, path string) error {
	// #nosec G304 -- path is a command-line argument
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	if _, err := s.StripTo(w, f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func runStripWrite(s *stripper.Stripper, opts stripOptions) {
	results := make([]types.StripResult, 0, len(opts.Files))
	failed := false
	for _, path := range opts.Files {
		stats, err := s.WriteFile(path)
		if err != nil {
			printStyledError("%v", err)
			failed = true
			continue
		}
		results = append(results, types.StripResult{
			Path:    path,
			Bytes:   stats.Bytes,
			Blanked: stats.Blanked,
		})
	}

	if styled(opts.outputOptions) {
		w := stdout()
		for _, r := range results {
			_, _ = fmt.Fprintln(w, formatSuccess(fmt.Sprintf("%s %s",
				formatPath(r.Path), formatMuted(fmt.Sprintf("(%d of %d bytes blanked)", r.Blanked, r.Bytes)))))
		}
	} else {
		printJSON(results)
	}

	if failed {
		exitFunc(1)
	}
}

func runCheck(s *stripper.Stripper, path string, opts checkOptions) {
	checkOpts := stripper.CheckOptions{
		Path:      path,
		Recursive: opts.Recursive,
		Validate:  opts.Validate,
	}

	var sp *progressSpinner
	if styled(opts.outputOptions) {
		sp = newProgressSpinner(os.Stderr)
		checkOpts.Progress = sp.update
		sp.start()
	}

	result, err := s.Check(context.Background(), checkOpts)
	if sp != nil {
		sp.stop()
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, errorFormat, err)
		exitFunc(1)
		return
	}

	if styled(opts.outputOptions) {
		printCheckReport(stdout(), result)
	} else {
		printJSON(result)
	}

	if result.Summary.FilesFailed > 0 {
		exitFunc(1)
	}
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		log.Fatal(err)
	}
}
