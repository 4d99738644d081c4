package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/seedgen/internal/app"
	"github.com/vk/seedgen/internal/seed"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments for the given generator. It returns
// a populated Config, a boolean indicating if the program should exit
// cleanly, or an ExitError. The argument count is not checked here; the App
// prints the usage hint when it does not match.
func Parse(gen *seed.Generator, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.", "generator", gen.Program)
	flagSet := flag.NewFlagSet(gen.Program, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
%s - %s

Usage:
  %s [options] %s
  %s [options] -seed-file FILE

Values are written verbatim, including a leading dash. Use -- before a first
value that is spelled like an option.

Options:
`, gen.Program, gen.Summary, gen.Program, strings.Join(gen.Params, " "), gen.Program)
		flagSet.PrintDefaults()
	}

	seedFileFlag := flagSet.String("seed-file", "", "Path to an HCL or JSON file holding one attribute per value.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	values := args
	if len(args) > 0 && isOption(flagSet, args[0]) {
		if err := flagSet.Parse(args); err != nil {
			if err == flag.ErrHelp {
				return nil, true, nil
			}
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		values = flagSet.Args()
	}
	slog.Debug("Arguments parsed successfully.", "values", len(values))

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Args:      values,
		SeedFile:  *seedFileFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// isOption reports whether arg is one of the flag set's options, the help
// flag, or the "--" terminator. Anything else is the first value, even when
// it starts with a dash.
func isOption(flagSet *flag.FlagSet, arg string) bool {
	if arg == "--" {
		return true
	}
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, _ = strings.Cut(name, "=")
	if name == "h" || name == "help" {
		return true
	}
	return flagSet.Lookup(name) != nil
}
