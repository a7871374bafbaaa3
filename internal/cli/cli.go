package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/sdvars/internal/app"
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

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("sdvars", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
sdvars - decode, validate and re-encode System Dynamics variable definitions.

Usage:
  sdvars [options] [PATH]

Arguments:
  PATH
    Path to a single .xml, .xmile, .stmx or .hcl file, or a directory of them.

Options:
`)
		flagSet.PrintDefaults()
	}

	pathFlag := flagSet.String("path", "", "Path to the definition file or directory.")
	pFlag := flagSet.String("p", "", "Path to the definition file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of files parsed concurrently. 0 means no limit.")
	emitFlag := flagSet.String("emit", "", "Re-encode decoded definitions to stdout. Options: 'xml' or 'hcl'.")
	evalFlag := flagSet.String("eval", "", "Evaluate graphical functions, e.g. 'effect=0.5,lookup=3'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	switch {
	case *pathFlag != "":
		path = *pathFlag
	case *pFlag != "":
		path = *pFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	}
	slog.Debug("Definition path determined.", "path", path)

	if path == "" {
		slog.Debug("No path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if *workersFlag < 0 {
		return nil, false, usageError("invalid workers: must not be negative")
	}

	evals, err := parseEvaluations(*evalFlag)
	if err != nil {
		return nil, false, usageError("invalid eval: %s", err)
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Path:        path,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		WorkerCount: *workersFlag,
		Emit:        strings.ToLower(*emitFlag),
		Evaluations: evals,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// parseEvaluations reads a comma-separated list of name=x pairs.
func parseEvaluations(text string) ([]app.Evaluation, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var out []app.Evaluation
	for _, item := range strings.Split(text, ",") {
		name, xText, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%q is not name=x", item)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xText), 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", item, err)
		}
		out = append(out, app.Evaluation{Name: strings.TrimSpace(name), X: x})
	}
	return out, nil
}
