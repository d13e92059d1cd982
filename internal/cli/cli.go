package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/vk/benchcheck/internal/app"
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

// patternList collects a repeatable flag. It stays nil until the flag is
// given, which keeps "no filter" apart from an explicit filter.
type patternList []string

func (p *patternList) String() string {
	return strings.Join(*p, ",")
}

func (p *patternList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("benchcheck", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
benchcheck - Validate benchmark filters and show what a run would execute.

Usage:
  benchcheck [options] [BENCHMARK_PATH]

Arguments:
  BENCHMARK_PATH
    Path to a benchmark .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var datasets, solvers patternList
	benchmarkFlag := flagSet.String("benchmark", "", "Path to the benchmark file or directory.")
	bFlag := flagSet.String("b", "", "Path to the benchmark file or directory (shorthand).")
	flagSet.Var(&datasets, "dataset", "Dataset pattern to include. Repeatable.")
	flagSet.Var(&datasets, "d", "Dataset pattern to include (shorthand).")
	flagSet.Var(&solvers, "solver", "Solver pattern to include. Repeatable.")
	flagSet.Var(&solvers, "s", "Solver pattern to include (shorthand).")
	seedFlag := flagSet.String("random-state", "", "Integer seed for the run's random generator. Empty uses the shared generator.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored output.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if *noColorFlag {
		color.NoColor = true
	}

	path := ""
	if *benchmarkFlag != "" {
		path = *benchmarkFlag
	} else if *bFlag != "" {
		path = *bFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Benchmark path determined.", "path", path)

	if path == "" {
		slog.Debug("No benchmark path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

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
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		BenchmarkPath:   path,
		DatasetPatterns: datasets,
		SolverPatterns:  solvers,
		RandomState:     *seedFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
