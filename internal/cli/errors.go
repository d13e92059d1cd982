package cli

import (
	"errors"
	"strings"

	"github.com/fatih/color"

	"github.com/vk/benchcheck/internal/manifest"
	"github.com/vk/benchcheck/internal/randstate"
	"github.com/vk/benchcheck/internal/validate"
)

var errorLabel = color.New(color.FgRed, color.Bold)

// FromError translates an application error into the message and exit code
// shown to the user. Bad filters and bad seeds are usage errors (code 2),
// everything else is a failed run (code 1).
func FromError(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	if patternErrs := patternErrors(err); len(patternErrs) > 0 {
		msgs := make([]string, 0, len(patternErrs))
		for _, perr := range patternErrs {
			msgs = append(msgs, errorLabel.Sprint("Error:")+" "+perr.Render())
		}
		return &ExitError{Code: 2, Message: strings.Join(msgs, "\n\n")}
	}

	var seedErr *randstate.InvalidSeedError
	if errors.As(err, &seedErr) {
		return &ExitError{Code: 2, Message: errorLabel.Sprint("Error:") + " invalid --random-state: " + seedErr.Error()}
	}

	var cfgErr *manifest.ConfigurationError
	if errors.As(err, &cfgErr) {
		return &ExitError{Code: 1, Message: errorLabel.Sprint("Error:") + " " + cfgErr.Error() +
			"\nMake sure you provide the path to a valid benchmark."}
	}

	return &ExitError{Code: 1, Message: errorLabel.Sprint("Error:") + " " + err.Error()}
}

// patternErrors collects every PatternError in err, including the members of
// a joined error.
func patternErrors(err error) []*validate.PatternError {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*validate.PatternError
		for _, e := range joined.Unwrap() {
			out = append(out, patternErrors(e)...)
		}
		return out
	}

	var perr *validate.PatternError
	if errors.As(err, &perr) {
		return []*validate.PatternError{perr}
	}
	return nil
}
