package cli

import (
	"errors"
	"fmt"

	"github.com/logqio/logq/internal/output"
)

// outputError normalizes error emission across commands, respecting the
// ndjson vs text formats so scripted callers always get machine-readable
// failures.
func outputError(globals *Globals, code, message string) error {
	if globals != nil && globals.Format == "ndjson" {
		if err := output.NewNDJSONWriter(globals.Stdout).WriteError(code, message); err != nil {
			fmt.Fprintf(globals.Stderr, "Error [%s]: %s (emit failed: %v)\n", code, message, err)
		}
	} else if globals != nil {
		fmt.Fprintf(globals.Stderr, "Error [%s]: %s\n", code, message)
	}
	return errors.New(message)
}
