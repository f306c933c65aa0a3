package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/logqio/logq/internal/engine"
)

// ValidateCmd checks a local log file against the wire format
type ValidateCmd struct {
	Path string `arg:"" help:"Path to a local log file" type:"existingfile"`
}

// Run executes the validate command. It reports the first violating line and
// fails, or confirms the whole file parses.
func (c *ValidateCmd) Run(globals *Globals) error {
	f, err := os.Open(c.Path)
	if err != nil {
		return outputError(globals, "OPEN_FAILED", err.Error())
	}
	defer f.Close()

	parser := engine.NewParser()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	var lastTS int64
	for scanner.Scan() {
		lineNumber++
		parsed, err := parser.Parse(scanner.Text())
		if err != nil {
			return outputError(globals, "INVALID_LINE",
				fmt.Sprintf("%s:%d: %v", c.Path, lineNumber, err))
		}
		if parsed.Timestamp < lastTS {
			globals.Debug("timestamp regression at %s:%d", c.Path, lineNumber)
		}
		lastTS = parsed.Timestamp
	}
	if err := scanner.Err(); err != nil {
		return outputError(globals, "READ_FAILED", err.Error())
	}

	if !globals.Quiet {
		fmt.Fprintf(globals.Stdout, "%s: %d lines OK\n", c.Path, lineNumber)
	}
	return nil
}
