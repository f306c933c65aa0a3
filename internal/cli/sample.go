package cli

import (
	"fmt"
	"time"

	"github.com/logqio/logq/internal/fetch"
)

// SampleCmd generates a deterministic sample log file, mainly for demos and
// for trying out the query command without real logs.
type SampleCmd struct {
	Path  string `arg:"" help:"Output path for the generated log file"`
	Start string `default:"2021-01-17 12:00:00" help:"First timestamp, 'YYYY-MM-DD HH:MM:SS' (UTC)"`
	Lines int    `default:"1000" help:"Number of lines to generate"`
	Seed  int64  `default:"0" help:"Random seed; the same seed reproduces the same file"`
}

// Run executes the sample command
func (c *SampleCmd) Run(globals *Globals) error {
	start, err := time.ParseInLocation(startLayout, c.Start, time.UTC)
	if err != nil {
		return outputError(globals, "INVALID_START", fmt.Sprintf("invalid start time %q: expected 'YYYY-MM-DD HH:MM:SS'", c.Start))
	}
	if c.Lines < 0 {
		return outputError(globals, "INVALID_LINES", "line count must not be negative")
	}

	if err := fetch.GenerateSample(c.Path, start, c.Lines, c.Seed); err != nil {
		return outputError(globals, "GENERATE_FAILED", err.Error())
	}
	if !globals.Quiet {
		fmt.Fprintf(globals.Stdout, "wrote %d lines to %s\n", c.Lines, c.Path)
	}
	return nil
}
