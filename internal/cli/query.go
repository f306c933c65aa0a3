package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/logqio/logq/internal/domain"
	"github.com/logqio/logq/internal/engine"
	"github.com/logqio/logq/internal/fetch"
	"github.com/logqio/logq/internal/output"
)

// startLayout is the accepted format of --start, interpreted as UTC.
const startLayout = "2006-01-02 15:04:05"

// QueryCmd searches configured sources for matching log entries
type QueryCmd struct {
	Server      []string `short:"s" required:"" help:"Source id to search (repeatable)"`
	Start       string   `required:"" help:"Start time, 'YYYY-MM-DD HH:MM:SS' (UTC)"`
	Entries     int      `short:"n" default:"${config_entries}" help:"Maximum number of entries to return"`
	MinSeverity string   `short:"m" default:"${config_min_severity}" help:"Minimum severity (DEBUG, INFO, WARNING, ERROR, CRITICAL)"`
}

// Run executes the query command
func (c *QueryCmd) Run(globals *Globals) error {
	start, err := time.ParseInLocation(startLayout, c.Start, time.UTC)
	if err != nil {
		return outputError(globals, "INVALID_START", fmt.Sprintf("invalid start time %q: expected 'YYYY-MM-DD HH:MM:SS'", c.Start))
	}

	minSeverity, ok := domain.ParseSeverity(c.MinSeverity)
	if !ok {
		return outputError(globals, "INVALID_SEVERITY", fmt.Sprintf("unknown severity %q", c.MinSeverity))
	}

	eng := globals.Engine()
	globals.Debug("query: servers=%v start=%s entries=%d min_severity=%s",
		c.Server, start.Format(startLayout), c.Entries, minSeverity)

	began := globals.Clock.Now()
	results, err := eng.Query(start, c.Entries, c.Server, minSeverity)
	if err != nil {
		return outputError(globals, queryErrorCode(err), err.Error())
	}

	matched := 0
	if globals.Format == "ndjson" {
		writer := output.NewNDJSONWriter(globals.Stdout)
		for {
			record, err := results.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return outputError(globals, "MATERIALIZE_FAILED", err.Error())
			}
			if err := writer.WriteRecord(record); err != nil {
				return err
			}
			matched++
		}
		if !globals.Quiet {
			return writer.WriteSummary(matched, globals.Clock.Since(began).String())
		}
		return nil
	}

	writer := output.NewTextWriter(globals.Stdout, globals.Styled())
	for {
		record, err := results.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return outputError(globals, "MATERIALIZE_FAILED", err.Error())
		}
		if err := writer.WriteRecord(record); err != nil {
			return err
		}
		matched++
	}
	if !globals.Quiet {
		return writer.WriteSummary(matched, globals.Clock.Since(began).String())
	}
	return nil
}

// queryErrorCode maps engine error types to stable output codes.
func queryErrorCode(err error) string {
	var (
		unconfigured *engine.UnconfiguredSourceError
		malformed    *engine.MalformedLineError
		unknownSev   *engine.UnknownSeverityError
		fetchErr     *fetch.Error
	)
	switch {
	case errors.As(err, &unconfigured):
		return "UNCONFIGURED_SOURCE"
	case errors.As(err, &malformed):
		return "MALFORMED_LINE"
	case errors.As(err, &unknownSev):
		return "UNKNOWN_SEVERITY"
	case errors.As(err, &fetchErr):
		return "FETCH_FAILED"
	default:
		return "QUERY_FAILED"
	}
}
