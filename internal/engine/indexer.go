package engine

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/logqio/logq/internal/domain"
)

// EnsureIndexed fetches and indexes the source if this engine instance has
// not done so yet; otherwise it is a no-op. Concurrent calls for the same
// unindexed source collapse into a single build, so the fetch and the scan
// run at most once per source per engine instance. A failed build leaves the
// source unindexed, so a later query may retry it.
//
// The caller must have validated that the source is configured.
func (e *Engine) EnsureIndexed(source string) error {
	if e.Indexed(source) {
		return nil
	}

	_, err, _ := e.group.Do(source, func() (any, error) {
		// Re-check: an earlier flight may have finished between the fast
		// path and entering this one.
		if e.Indexed(source) {
			return nil, nil
		}
		return nil, e.buildIndex(source)
	})
	return err
}

// buildIndex fetches the source's log file and scans it once, recording
// every line into the source index and the severity index.
func (e *Engine) buildIndex(source string) error {
	started := time.Now()

	local, err := e.fetcher.Fetch(source, e.remote[source])
	if err != nil {
		return err
	}

	f, err := os.Open(local)
	if err != nil {
		return fmt.Errorf("failed to open staged file for source %q: %w", source, err)
	}
	defer f.Close()

	// Build into private structures first; the shared indexes only see a
	// source that scanned cleanly end to end.
	idx := NewSourceIndex()
	type pending struct {
		sev  domain.Severity
		ts   int64
		line int
	}
	var entries []pending

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		parsed, err := e.parser.Parse(scanner.Text())
		if err != nil {
			return fmt.Errorf("indexing source %q line %d: %w", source, lineNumber, err)
		}
		idx.Insert(parsed.Timestamp, lineNumber)
		entries = append(entries, pending{sev: parsed.Severity, ts: parsed.Timestamp, line: lineNumber})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading staged file for source %q: %w", source, err)
	}

	e.mu.Lock()
	e.sources[source] = idx
	for _, p := range entries {
		e.severities.Insert(p.sev, p.ts, source, p.line)
	}
	e.local[source] = local
	e.mu.Unlock()

	e.log.Debug("indexed source",
		zap.String("source", source),
		zap.String("path", local),
		zap.Int("lines", lineNumber),
		zap.Duration("elapsed", time.Since(started)))
	return nil
}
