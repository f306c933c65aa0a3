package engine

import (
	"fmt"
	"io"
)

// Results is a lazy, finite cursor over formatted query results. It is not
// restartable: once drained it stays at io.EOF, and the query must be re-run
// to regenerate the records.
type Results struct {
	refs   []EntryRef
	local  map[string]string
	lines  LineReader
	parser *Parser
	pos    int
}

func newResults(refs []EntryRef, local map[string]string, lines LineReader, parser *Parser) *Results {
	return &Results{refs: refs, local: local, lines: lines, parser: parser}
}

func emptyResults() *Results {
	return &Results{}
}

// Next returns the next formatted record, or io.EOF when the results are
// exhausted. Records look like:
//
//	[2021-01-17 14:03:21][WARNING][server1] disk usage above 90%
//
// A space always separates the source field from the content. The severity
// name's original casing and the content (including any leading whitespace
// of its own) are preserved by re-reading and re-splitting the raw line.
func (r *Results) Next() (string, error) {
	if r.pos >= len(r.refs) {
		return "", io.EOF
	}
	ref := r.refs[r.pos]
	r.pos++

	raw, err := r.lines.ReadLine(r.local[ref.Source], ref.Line)
	if err != nil {
		return "", err
	}
	fields, err := r.parser.Split(raw)
	if err != nil {
		return "", fmt.Errorf("materializing %s:%d: %w", ref.Source, ref.Line, err)
	}
	return fmt.Sprintf("[%s][%s][%s] %s", fields.TimestampText, fields.SeverityText, ref.Source, fields.Content), nil
}

// Collect drains the cursor into a slice. Convenience for callers that want
// all records at once.
func (r *Results) Collect() ([]string, error) {
	var out []string
	for {
		record, err := r.Next()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, record)
	}
}

// Remaining returns how many records have not been consumed yet.
func (r *Results) Remaining() int {
	return len(r.refs) - r.pos
}
