package output

import (
	"fmt"
	"io"
)

// TextWriter renders query results as plain or severity-colored lines.
type TextWriter struct {
	w      io.Writer
	styled bool
}

// NewTextWriter creates a text writer. Styling should be disabled when the
// destination is not a terminal.
func NewTextWriter(w io.Writer, styled bool) *TextWriter {
	return &TextWriter{w: w, styled: styled}
}

// WriteRecord emits one formatted result record, colorized by severity when
// styling is enabled.
func (t *TextWriter) WriteRecord(record string) error {
	if !t.styled {
		_, err := fmt.Fprintln(t.w, record)
		return err
	}

	r, ok := ParseRecord(record)
	if !ok {
		_, err := fmt.Fprintln(t.w, record)
		return err
	}

	line := fmt.Sprintf("[%s][%s][%s]%s",
		Styles.Timestamp.Render(r.Timestamp),
		SeverityStyle(r.Severity).Render(r.Severity),
		Styles.Source.Render(r.Source),
		r.Content,
	)
	_, err := fmt.Fprintln(t.w, line)
	return err
}

// WriteSummary emits a muted query completion line.
func (t *TextWriter) WriteSummary(matched int, elapsed string) error {
	line := fmt.Sprintf("%d entries in %s", matched, elapsed)
	if t.styled {
		line = Styles.Muted.Render(line)
	}
	_, err := fmt.Fprintln(t.w, line)
	return err
}
