package output

import (
	"encoding/json"
	"io"
)

// schemaVersion is bumped when the NDJSON output shape changes incompatibly.
const schemaVersion = 1

// NDJSONWriter writes query results and status messages as NDJSON
type NDJSONWriter struct {
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // keep log content unescaped
	return &NDJSONWriter{encoder: enc}
}

// EntryOutput is one query result in NDJSON form
type EntryOutput struct {
	Type          string `json:"type"` // Always "entry"
	SchemaVersion int    `json:"schemaVersion"`
	Timestamp     string `json:"timestamp"`
	Severity      string `json:"severity"`
	Source        string `json:"source"`
	Content       string `json:"content"`
	Record        string `json:"record"` // the full formatted record
}

// SummaryOutput reports query completion
type SummaryOutput struct {
	Type          string `json:"type"` // Always "summary"
	SchemaVersion int    `json:"schemaVersion"`
	Matched       int    `json:"matched"`
	Elapsed       string `json:"elapsed,omitempty"`
}

// ErrorOutput represents a failure
type ErrorOutput struct {
	Type          string `json:"type"` // Always "error"
	SchemaVersion int    `json:"schemaVersion"`
	Code          string `json:"code"`
	Message       string `json:"message"`
}

// InfoOutput represents an informational message
type InfoOutput struct {
	Type          string `json:"type"` // Always "info"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
}

// WriteRecord emits one formatted result record, carrying both the split
// fields and the verbatim record text.
func (w *NDJSONWriter) WriteRecord(record string) error {
	out := EntryOutput{
		Type:          "entry",
		SchemaVersion: schemaVersion,
		Record:        record,
	}
	if r, ok := ParseRecord(record); ok {
		out.Timestamp = r.Timestamp
		out.Severity = r.Severity
		out.Source = r.Source
		out.Content = r.Content
	}
	return w.encoder.Encode(out)
}

// WriteSummary emits a query completion summary
func (w *NDJSONWriter) WriteSummary(matched int, elapsed string) error {
	return w.encoder.Encode(SummaryOutput{
		Type:          "summary",
		SchemaVersion: schemaVersion,
		Matched:       matched,
		Elapsed:       elapsed,
	})
}

// WriteError emits a structured error
func (w *NDJSONWriter) WriteError(code, message string) error {
	return w.encoder.Encode(ErrorOutput{
		Type:          "error",
		SchemaVersion: schemaVersion,
		Code:          code,
		Message:       message,
	})
}

// WriteInfo emits an informational message
func (w *NDJSONWriter) WriteInfo(message string) error {
	return w.encoder.Encode(InfoOutput{
		Type:          "info",
		SchemaVersion: schemaVersion,
		Message:       message,
	})
}
