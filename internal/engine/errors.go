package engine

import "fmt"

// MalformedLineError reports a line that does not match the
// [timestamp][severity]content wire format.
type MalformedLineError struct {
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed log line: %q", e.Text)
}

// UnknownSeverityError reports a severity name outside the defined levels.
type UnknownSeverityError struct {
	Name string
}

func (e *UnknownSeverityError) Error() string {
	return fmt.Sprintf("unknown severity name: %q", e.Name)
}

// UnconfiguredSourceError reports a query naming a source the engine was not
// constructed with. Raised before any indexing work for the query.
type UnconfiguredSourceError struct {
	Source string
}

func (e *UnconfiguredSourceError) Error() string {
	return fmt.Sprintf("source %q is not configured", e.Source)
}
