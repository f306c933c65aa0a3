package domain

import "strings"

// Severity classifies a log line's importance. Higher values are more severe.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityCritical
)

// severityNames is the canonical name for each level, indexed by rank.
var severityNames = [...]string{
	SeverityDebug:    "DEBUG",
	SeverityInfo:     "INFO",
	SeverityWarning:  "WARNING",
	SeverityError:    "ERROR",
	SeverityCritical: "CRITICAL",
}

// severityByName maps upper-cased level names to their severity. Built once
// at load so lookups never rely on reflection or linear scans.
var severityByName = func() map[string]Severity {
	m := make(map[string]Severity, len(severityNames))
	for sev, name := range severityNames {
		m[name] = Severity(sev)
	}
	return m
}()

// String returns the canonical upper-case name of the severity.
func (s Severity) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// Valid reports whether s is one of the defined levels.
func (s Severity) Valid() bool {
	return s >= SeverityDebug && s <= SeverityCritical
}

// ParseSeverity maps a level name to its Severity, case-insensitively.
// The second return value is false for unrecognized names.
func ParseSeverity(name string) (Severity, bool) {
	sev, ok := severityByName[strings.ToUpper(name)]
	return sev, ok
}

// Severities returns all defined levels in ascending rank order.
func Severities() []Severity {
	return []Severity{SeverityDebug, SeverityInfo, SeverityWarning, SeverityError, SeverityCritical}
}

// SeveritiesAtLeast returns the levels with rank >= min, ascending.
func SeveritiesAtLeast(min Severity) []Severity {
	all := Severities()
	for i, s := range all {
		if s >= min {
			return all[i:]
		}
	}
	return nil
}

// LogEntry is one parsed log line. Lines are identified by (Source, Line);
// line numbers are 1-based and stable for the lifetime of an engine.
type LogEntry struct {
	Timestamp int64 // epoch seconds, UTC
	Severity  Severity
	Content   string
	Source    string
	Line      int
}
