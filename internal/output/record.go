// Package output renders query results as plain text, styled text, or NDJSON.
package output

import "regexp"

// recordRE matches the formatted result records produced by the engine:
// [timestamp][severity][source]content
var recordRE = regexp.MustCompile(`^\[([^\]]*)\]\[([^\]]*)\]\[([^\]]*)\](.*)$`)

// Record is one formatted query result broken into its displayed fields.
type Record struct {
	Timestamp string
	Severity  string
	Source    string
	Content   string
}

// ParseRecord splits a formatted result record into its fields. The second
// return value is false if the string is not a well-formed record.
func ParseRecord(s string) (Record, bool) {
	m := recordRE.FindStringSubmatch(s)
	if m == nil {
		return Record{}, false
	}
	return Record{Timestamp: m[1], Severity: m[2], Source: m[3], Content: m[4]}, true
}
