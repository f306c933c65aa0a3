package engine

import (
	"regexp"
	"time"

	"github.com/logqio/logq/internal/domain"
)

// timestampLayout is the fixed wire timestamp format, interpreted as UTC.
const timestampLayout = "2006-01-02 15:04:05"

// lineRE matches the [timestamp][severity]content wire format. The bracketed
// fields cannot themselves contain brackets; content is opaque.
var lineRE = regexp.MustCompile(`^\[([^\]]*)\]\[([^\]]*)\](.*)$`)

// RawLine holds the three syntactic fields of a wire-format line, with the
// severity name in its original casing.
type RawLine struct {
	TimestampText string
	SeverityText  string
	Content       string
}

// ParsedLine is a fully decoded wire-format line.
type ParsedLine struct {
	Raw       RawLine
	Timestamp int64 // epoch seconds
	Severity  domain.Severity
}

// Parser decodes raw wire-format log lines.
type Parser struct{}

// NewParser creates a line parser.
func NewParser() *Parser {
	return &Parser{}
}

// Split extracts the bracketed fields without decoding them. Returns a
// MalformedLineError if the line does not match the bracket structure.
func (p *Parser) Split(line string) (RawLine, error) {
	m := lineRE.FindStringSubmatch(line)
	if m == nil {
		return RawLine{}, &MalformedLineError{Text: line}
	}
	return RawLine{TimestampText: m[1], SeverityText: m[2], Content: m[3]}, nil
}

// Parse decodes a line into its timestamp, severity and content. The
// timestamp is converted to epoch seconds; the severity name is matched
// case-insensitively against the defined levels.
func (p *Parser) Parse(line string) (ParsedLine, error) {
	raw, err := p.Split(line)
	if err != nil {
		return ParsedLine{}, err
	}

	ts, err := time.ParseInLocation(timestampLayout, raw.TimestampText, time.UTC)
	if err != nil {
		return ParsedLine{}, &MalformedLineError{Text: line}
	}

	sev, ok := domain.ParseSeverity(raw.SeverityText)
	if !ok {
		return ParsedLine{}, &UnknownSeverityError{Name: raw.SeverityText}
	}

	return ParsedLine{Raw: raw, Timestamp: ts.Unix(), Severity: sev}, nil
}
