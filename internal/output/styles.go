package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	// Severity styles
	Debug    lipgloss.Style
	Info     lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Critical lipgloss.Style

	// Component styles
	Timestamp lipgloss.Style
	Source    lipgloss.Style

	// Status styles
	Header lipgloss.Style
	Muted  lipgloss.Style
}{
	Debug:    lipgloss.NewStyle().Foreground(lipgloss.Color("243")),                            // Gray
	Info:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),                             // Cyan
	Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),                            // Orange
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),                 // Red bold
	Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true).Underline(true), // Magenta bold underline

	Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")), // Gray
	Source:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // Blue

	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
}

// SeverityStyle returns the style for a severity name, matched
// case-insensitively. Unknown names render unstyled.
func SeverityStyle(severity string) lipgloss.Style {
	switch strings.ToUpper(severity) {
	case "DEBUG":
		return Styles.Debug
	case "INFO":
		return Styles.Info
	case "WARNING":
		return Styles.Warning
	case "ERROR":
		return Styles.Error
	case "CRITICAL":
		return Styles.Critical
	default:
		return lipgloss.NewStyle()
	}
}
