// Package style provides consistent terminal styling using Lipgloss.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Success style for positive outcomes
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")). // Green
		Bold(true)

	// Error style for failures
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")). // Red
		Bold(true)

	// Info style for informational messages
	Info = lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")) // Blue

	// Dim style for secondary information (page counters, hints)
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")) // Gray

	// Header style for table headings
	Header = lipgloss.NewStyle().
		Bold(true).
		Underline(true)

	// ErrorPrefix is the prefix for error messages
	ErrorPrefix = Error.Render("✗")

	// SuccessPrefix is the checkmark prefix for success messages
	SuccessPrefix = Success.Render("✓")
)
