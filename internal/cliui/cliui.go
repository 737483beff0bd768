// Package cliui renders styled output for cmd/simctl, the same role
// stormlightlabs-baseball's internal/echo plays for its CLI.
package cliui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#013369")).
			Padding(0, 1).
			Bold(true)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#02BA84"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#013369"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
)

// Header prints a styled section header.
func Header(message string) {
	fmt.Println(headerStyle.Render(" " + message + " "))
}

// Success prints a styled success line.
func Success(message string) {
	fmt.Println(successStyle.Render(message))
}

// Successf prints a formatted, styled success line.
func Successf(format string, args ...interface{}) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// Error prints a styled error line.
func Error(message string) {
	fmt.Println(errorStyle.Render(message))
}

// Errorf prints a formatted, styled error line.
func Errorf(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render(fmt.Sprintf(format, args...)))
}

// Info prints a styled info line.
func Info(message string) {
	fmt.Println(infoStyle.Render(message))
}

// Infof prints a formatted, styled info line.
func Infof(format string, args ...interface{}) {
	fmt.Println(infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Dim prints a de-emphasized line, used for per-day/per-game detail.
func Dim(message string) {
	fmt.Println(dimStyle.Render(message))
}

// Dimf prints a formatted, de-emphasized line.
func Dimf(format string, args ...interface{}) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, args...)))
}
