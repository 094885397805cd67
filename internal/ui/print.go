package ui

import (
	"fmt"
	"os"
)

var verbose bool

// SetVerbose turns Debug output on or off
func SetVerbose(v bool) {
	verbose = v
}

// Debug prints a dimmed diagnostic message to stderr when verbose output is on
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Fprintln(os.Stderr, DimStyle.Render("· "+msg))
}

// Debugf prints a formatted diagnostic message when verbose output is on
func Debugf(format string, args ...interface{}) {
	Debug(fmt.Sprintf(format, args...))
}

// Success prints a success message with a checkmark icon
func Success(msg string) {
	fmt.Fprintln(os.Stdout, SuccessStyle.Render("✓ "+msg))
}

// Successf prints a formatted success message with a checkmark icon
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Error prints an error message with an X icon
func Error(msg string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("✗ "+msg))
}

// Warning prints a warning message with a warning icon
func Warning(msg string) {
	fmt.Fprintln(os.Stdout, WarningStyle.Render("⚠ "+msg))
}

// Warningf prints a formatted warning message with a warning icon
func Warningf(format string, args ...interface{}) {
	Warning(fmt.Sprintf(format, args...))
}

// Info prints an info message with an info icon
func Info(msg string) {
	fmt.Fprintln(os.Stdout, InfoStyle.Render("ℹ "+msg))
}

// Infof prints a formatted info message with an info icon
func Infof(format string, args ...interface{}) {
	Info(fmt.Sprintf(format, args...))
}

// Printf prints a formatted plain message (no styling)
func Printf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stdout, format, args...)
}

// Dim prints dimmed/muted text
func Dim(text string) string {
	return DimStyle.Render(text)
}

// Bold prints bold text
func Bold(text string) string {
	return BoldStyle.Render(text)
}

// Highlight prints highlighted text (primary color, bold)
func Highlight(text string) string {
	return HighlightStyle.Render(text)
}

// Muted prints muted text
func Muted(text string) string {
	return MutedStyle.Render(text)
}
