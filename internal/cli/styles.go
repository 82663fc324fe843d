// Package cli provides the command-line interface for jsoncstrip.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seanhalberthal/jsoncstrip/internal/types"
)

// Colour palette for error kinds and UI elements.
//
//nolint:misspell // lipgloss uses American spelling (Color) for its API
var (
	// Error kind colours
	lexicalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Bright red
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true) // Orange
	ioStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))            // Yellow

	// Status colours
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))             // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // Red

	// UI elements
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // Grey
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")) // White
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")) // Dark grey
	pathStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))  // Cyan
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("141")) // Purple
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Symbols for output.
const (
	checkMark = "✓"
	crossMark = "✗"
	bullet    = "•"
)

// kindStyle returns the appropriate style for an error kind.
func kindStyle(kind string) lipgloss.Style {
	switch kind {
	case types.KindIncompleteString, types.KindIncompleteComment, types.KindUnexpectedForwardSlash:
		return lexicalStyle
	case types.KindInvalidJSON:
		return invalidStyle
	case types.KindIO:
		return ioStyle
	default:
		return valueStyle
	}
}

// formatKind returns a styled error kind.
func formatKind(kind string) string {
	return kindStyle(kind).Render(strings.ReplaceAll(kind, "_", " "))
}

// formatPath returns a styled file path.
func formatPath(path string) string {
	return pathStyle.Render(path)
}

// formatPosition returns a styled path:line:column string.
func formatPosition(path string, line, col int) string {
	if line == 0 {
		return formatPath(path)
	}
	return formatPath(path) + positionStyle.Render(fmt.Sprintf(":%d:%d", line, col))
}

// formatSuccess returns a styled success message.
func formatSuccess(msg string) string {
	return successStyle.Render(checkMark+" ") + msg
}

// formatError returns a styled error message.
func formatError(msg string) string {
	return errorStyle.Render(crossMark+" ") + msg
}

// formatLabel returns a styled label (for key-value pairs).
func formatLabel(label string) string {
	return labelStyle.Render(label + ":")
}

// formatHeader returns a styled header.
func formatHeader(text string) string {
	return headerStyle.Render(text)
}

// formatSection returns a styled section header.
func formatSection(text string) string {
	return sectionStyle.Render(text)
}

// formatDivider returns a styled divider line.
func formatDivider(width int) string {
	return dividerStyle.Render(strings.Repeat("─", width))
}

// formatMuted returns muted/dimmed text.
func formatMuted(text string) string {
	return mutedStyle.Render(text)
}

// printStyledError prints a styled error to stderr.
func printStyledError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(os.Stderr, formatError(msg))
}

// printStatus writes the status report in human-readable form.
func printStatus(w io.Writer, status *types.StatusResponse) {
	_, _ = fmt.Fprintln(w, formatHeader("jsoncstrip "+status.Version))
	_, _ = fmt.Fprintln(w, formatDivider(40))

	_, _ = fmt.Fprintln(w, formatSection("Comments"))
	for _, c := range status.SupportedComments {
		_, _ = fmt.Fprintf(w, "  %s %s\n", bullet, valueStyle.Render(c))
	}

	cfg := status.Config
	source := cfg.Path
	if source == "" {
		source = "built-in defaults"
	}
	_, _ = fmt.Fprintln(w, formatSection("Config"))
	_, _ = fmt.Fprintf(w, "  %s %s\n", formatLabel("Source"), valueStyle.Render(source))
	_, _ = fmt.Fprintf(w, "  %s %s\n", formatLabel("Extensions"), valueStyle.Render(strings.Join(cfg.Extensions, ", ")))
	_, _ = fmt.Fprintf(w, "  %s %s\n", formatLabel("Excluded dirs"), valueStyle.Render(strings.Join(cfg.ExcludeDirs, ", ")))
	_, _ = fmt.Fprintf(w, "  %s %s\n", formatLabel("Concurrency"), valueStyle.Render(fmt.Sprint(cfg.Concurrency)))
	_, _ = fmt.Fprintf(w, "  %s %s\n", formatLabel("Validate"), valueStyle.Render(fmt.Sprint(cfg.Validate)))
}

// printCheckReport writes check results in human-readable form.
func printCheckReport(w io.Writer, result *types.CheckResult) {
	for _, fr := range result.Files {
		if fr.OK {
			_, _ = fmt.Fprintln(w, formatSuccess(formatPath(fr.Path)+" "+
				formatMuted(fmt.Sprintf("(%d bytes blanked)", fr.Blanked))))
			continue
		}
		_, _ = fmt.Fprintln(w, formatError(formatPosition(fr.Path, fr.Line, fr.Column)+" "+formatKind(fr.Kind)))
		_, _ = fmt.Fprintf(w, "    %s\n", formatMuted(fr.Error))
	}

	sum := result.Summary
	_, _ = fmt.Fprintln(w, formatDivider(40))
	_, _ = fmt.Fprintf(w, "%s %d  %s %d  %s %d\n",
		formatLabel("Files"), sum.FilesChecked,
		formatLabel("Failed"), sum.FilesFailed,
		formatLabel("Blanked bytes"), sum.TotalBlanked)

	switch {
	case sum.FilesChecked == 0:
		_, _ = fmt.Fprintln(w, formatMuted("No matching files found"))
	case sum.FilesFailed == 0:
		_, _ = fmt.Fprintln(w, formatSuccess("All files OK"))
	default:
		_, _ = fmt.Fprintln(w, formatError(fmt.Sprintf("%d of %d files failed", sum.FilesFailed, sum.FilesChecked)))
	}
}
