package attempt

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// colorEnabled reports whether w is a terminal that can show colour
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// configureStyling turns pterm styling off when stdout is not a colour terminal
func configureStyling(w io.Writer) {
	if colorEnabled(w) {
		pterm.EnableStyling()
		return
	}
	pterm.DisableStyling()
}

// render applies style only when w shows colour
func render(w io.Writer, style lipgloss.Style, s string) string {
	if !colorEnabled(w) {
		return s
	}
	return style.Render(s)
}

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	if !colorEnabled(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}

// RenderError formats a command error for w
func RenderError(w io.Writer, err error) string {
	return render(w, errorStyle, fmt.Sprintf("Error: %v", err))
}
