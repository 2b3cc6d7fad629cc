package controller

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// ANSI palette indexes.
const (
	colorRed     = lipgloss.Color("1")
	colorGreen   = lipgloss.Color("2")
	colorCyan    = lipgloss.Color("6")
	colorDimGray = lipgloss.Color("8")
)

// StyledUI is a SimpleUI that colors its output with lipgloss. It is meant
// for interactive terminals.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI. The color profile is detected from the
// command's output writer, so redirected output stays plain.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	renderer := lipgloss.NewRenderer(cmd.OutOrStdout())

	return &StyledUI{
		SimpleUI: &SimpleUI{cmd: cmd, palette: colorPalette(renderer)},
	}
}

func colorPalette(renderer *lipgloss.Renderer) palette {
	return palette{
		success: renderer.NewStyle().Foreground(colorGreen).Bold(true).Render,
		failure: renderer.NewStyle().Foreground(colorRed).Render,
		muted:   renderer.NewStyle().Foreground(colorDimGray).Faint(true).Render,
		added:   renderer.NewStyle().Foreground(colorGreen).Render,
		removed: renderer.NewStyle().Foreground(colorRed).Render,
		hunk:    renderer.NewStyle().Foreground(colorCyan).Render,
	}
}
