package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"github.com/DaanHessen/healthcare-chatbot/internal/util"
)

const aboutWrap = 72

// RenderAbout renders the about page for cfg. style is a glamour standard
// style name; empty picks one from the terminal.
func RenderAbout(cfg util.Config, style string) (string, error) {
	theme, p := resolveTheme(cfg.Theme)

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(aboutWrap)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", errors.Wrap(err, "create markdown renderer")
	}
	body, err := renderer.Render(aboutMarkdown(cfg))
	if err != nil {
		return "", errors.Wrap(err, "render about page")
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1).
		Render("Healthcare Chatbot")
	footer := lipgloss.NewStyle().Foreground(p.Muted).Render("theme: " + theme + " (" + strings.Join(ThemeNames(), ", ") + ")")
	return lipgloss.JoinVertical(lipgloss.Left, title, strings.TrimRight(body, "\n"), footer) + "\n", nil
}

func aboutMarkdown(cfg util.Config) string {
	var b strings.Builder
	b.WriteString("## Status\n\n")
	b.WriteString("Only the startup reporter exists. Conversation handling is not built yet.\n\n")
	b.WriteString("## Runtime\n\n")
	fmt.Fprintf(&b, "- mode: %s\n", cfg.Env)
	fmt.Fprintf(&b, "- version: %s\n", cfg.Version)
	fmt.Fprintf(&b, "- log level: %s\n\n", cfg.LogLevel)
	b.WriteString("## Environment\n\n")
	b.WriteString("| variable | default |\n|---|---|\n")
	fmt.Fprintf(&b, "| ENV | %s |\n", util.DefaultEnv)
	b.WriteString("| LOG_LEVEL | warn |\n")
	fmt.Fprintf(&b, "| HEALTHBOT_THEME | %s |\n", DefaultTheme)
	return b.String()
}
