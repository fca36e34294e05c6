package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderCreated renders the message after writing a default config.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	parts := strings.Split(path, "/")
	filename := parts[len(parts)-1]

	return fmt.Sprintf(
		"\n  %s Wrote %s\n    %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(filename),
		r.theme.Subtle.Render(path),
	)
}

// RenderExists renders the message when init finds an existing config.
func (r *ConfigRenderer) RenderExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf(
		"\n  %s Config already exists at %s\n    %s\n",
		iconStyle.Render(IconInfo),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("use --force to overwrite it with defaults"),
	)
}

// RenderValid renders the message for a config that loaded and validated.
func (r *ConfigRenderer) RenderValid(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconCheck),
		r.theme.SuccessStyle.Render("Config is valid"),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
