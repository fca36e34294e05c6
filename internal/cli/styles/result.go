package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Outcome is how a checkout session ended, as seen by the CLI.
type Outcome struct {
	Completed bool
	Payload   string
	Failed    bool
	Message   string
	Backend   string
}

// ResultRenderer renders checkout outcomes.
type ResultRenderer struct {
	theme *Theme
}

// NewResultRenderer creates a new result renderer with the given theme.
func NewResultRenderer(theme *Theme) *ResultRenderer {
	return &ResultRenderer{theme: theme}
}

// RenderOpening renders the line printed when a checkout starts.
func (r *ResultRenderer) RenderOpening(url, backend string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("\n  %s Opening %s %s\n",
		iconStyle.Render(IconCard),
		r.theme.Highlight.Render(url),
		r.theme.BadgeMuted.Render(backend),
	)
}

// Render renders the final outcome.
func (r *ResultRenderer) Render(o Outcome) string {
	switch {
	case o.Completed:
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
		out := fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconCheck), r.theme.SuccessStyle.Render("Payment complete"))
		if o.Payload != "" {
			out += fmt.Sprintf("    %s\n", r.theme.Subtle.Render(o.Payload))
		}
		return out
	case o.Failed:
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
		return fmt.Sprintf("\n  %s %s %s\n",
			iconStyle.Render(IconX),
			r.theme.ErrorStyle.Render("Payment failed:"),
			r.theme.Normal.Render(o.Message),
		)
	default:
		iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
		return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconWarning), r.theme.WarningStyle.Render("Checkout closed without a result"))
	}
}
