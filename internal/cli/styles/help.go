package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PreviewKeyMap defines keybindings for the checkout preview.
type PreviewKeyMap struct {
	Open     key.Binding
	Close    key.Binding
	Complete key.Binding
	Fail     key.Binding
	Relayout key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PreviewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.Complete, k.Fail, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PreviewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close},
		{k.Complete, k.Fail},
		{k.Relayout},
		{k.Help, k.Quit},
	}
}

// DefaultPreviewKeyMap returns the default preview keybindings.
func DefaultPreviewKeyMap() PreviewKeyMap {
	return PreviewKeyMap{
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("c", "x"),
			key.WithHelp("c", "click close"),
		),
		Complete: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "complete"),
		),
		Fail: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fail"),
		),
		Relayout: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "relayout"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
