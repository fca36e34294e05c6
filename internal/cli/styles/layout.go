package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/paysurface/internal/domain/entity"
)

// LayoutRenderer renders computed modal geometry.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// Render renders a summary header and a rectangle table for geo.
func (r *LayoutRenderer) Render(geo entity.Geometry) string {
	if geo.Empty() {
		return r.RenderEmpty(geo.Viewport)
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	aspect := "9:16"
	if geo.AspectRatio > 1 {
		aspect = "16:9"
	}
	orientation := geo.Orientation.String()
	if geo.Tall {
		orientation += " (tall)"
	}

	header := strings.Join([]string{
		fmt.Sprintf("%s %s %s", iconStyle.Render(IconDesktop), keyStyle.Render("Viewport"), valStyle.Render(geo.Viewport.String())),
		fmt.Sprintf("  %s %s", keyStyle.Render("Orientation"), valStyle.Render(orientation)),
		fmt.Sprintf("  %s %s", keyStyle.Render("Aspect"), valStyle.Render(aspect)),
		fmt.Sprintf("  %s %s", keyStyle.Render("Scale"), valStyle.Render(strconv.FormatFloat(geo.Scale, 'f', 2, 64))),
		fmt.Sprintf("  %s %s", keyStyle.Render("Bounds"), valStyle.Render(fmt.Sprintf("%dx%d", geo.MaxWidth, geo.MaxHeight))),
	}, "\n")

	rows := []table.Row{
		rectRow("modal", geo.Modal),
		rectRow("close", geo.Close),
		rectRow("scrim", geo.Scrim()),
	}
	tbl := NewStyledTable(r.theme, RectTableColumns(), rows, 52, len(rows)+3)

	return r.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", tbl.View()))
}

// RenderEmpty renders the message for a viewport with no room for the modal.
func (r *LayoutRenderer) RenderEmpty(viewport entity.Size) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)
	return fmt.Sprintf("\n  %s %s %s\n",
		iconStyle.Render(IconWarning),
		r.theme.WarningStyle.Render("No room for the checkout modal in"),
		r.theme.Highlight.Render(viewport.String()),
	)
}

func rectRow(name string, rc entity.Rect) table.Row {
	return table.Row{
		name,
		strconv.Itoa(rc.X),
		strconv.Itoa(rc.Y),
		strconv.Itoa(rc.W),
		strconv.Itoa(rc.H),
	}
}
