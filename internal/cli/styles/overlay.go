package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/hostui/memory"
)

// OverlayRenderer draws in-memory overlay elements as terminal cells.
type OverlayRenderer struct {
	theme *Theme
	// CellW and CellH are the logical pixels one terminal cell covers.
	CellW int
	CellH int
}

// NewOverlayRenderer creates an overlay renderer with the given cell size.
func NewOverlayRenderer(theme *Theme, cellW, cellH int) *OverlayRenderer {
	return &OverlayRenderer{theme: theme, CellW: max(cellW, 1), CellH: max(cellH, 1)}
}

type cell struct {
	ch    rune
	style lipgloss.Style
}

// Render draws elements over a viewport-sized grid. Elements are painted
// in the order given, so later elements cover earlier ones.
func (r *OverlayRenderer) Render(viewport entity.Size, elements []memory.State) string {
	cols := viewport.W / r.CellW
	rows := viewport.H / r.CellH
	if cols <= 0 || rows <= 0 {
		return ""
	}

	blank := cell{ch: ' ', style: r.theme.Normal}
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = blank
		}
	}

	for _, el := range elements {
		if el.Rect.Empty() {
			continue
		}
		switch el.Role {
		case port.RoleScrim:
			if ch, ok := scrimShade(el.Opacity); ok {
				r.fill(grid, el.Rect, cell{ch: ch, style: r.theme.Subtle})
			}
		case port.RolePanel:
			if el.Opacity <= 0 {
				continue
			}
			rect := el.Rect.ScaledAround(el.Scale)
			r.fill(grid, rect, cell{ch: ' ', style: lipgloss.NewStyle().Background(r.theme.SurfaceVariant)})
			r.border(grid, rect, lipgloss.NewStyle().Foreground(r.theme.Accent))
		case port.RoleClose:
			if el.Opacity <= 0 {
				continue
			}
			style := r.theme.ErrorStyle
			if !el.Active {
				style = r.theme.Subtle
			}
			r.fill(grid, el.Rect, cell{ch: ' ', style: style})
			cx, cy := el.Rect.Center()
			r.set(grid, cx/r.CellW, cy/r.CellH, cell{ch: 'x', style: style.Bold(true)})
		}
	}

	var sb strings.Builder
	for y, line := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range line {
			sb.WriteString(c.style.Render(string(c.ch)))
		}
	}
	return sb.String()
}

// scrimShade maps scrim alpha to a shading rune; a transparent scrim draws nothing.
func scrimShade(alpha float64) (rune, bool) {
	switch {
	case alpha <= 0.05:
		return 0, false
	case alpha < 0.25:
		return '·', true
	case alpha < 0.5:
		return '░', true
	default:
		return '▒', true
	}
}

func (r *OverlayRenderer) cellRect(rc entity.Rect) (x0, y0, x1, y1 int) {
	x0 = rc.X / r.CellW
	y0 = rc.Y / r.CellH
	x1 = max((rc.Right()-1)/r.CellW, x0)
	y1 = max((rc.Bottom()-1)/r.CellH, y0)
	return x0, y0, x1, y1
}

func (r *OverlayRenderer) fill(grid [][]cell, rc entity.Rect, c cell) {
	x0, y0, x1, y1 := r.cellRect(rc)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.set(grid, x, y, c)
		}
	}
}

func (r *OverlayRenderer) border(grid [][]cell, rc entity.Rect, style lipgloss.Style) {
	x0, y0, x1, y1 := r.cellRect(rc)
	if x1-x0 < 1 || y1-y0 < 1 {
		return
	}
	for x := x0 + 1; x < x1; x++ {
		r.set(grid, x, y0, cell{ch: '─', style: style})
		r.set(grid, x, y1, cell{ch: '─', style: style})
	}
	for y := y0 + 1; y < y1; y++ {
		r.set(grid, x0, y, cell{ch: '│', style: style})
		r.set(grid, x1, y, cell{ch: '│', style: style})
	}
	r.set(grid, x0, y0, cell{ch: '╭', style: style})
	r.set(grid, x1, y0, cell{ch: '╮', style: style})
	r.set(grid, x0, y1, cell{ch: '╰', style: style})
	r.set(grid, x1, y1, cell{ch: '╯', style: style})
}

func (r *OverlayRenderer) set(grid [][]cell, x, y int, c cell) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = c
}
