// Package model provides Bubble Tea models for the paysurface CLI.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/cli/styles"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/infrastructure/bridge"
	"github.com/bnema/paysurface/internal/infrastructure/hostui/memory"
	"github.com/bnema/paysurface/internal/infrastructure/surface"
	"github.com/bnema/paysurface/internal/ui/coordinator"
	"github.com/bnema/paysurface/internal/ui/mainloop"
)

const (
	// footerLines are the terminal rows below the overlay.
	footerLines = 4
	maxEvents   = 3
	// previewPayload is what the simulated page completes with.
	previewPayload = `{"source":"preview"}`
)

// PreviewOptions configures a PreviewModel.
type PreviewOptions struct {
	Theme      *styles.Theme
	URL        string
	Settings   coordinator.Settings
	BridgeName string
	DeepLinks  bridge.DeepLinks
	Metrics    port.Metrics
	Logger     zerolog.Logger
	// CellW and CellH are the logical pixels one terminal cell stands for.
	CellW int
	CellH int
}

type tickMsg time.Time

// PreviewModel runs the checkout coordinator against the in-memory host and
// the headless surface, and draws the overlay in the terminal.
//
// The coordinator loop is a manual loop advanced one frame per tick, so
// every coordinator callback runs inside Update.
type PreviewModel struct {
	theme    *styles.Theme
	keys     styles.PreviewKeyMap
	help     help.Model
	overlay  *styles.OverlayRenderer
	loop     *mainloop.Manual
	host     *memory.Host
	coord    *coordinator.CheckoutCoordinator
	frame    time.Duration
	url      string
	bridge   string
	viewport entity.Size
	cellW    int
	cellH    int

	width   int
	height  int
	events  []string
	outcome styles.Outcome
}

// NewPreviewModel wires a coordinator onto a manual loop.
func NewPreviewModel(opts PreviewOptions) (*PreviewModel, error) {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme()
	}
	cellW, cellH := max(opts.CellW, 1), max(opts.CellH, 1)

	m := &PreviewModel{
		theme:   opts.Theme,
		keys:    styles.DefaultPreviewKeyMap(),
		help:    styles.NewStyledHelp(opts.Theme),
		overlay: styles.NewOverlayRenderer(opts.Theme, cellW, cellH),
		loop:    mainloop.NewManual(),
		url:     opts.URL,
		bridge:  opts.BridgeName,
		cellW:   cellW,
		cellH:   cellH,
	}
	if m.bridge == "" {
		m.bridge = bridge.DefaultName
	}
	m.host = memory.NewHost(m.loop.Post)

	viewport := port.ViewportFunc(func() entity.Size { return m.viewport })
	factory := surface.NewFactory(port.PlatformDesktop, surface.Options{
		Post:       m.loop.Post,
		Logger:     opts.Logger,
		Viewport:   viewport,
		Backend:    surface.BackendHeadless,
		BridgeName: m.bridge,
		DeepLinks:  opts.DeepLinks,
	})

	coord, err := coordinator.New(coordinator.Options{
		Loop:     m.loop,
		Factory:  factory,
		Host:     m.host,
		Viewport: viewport,
		Settings: opts.Settings,
		Metrics:  opts.Metrics,
		Logger:   opts.Logger,
		Callbacks: coordinator.Callbacks{
			OnPaymentComplete: func(payload string) {
				m.outcome = styles.Outcome{Completed: true, Payload: payload, Backend: surface.BackendHeadless}
				m.event("payment complete")
			},
			OnPaymentError: func(message string) {
				m.outcome = styles.Outcome{Failed: true, Message: message, Backend: surface.BackendHeadless}
				m.event("payment error: " + message)
			},
			OnClosed:     func() { m.event("closed") },
			OnPageLoaded: func(url string) { m.event("loaded " + url) },
		},
	})
	if err != nil {
		return nil, err
	}
	m.coord = coord
	m.frame = coord.Settings().Animation.FrameInterval
	return m, nil
}

func (m *PreviewModel) event(text string) {
	m.events = append(m.events, text)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m *PreviewModel) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init implements tea.Model.
func (m *PreviewModel) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewport = entity.Size{
			W: msg.Width * m.cellW,
			H: max(msg.Height-footerLines, 0) * m.cellH,
		}
		m.coord.Relayout()
		m.loop.RunPending()
		return m, nil

	case tickMsg:
		m.loop.Advance(m.frame)
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *PreviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.coord.Shutdown()
		m.loop.RunPending()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Open):
		m.outcome = styles.Outcome{}
		m.coord.Open(m.url)
	case key.Matches(msg, m.keys.Close):
		if !m.host.Click() {
			m.coord.Close()
		}
	case key.Matches(msg, m.keys.Complete):
		m.coord.ExecuteScript(fmt.Sprintf("window[%q].complete(%s)", m.bridge, previewPayload))
	case key.Matches(msg, m.keys.Fail):
		m.coord.ExecuteScript(fmt.Sprintf("window[%q].fail(%q)", m.bridge, "declined in preview"))
	case key.Matches(msg, m.keys.Relayout):
		m.coord.Relayout()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	m.loop.RunPending()
	return m, nil
}

// View implements tea.Model.
func (m *PreviewModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	canvas := m.overlay.Render(m.viewport, m.host.Snapshot())

	state := m.coord.State()
	badge := m.theme.BadgeMuted.Render(state.String())
	if state == entity.ModalOpen {
		badge = m.theme.Badge.Render(state.String())
	}
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		badge, " ",
		m.theme.Subtle.Render(fmt.Sprintf("gen %d  %s  ", m.coord.Generation(), m.viewport)),
		m.theme.Normal.Render(m.url),
	)

	events := m.theme.Subtle.Render(strings.Join(m.events, "  |  "))
	if m.outcome.Completed {
		events = m.theme.SuccessStyle.Render("complete " + m.outcome.Payload)
	} else if m.outcome.Failed {
		events = m.theme.ErrorStyle.Render("failed " + m.outcome.Message)
	}

	return lipgloss.JoinVertical(lipgloss.Left, canvas, status, events, m.help.View(m.keys))
}

// State returns the coordinator state.
func (m *PreviewModel) State() entity.ModalState {
	return m.coord.State()
}

// Outcome returns the last checkout outcome.
func (m *PreviewModel) Outcome() styles.Outcome {
	return m.outcome
}
