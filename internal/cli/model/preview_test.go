package model

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
	"github.com/bnema/paysurface/internal/ui/coordinator"
)

func newTestPreview(t *testing.T) *PreviewModel {
	t.Helper()
	m, err := NewPreviewModel(PreviewOptions{
		URL:      "https://pay.example/checkout",
		Settings: coordinator.DefaultSettings(),
		Logger:   zerolog.Nop(),
		CellW:    10,
		CellH:    20,
	})
	require.NoError(t, err)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 44})
	return m
}

func press(m *PreviewModel, r rune) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return cmd
}

func settle(m *PreviewModel) {
	for range 40 {
		m.Update(tickMsg(time.Now()))
	}
}

func TestPreview_ViewportFromTerminal(t *testing.T) {
	m := newTestPreview(t)
	assert.Equal(t, entity.Size{W: 1200, H: 800}, m.viewport)
}

func TestPreview_OpenAndClickClose(t *testing.T) {
	m := newTestPreview(t)

	press(m, 'o')
	assert.Equal(t, entity.ModalOpening, m.State())

	settle(m)
	require.Equal(t, entity.ModalOpen, m.State())
	require.NotNil(t, m.host.Find(port.RolePanel))
	assert.Contains(t, m.View(), "open")
	assert.Contains(t, m.events, "loaded https://pay.example/checkout")

	press(m, 'c')
	settle(m)
	assert.Equal(t, entity.ModalClosed, m.State())
	assert.Empty(t, m.host.Live())
	assert.Contains(t, m.events, "closed")
}

func TestPreview_CompleteThroughBridge(t *testing.T) {
	m := newTestPreview(t)

	press(m, 'o')
	settle(m)
	press(m, 's')
	settle(m)

	out := m.Outcome()
	assert.True(t, out.Completed)
	assert.JSONEq(t, previewPayload, out.Payload)
	assert.Equal(t, entity.ModalClosed, m.State())
	assert.Contains(t, m.View(), "complete")
}

func TestPreview_FailThroughBridge(t *testing.T) {
	m := newTestPreview(t)

	press(m, 'o')
	settle(m)
	press(m, 'f')
	settle(m)

	out := m.Outcome()
	assert.True(t, out.Failed)
	assert.Equal(t, "declined in preview", out.Message)
}

func TestPreview_ResizeRelayouts(t *testing.T) {
	m := newTestPreview(t)
	press(m, 'o')
	settle(m)

	before := m.coord.Geometry()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 84})
	settle(m)

	after := m.coord.Geometry()
	assert.Equal(t, entity.Size{W: 600, H: 1600}, after.Viewport)
	assert.NotEqual(t, before.Modal, after.Modal)
	assert.Equal(t, entity.OrientationPortrait, after.Orientation)
}

func TestPreview_QuitShutsDown(t *testing.T) {
	m := newTestPreview(t)
	press(m, 'o')
	settle(m)

	cmd := press(m, 'q')
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, entity.ModalClosed, m.State())
}

func TestPreview_ViewBeforeSize(t *testing.T) {
	m, err := NewPreviewModel(PreviewOptions{URL: "https://pay.example", Logger: zerolog.Nop()})
	require.NoError(t, err)
	assert.Equal(t, "Loading...", m.View())
	assert.NotNil(t, m.Init())
}
