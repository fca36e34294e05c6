package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/domain/entity"
)

func TestHost_CreateAndMutate(t *testing.T) {
	h := NewHost(nil)

	scrim, err := h.CreateScrim()
	require.NoError(t, err)
	require.NoError(t, scrim.SetOpacity(0.6))
	require.NoError(t, scrim.SetRect(entity.Rect{W: 100, H: 50}))

	el := h.Find(port.RoleScrim)
	require.NotNil(t, el)
	assert.Equal(t, 2, el.Writes())
	assert.InDelta(t, 0.6, el.State().Opacity, 1e-9)
	assert.Equal(t, 100, el.State().Rect.W)
}

func TestHost_GoneElementsReportErrElementGone(t *testing.T) {
	h := NewHost(nil)
	panel, _ := h.CreatePanel()

	h.TearDown()

	assert.False(t, panel.Alive())
	assert.ErrorIs(t, panel.SetRect(entity.Rect{}), port.ErrElementGone)
	assert.Equal(t, 1, h.Elements()[0].Attempts())
	assert.Zero(t, h.Elements()[0].Writes())
	assert.NoError(t, panel.Destroy(), "destroying a gone element is not an error")
	assert.True(t, h.Find(port.RoleScrim) == nil)
	assert.True(t, h.Elements()[0].DestroyedExternally())
}

func TestHost_FailNextIsTransient(t *testing.T) {
	h := NewHost(nil)
	panel, _ := h.CreatePanel()
	boom := errors.New("busy")

	h.Find(port.RolePanel).FailNext(boom)

	assert.ErrorIs(t, panel.SetScale(0.5), boom)
	assert.NoError(t, panel.SetScale(0.5))
	assert.True(t, panel.Alive())
}

func TestHost_FailNextCreate(t *testing.T) {
	h := NewHost(nil)
	boom := errors.New("no scene")
	h.FailNextCreate(port.RolePanel, boom)

	_, err := h.CreatePanel()
	assert.ErrorIs(t, err, boom)

	_, err = h.CreatePanel()
	assert.NoError(t, err)
}

func TestHost_ClickPostsOnClick(t *testing.T) {
	var posted []func()
	h := NewHost(func(fn func()) { posted = append(posted, fn) })
	clicks := 0

	assert.False(t, h.Click())

	_, err := h.CreateCloseControl(func() { clicks++ })
	require.NoError(t, err)
	assert.True(t, h.Click())
	require.Len(t, posted, 1)
	assert.Zero(t, clicks)

	posted[0]()
	assert.Equal(t, 1, clicks)
}

func TestHost_Snapshot(t *testing.T) {
	h := NewHost(nil)
	scrim, _ := h.CreateScrim()
	_, _ = h.CreatePanel()
	_ = scrim.Destroy()

	snap := h.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, port.RolePanel, snap[0].Role)
	assert.InDelta(t, 1.0, snap[0].Scale, 1e-9)
}
