package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paysurface/internal/domain/entity"
)

func TestCollector_SessionLifecycle(t *testing.T) {
	c := NewCollector()
	clock := time.Unix(1_700_000_000, 0)
	c.now = func() time.Time { return clock }

	c.SessionOpened("headless")
	assert.InDelta(t, 1, testutil.ToFloat64(c.SessionsActive), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.SessionsOpened.WithLabelValues("headless")), 0)

	clock = clock.Add(42 * time.Second)
	c.SessionClosed(entity.CloseCompleted)

	assert.InDelta(t, 0, testutil.ToFloat64(c.SessionsActive), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.SessionsClosed.WithLabelValues("completed")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(c.SessionDuration))
}

func TestCollector_CloseWithoutOpen(t *testing.T) {
	c := NewCollector()

	c.SessionClosed(entity.CloseForced)

	assert.InDelta(t, 1, testutil.ToFloat64(c.SessionsClosed.WithLabelValues("forced")), 0)
}

func TestCollector_Faults(t *testing.T) {
	c := NewCollector()

	c.Relayout()
	c.Relayout()
	c.MonitorFault()
	c.TransientFault()

	assert.InDelta(t, 2, testutil.ToFloat64(c.Relayouts), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.MonitorFaults), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(c.TransientFaults), 0)
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector()
	c.SessionOpened("chromium")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `paysurface_sessions_opened_total{backend="chromium"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
