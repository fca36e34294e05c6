package port

import (
	"time"

	"github.com/bnema/paysurface/internal/domain/entity"
)

// Loop is the host's single cooperative scheduler.
// Functions posted to a Loop run one at a time, in order, on the loop.
type Loop interface {
	// Post schedules fn to run on the loop.
	Post(fn func())
	// AfterFunc schedules fn to run on the loop after d.
	// The returned stop function is idempotent.
	AfterFunc(d time.Duration, fn func()) (stop func())
}

// Metrics observes the checkout overlay lifecycle.
type Metrics interface {
	SessionOpened(backend string)
	SessionClosed(reason entity.CloseReason)
	Relayout()
	MonitorFault()
	TransientFault()
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) SessionOpened(string)             {}
func (NopMetrics) SessionClosed(entity.CloseReason) {}
func (NopMetrics) Relayout()                        {}
func (NopMetrics) MonitorFault()                    {}
func (NopMetrics) TransientFault()                  {}
