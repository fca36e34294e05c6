package coordinator

import (
	"errors"
	"fmt"

	"github.com/bnema/paysurface/internal/application/port"
)

// errPanic wraps a value recovered from a panicking step.
var errPanic = errors.New("panic")

func capture(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errPanic, r)
		}
	}()
	return fn()
}

// classify decides what a failed step means for s: a gone element forces
// recovery, anything else is transient. It reports whether s survived.
func (c *CheckoutCoordinator) classify(s *session, what string, err error) bool {
	if errors.Is(err, port.ErrElementGone) || !s.elementsAlive() {
		c.forceRecovery(s, fmt.Errorf("%s: %w", what, err))
		return false
	}
	s.logger.Warn().Err(err).Str("step", what).Msg("overlay update failed, will retry")
	c.metrics.TransientFault()
	return true
}

// mutate runs a host UI write for s. It returns false once s has ended,
// in which case the caller must stop touching the session.
func (c *CheckoutCoordinator) mutate(s *session, what string, fn func() error) bool {
	if !c.live(s) {
		return false
	}
	if err := capture(fn); err != nil {
		return c.classify(s, what, err)
	}
	return c.live(s)
}

// guard runs a loop task so that nothing escapes it. s may be nil for
// tasks not tied to a session.
func (c *CheckoutCoordinator) guard(s *session, what string, fn func()) {
	err := capture(func() error {
		fn()
		return nil
	})
	if err == nil {
		return
	}
	if !c.live(s) {
		c.logger.Error().Err(err).Str("task", what).Msg("checkout task failed")
		return
	}
	c.classify(s, what, err)
}

// bestEffort runs teardown work, logging instead of classifying failures.
func (c *CheckoutCoordinator) bestEffort(s *session, what string, fn func()) {
	if err := capture(func() error {
		fn()
		return nil
	}); err != nil {
		s.logger.Warn().Err(err).Str("step", what).Msg("teardown step failed")
	}
}

// notify invokes a caller callback; its panics stay with the caller's log.
func (c *CheckoutCoordinator) notify(s *session, name string, fn func()) {
	if err := capture(func() error {
		fn()
		return nil
	}); err != nil {
		s.logger.Error().Err(err).Str("callback", name).Msg("callback panicked")
	}
}
