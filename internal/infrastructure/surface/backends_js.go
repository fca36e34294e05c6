//go:build js && wasm

package surface

import (
	"context"

	"github.com/bnema/paysurface/internal/application/port"
)

func addPlatformBackends(m map[string]Constructor) {
	m[BackendPopup] = func(_ context.Context, opts Options) port.Surface { return NewPopup(opts) }
}
