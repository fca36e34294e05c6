//go:build !js

package surface

import (
	"context"

	"github.com/bnema/paysurface/internal/application/port"
)

func addPlatformBackends(m map[string]Constructor) {
	m[BackendChromium] = func(ctx context.Context, opts Options) port.Surface { return NewChromium(ctx, opts) }
	addWebKit(m)
}
