package surface

import (
	"context"

	"github.com/bnema/paysurface/internal/application/port"
)

// builtinBackends returns the constructors compiled into this build.
func builtinBackends() map[string]Constructor {
	m := map[string]Constructor{
		BackendHeadless: func(_ context.Context, opts Options) port.Surface { return NewHeadless(opts) },
		BackendMobile: func(_ context.Context, opts Options) port.Surface {
			if opts.Native == nil {
				return NewUnavailable(opts, "mobile backend needs a native webview")
			}
			return NewMobile(opts, opts.Native)
		},
	}
	addPlatformBackends(m)
	return m
}
