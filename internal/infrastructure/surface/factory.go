package surface

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/paysurface/internal/application/port"
	"github.com/bnema/paysurface/internal/logging"
)

// Constructor builds one surface. It must not block on native startup:
// slow initialization happens in the background and is reported as events.
type Constructor func(ctx context.Context, opts Options) port.Surface

// Factory creates surfaces for one platform. It holds no per-surface state.
type Factory struct {
	platform port.Platform
	opts     Options
	backends map[string]Constructor

	once     sync.Once
	selected string
	reason   string
}

var _ port.SurfaceFactory = (*Factory)(nil)

// NewFactory creates a factory for platform using the backends compiled
// into this build.
func NewFactory(platform port.Platform, opts Options) *Factory {
	return &Factory{
		platform: platform,
		opts:     opts,
		backends: builtinBackends(),
	}
}

// WithBackend registers or replaces a backend constructor. Call before Create.
func (f *Factory) WithBackend(name string, ctor Constructor) *Factory {
	if ctor == nil {
		delete(f.backends, name)
	} else {
		f.backends[name] = ctor
	}
	return f
}

// Platform implements port.SurfaceFactory.
func (f *Factory) Platform() port.Platform {
	return f.platform
}

// Backends lists the registered backend names.
func (f *Factory) Backends() []string {
	names := make([]string, 0, len(f.backends))
	for name := range f.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Selected returns the backend Create uses, resolving it on first call.
func (f *Factory) Selected() string {
	f.resolve()
	return f.selected
}

// Create implements port.SurfaceFactory. It never returns nil.
func (f *Factory) Create(ctx context.Context) port.Surface {
	f.resolve()
	log := logging.FromContext(ctx)

	if f.selected == BackendNone {
		log.Warn().Str("platform", string(f.platform)).Str("reason", f.reason).Msg("no surface backend, using fallback")
		return NewUnavailable(f.opts, f.reason)
	}

	s := f.backends[f.selected](ctx, f.opts)
	if s == nil {
		return NewUnavailable(f.opts, fmt.Sprintf("%s backend returned no surface", f.selected))
	}
	log.Debug().Str("backend", s.Backend()).Msg("surface created")
	return s
}

func (f *Factory) resolve() {
	f.once.Do(func() {
		f.selected, f.reason = f.pick()
	})
}

func (f *Factory) pick() (string, string) {
	name := strings.ToLower(strings.TrimSpace(f.opts.Backend))
	if name != "" && name != BackendAuto {
		if name == BackendNone {
			return BackendNone, "surface backend disabled by configuration"
		}
		if _, ok := f.backends[name]; ok {
			return name, ""
		}
		return BackendNone, fmt.Sprintf("backend %q is not available in this build", name)
	}

	for _, candidate := range preferredBackends(f.platform) {
		if _, ok := f.backends[candidate]; ok {
			return candidate, ""
		}
	}
	return BackendNone, fmt.Sprintf("no surface backend for platform %q", f.platform)
}
