package surface

import (
	"runtime"
	"strings"

	"github.com/bnema/paysurface/internal/application/port"
)

// Detect maps the build target to a platform.
func Detect() port.Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) port.Platform {
	switch goos {
	case "android", "ios":
		return port.PlatformMobile
	case "js", "wasip1":
		return port.PlatformBrowser
	case "linux", "darwin", "windows", "freebsd", "openbsd", "netbsd":
		return port.PlatformDesktop
	default:
		return port.PlatformUnknown
	}
}

// ParsePlatform reads a platform name, falling back to Detect for "" and "auto".
func ParsePlatform(name string) port.Platform {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Detect()
	case string(port.PlatformDesktop):
		return port.PlatformDesktop
	case string(port.PlatformMobile):
		return port.PlatformMobile
	case string(port.PlatformBrowser), "web", "wasm":
		return port.PlatformBrowser
	default:
		return port.PlatformUnknown
	}
}

// preferredBackends lists backends to try per platform, best first.
func preferredBackends(p port.Platform) []string {
	switch p {
	case port.PlatformDesktop:
		return []string{BackendWebKit, BackendChromium}
	case port.PlatformMobile:
		return []string{BackendMobile}
	case port.PlatformBrowser:
		return []string{BackendPopup}
	default:
		return nil
	}
}
