package config

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

var bridgeNamePattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate reports every invalid value in cfg at once.
func Validate(cfg *Config) error {
	return validateConfig(cfg)
}

func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLayout(config)...)
	validationErrors = append(validationErrors, validateAnimation(config)...)
	validationErrors = append(validationErrors, validateMonitor(config)...)
	validationErrors = append(validationErrors, validateSurface(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateMetrics(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateFraction(name string, v float64) []string {
	if v <= 0 || v > 1 {
		return []string{fmt.Sprintf("%s must be in (0, 1], got %g", name, v)}
	}
	return nil
}

func validateLayout(config *Config) []string {
	var errs []string
	l := config.Layout

	errs = append(errs, validateFraction("layout.max_width_fraction", l.MaxWidthFraction)...)
	errs = append(errs, validateFraction("layout.close_size_fraction", l.CloseSizeFraction)...)
	if l.FixedChrome < 0 {
		errs = append(errs, "layout.fixed_chrome must be non-negative")
	}
	if l.TallHeightThreshold < 0 {
		errs = append(errs, "layout.tall_height_threshold must be non-negative")
	}
	if l.CloseMinSize <= 0 {
		errs = append(errs, "layout.close_min_size must be positive")
	}
	if l.CloseMaxSize <= 0 {
		errs = append(errs, "layout.close_max_size must be positive")
	}
	if l.CloseMinSize > l.CloseMaxSize {
		errs = append(errs, "layout.close_min_size must not exceed layout.close_max_size")
	}
	if l.CloseMargin < 0 {
		errs = append(errs, "layout.close_margin must be non-negative")
	}
	if l.ReferenceShortSide <= 0 {
		errs = append(errs, "layout.reference_short_side must be positive")
	}
	return errs
}

func validateAnimation(config *Config) []string {
	var errs []string
	a := config.Animation

	if a.DurationMs < 0 {
		errs = append(errs, "animation.duration_ms must be non-negative")
	}
	if a.FrameIntervalMs <= 0 {
		errs = append(errs, "animation.frame_interval_ms must be positive")
	}
	if a.ScrimOpacity < 0 || a.ScrimOpacity > 1 {
		errs = append(errs, "animation.scrim_opacity must be between 0 and 1")
	}
	errs = append(errs, validateFraction("animation.start_scale", a.StartScale)...)
	return errs
}

func validateMonitor(config *Config) []string {
	if config.Monitor.IntervalMs <= 0 {
		return []string{"monitor.interval_ms must be positive"}
	}
	return nil
}

func validateSurface(config *Config) []string {
	var errs []string
	s := config.Surface

	switch s.Backend {
	case SurfaceBackendAuto, SurfaceBackendChromium, SurfaceBackendWebKit, SurfaceBackendMobile,
		SurfaceBackendPopup, SurfaceBackendHeadless, SurfaceBackendNone:
	default:
		errs = append(errs, fmt.Sprintf("surface.backend %q is not one of auto, chromium, webkit, mobile, popup, headless, none", s.Backend))
	}
	switch s.Platform {
	case "", "auto", "desktop", "mobile", "browser", "web", "wasm":
	default:
		errs = append(errs, fmt.Sprintf("surface.platform %q is not one of auto, desktop, mobile, browser", s.Platform))
	}
	if !bridgeNamePattern.MatchString(s.BridgeName) {
		errs = append(errs, fmt.Sprintf("surface.bridge_name %q is not a valid JavaScript identifier", s.BridgeName))
	}
	for _, prefix := range append(append([]string{}, s.CompleteURLs...), s.ErrorURLs...) {
		if !strings.Contains(prefix, ":") {
			errs = append(errs, fmt.Sprintf("surface deep link %q must include a scheme", prefix))
		}
	}
	return errs
}

func validateLogging(config *Config) []string {
	var errs []string
	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q is not a known level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "", "console", "pretty", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q must be console or json", config.Logging.Format))
	}
	return errs
}

func validateMetrics(config *Config) []string {
	if !config.Metrics.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Metrics.ListenAddr); err != nil {
		return []string{fmt.Sprintf("metrics.listen_addr %q: %v", config.Metrics.ListenAddr, err)}
	}
	return nil
}
