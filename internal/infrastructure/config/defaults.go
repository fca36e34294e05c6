package config

const (
	defaultMaxWidthFraction    = 0.95
	defaultFixedChrome         = 120
	defaultTallHeightThreshold = 1400
	defaultCloseSizeFraction   = 0.04
	defaultCloseMinSize        = 32
	defaultCloseMaxSize        = 64
	defaultCloseMargin         = 16
	defaultReferenceShortSide  = 1080

	defaultDurationMs      = 250
	defaultFrameIntervalMs = 16
	defaultScrimOpacity    = 0.6
	defaultStartScale      = 0.92

	defaultMonitorIntervalMs = 100

	defaultBridgeName  = "paysurface"
	defaultMetricsAddr = "127.0.0.1:9464"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			MaxWidthFraction:    defaultMaxWidthFraction,
			FixedChrome:         defaultFixedChrome,
			TallHeightThreshold: defaultTallHeightThreshold,
			CloseSizeFraction:   defaultCloseSizeFraction,
			CloseMinSize:        defaultCloseMinSize,
			CloseMaxSize:        defaultCloseMaxSize,
			CloseMargin:         defaultCloseMargin,
			ReferenceShortSide:  defaultReferenceShortSide,
		},
		Animation: AnimationConfig{
			DurationMs:      defaultDurationMs,
			FrameIntervalMs: defaultFrameIntervalMs,
			ScrimOpacity:    defaultScrimOpacity,
			StartScale:      defaultStartScale,
		},
		Monitor: MonitorConfig{
			IntervalMs: defaultMonitorIntervalMs,
		},
		Surface: SurfaceConfig{
			Platform:     "auto",
			Backend:      SurfaceBackendAuto,
			BridgeName:   defaultBridgeName,
			CompleteURLs: []string{},
			ErrorURLs:    []string{},
			Chromium: ChromiumConfig{
				Flags: []string{},
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Metrics: MetricsConfig{
			Enabled:    false,
			ListenAddr: defaultMetricsAddr,
		},
	}
}
