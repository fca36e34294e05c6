// Package config loads, validates and watches the paysurface configuration.
package config

// Config represents the complete configuration for paysurface.
type Config struct {
	// Layout controls the checkout modal geometry.
	Layout LayoutConfig `mapstructure:"layout" toml:"layout" json:"layout"`
	// Animation controls the show and hide transitions.
	Animation AnimationConfig `mapstructure:"animation" toml:"animation" json:"animation"`
	// Monitor controls the viewport poll while the overlay is open.
	Monitor MonitorConfig `mapstructure:"monitor" toml:"monitor" json:"monitor"`
	// Surface selects and configures the embedded browser backend.
	Surface SurfaceConfig `mapstructure:"surface" toml:"surface" json:"surface"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Metrics exposes session counters over HTTP.
	Metrics MetricsConfig `mapstructure:"metrics" toml:"metrics" json:"metrics"`
}

// LayoutConfig holds the modal sizing tunables.
type LayoutConfig struct {
	// MaxWidthFraction is the share of the viewport width the modal may use.
	MaxWidthFraction float64 `mapstructure:"max_width_fraction" toml:"max_width_fraction" json:"max_width_fraction" jsonschema:"exclusiveMinimum=0,maximum=1,default=0.95"`
	// FixedChrome is the vertical space in pixels reserved for host chrome.
	FixedChrome int `mapstructure:"fixed_chrome" toml:"fixed_chrome" json:"fixed_chrome" jsonschema:"minimum=0,default=120"`
	// TallHeightThreshold keeps the 9:16 modal on landscape viewports at least this tall (0 disables).
	TallHeightThreshold int     `mapstructure:"tall_height_threshold" toml:"tall_height_threshold" json:"tall_height_threshold" jsonschema:"minimum=0,default=1400"`
	CloseSizeFraction   float64 `mapstructure:"close_size_fraction" toml:"close_size_fraction" json:"close_size_fraction" jsonschema:"exclusiveMinimum=0,maximum=1,default=0.04"`
	CloseMinSize        int     `mapstructure:"close_min_size" toml:"close_min_size" json:"close_min_size" jsonschema:"minimum=1,default=32"`
	CloseMaxSize        int     `mapstructure:"close_max_size" toml:"close_max_size" json:"close_max_size" jsonschema:"minimum=1,default=64"`
	CloseMargin         int     `mapstructure:"close_margin" toml:"close_margin" json:"close_margin" jsonschema:"minimum=0,default=16"`
	// ReferenceShortSide is the viewport short side at which the layout scale is 1.0.
	ReferenceShortSide int `mapstructure:"reference_short_side" toml:"reference_short_side" json:"reference_short_side" jsonschema:"minimum=1,default=1080"`
}

// AnimationConfig holds the transition tunables.
type AnimationConfig struct {
	// DurationMs is the length of one transition; 0 disables animation.
	DurationMs      int     `mapstructure:"duration_ms" toml:"duration_ms" json:"duration_ms" jsonschema:"minimum=0,default=250"`
	FrameIntervalMs int     `mapstructure:"frame_interval_ms" toml:"frame_interval_ms" json:"frame_interval_ms" jsonschema:"minimum=1,default=16"`
	ScrimOpacity    float64 `mapstructure:"scrim_opacity" toml:"scrim_opacity" json:"scrim_opacity" jsonschema:"minimum=0,maximum=1,default=0.6"`
	// StartScale is the panel scale when fully hidden.
	StartScale float64 `mapstructure:"start_scale" toml:"start_scale" json:"start_scale" jsonschema:"exclusiveMinimum=0,maximum=1,default=0.92"`
}

// MonitorConfig controls the viewport monitor.
type MonitorConfig struct {
	IntervalMs int `mapstructure:"interval_ms" toml:"interval_ms" json:"interval_ms" jsonschema:"minimum=1,default=100"`
}

// SurfaceBackend names a surface implementation.
type SurfaceBackend string

const (
	SurfaceBackendAuto     SurfaceBackend = "auto"
	SurfaceBackendChromium SurfaceBackend = "chromium"
	SurfaceBackendWebKit   SurfaceBackend = "webkit"
	SurfaceBackendMobile   SurfaceBackend = "mobile"
	SurfaceBackendPopup    SurfaceBackend = "popup"
	SurfaceBackendHeadless SurfaceBackend = "headless"
	SurfaceBackendNone     SurfaceBackend = "none"
)

// SurfaceConfig selects the backend and the page bridge.
type SurfaceConfig struct {
	// Platform overrides detection (desktop, mobile, browser).
	Platform string `mapstructure:"platform" toml:"platform" json:"platform" jsonschema:"enum=auto,enum=desktop,enum=mobile,enum=browser,default=auto"`
	// Backend forces a backend instead of the platform preference.
	Backend SurfaceBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=auto,enum=chromium,enum=webkit,enum=mobile,enum=popup,enum=headless,enum=none,default=auto"`
	// BridgeName is the global object checkout pages call (window.<name>.complete()).
	BridgeName string `mapstructure:"bridge_name" toml:"bridge_name" json:"bridge_name" jsonschema:"pattern=^[A-Za-z_$][A-Za-z0-9_$]*$,default=paysurface"`
	// CompleteURLs are URL prefixes that mean the payment succeeded.
	CompleteURLs []string `mapstructure:"complete_urls" toml:"complete_urls" json:"complete_urls"`
	// ErrorURLs are URL prefixes that mean the payment failed.
	ErrorURLs []string       `mapstructure:"error_urls" toml:"error_urls" json:"error_urls"`
	Chromium  ChromiumConfig `mapstructure:"chromium" toml:"chromium" json:"chromium"`
}

// ChromiumConfig tunes the desktop Chromium backend.
type ChromiumConfig struct {
	// ExecPath overrides the browser binary; empty lets chromedp search.
	ExecPath    string `mapstructure:"exec_path" toml:"exec_path" json:"exec_path"`
	UserDataDir string `mapstructure:"user_data_dir" toml:"user_data_dir" json:"user_data_dir"`
	// WindowOriginX and WindowOriginY place the viewport on screen.
	WindowOriginX int `mapstructure:"window_origin_x" toml:"window_origin_x" json:"window_origin_x"`
	WindowOriginY int `mapstructure:"window_origin_y" toml:"window_origin_y" json:"window_origin_y"`
	// Flags are extra command line switches, without the leading dashes.
	Flags []string `mapstructure:"flags" toml:"flags" json:"flags"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}

// MetricsConfig holds the prometheus endpoint settings.
type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	ListenAddr string `mapstructure:"listen_addr" toml:"listen_addr" json:"listen_addr" jsonschema:"default=127.0.0.1:9464"`
}
