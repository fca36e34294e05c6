package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a manager for the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a manager reading config.toml from dir.
func NewManagerAt(dir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// PAYSURFACE_LAYOUT_FIXED_CHROME, PAYSURFACE_SURFACE_BACKEND, ...
	v.SetEnvPrefix("PAYSURFACE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "PAYSURFACE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind PAYSURFACE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "PAYSURFACE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind PAYSURFACE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads the config file, creating a default one when missing, then
// applies environment overrides and validates the result.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.dir, configFileName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.dir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch SurfaceBackend(strings.ToLower(strings.TrimSpace(string(config.Surface.Backend)))) {
	case "", SurfaceBackendAuto:
		config.Surface.Backend = SurfaceBackendAuto
	case SurfaceBackendChromium:
		config.Surface.Backend = SurfaceBackendChromium
	case SurfaceBackendWebKit:
		config.Surface.Backend = SurfaceBackendWebKit
	case SurfaceBackendMobile:
		config.Surface.Backend = SurfaceBackendMobile
	case SurfaceBackendPopup:
		config.Surface.Backend = SurfaceBackendPopup
	case SurfaceBackendHeadless:
		config.Surface.Backend = SurfaceBackendHeadless
	case SurfaceBackendNone:
		config.Surface.Backend = SurfaceBackendNone
	}

	config.Surface.Platform = strings.ToLower(strings.TrimSpace(config.Surface.Platform))
	if config.Surface.Platform == "" {
		config.Surface.Platform = "auto"
	}
	config.Surface.BridgeName = strings.TrimSpace(config.Surface.BridgeName)
	if config.Surface.BridgeName == "" {
		config.Surface.BridgeName = defaultBridgeName
	}
	config.Surface.CompleteURLs = trimEmpty(config.Surface.CompleteURLs)
	config.Surface.ErrorURLs = trimEmpty(config.Surface.ErrorURLs)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "pretty" {
		config.Logging.Format = "console"
	}
}

func trimEmpty(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it as the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := WriteConfigOrdered(cfg, filepath.Join(m.dir, configFileName)); err != nil {
		return err
	}

	// With Watch active, viper.OnConfigChange reloads and notifies.
	if !m.watching {
		if err := m.reload(); err != nil {
			return err
		}
	}
	return nil
}

// GetConfigFile returns the path of the file in use.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.dir, configFileName)
}

// createDefaultConfig writes the default config and its JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.dir, dirPerm); err != nil {
		return err
	}
	configFile := filepath.Join(m.dir, configFileName)
	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(m.dir, schemaFileName)); err != nil {
		return err
	}
	m.viper.SetConfigFile(configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLayoutDefaults(defaults)
	m.setAnimationDefaults(defaults)
	m.viper.SetDefault("monitor.interval_ms", defaults.Monitor.IntervalMs)
	m.setSurfaceDefaults(defaults)
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	m.viper.SetDefault("metrics.listen_addr", defaults.Metrics.ListenAddr)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.max_width_fraction", defaults.Layout.MaxWidthFraction)
	m.viper.SetDefault("layout.fixed_chrome", defaults.Layout.FixedChrome)
	m.viper.SetDefault("layout.tall_height_threshold", defaults.Layout.TallHeightThreshold)
	m.viper.SetDefault("layout.close_size_fraction", defaults.Layout.CloseSizeFraction)
	m.viper.SetDefault("layout.close_min_size", defaults.Layout.CloseMinSize)
	m.viper.SetDefault("layout.close_max_size", defaults.Layout.CloseMaxSize)
	m.viper.SetDefault("layout.close_margin", defaults.Layout.CloseMargin)
	m.viper.SetDefault("layout.reference_short_side", defaults.Layout.ReferenceShortSide)
}

func (m *Manager) setAnimationDefaults(defaults *Config) {
	m.viper.SetDefault("animation.duration_ms", defaults.Animation.DurationMs)
	m.viper.SetDefault("animation.frame_interval_ms", defaults.Animation.FrameIntervalMs)
	m.viper.SetDefault("animation.scrim_opacity", defaults.Animation.ScrimOpacity)
	m.viper.SetDefault("animation.start_scale", defaults.Animation.StartScale)
}

func (m *Manager) setSurfaceDefaults(defaults *Config) {
	m.viper.SetDefault("surface.platform", defaults.Surface.Platform)
	m.viper.SetDefault("surface.backend", string(defaults.Surface.Backend))
	m.viper.SetDefault("surface.bridge_name", defaults.Surface.BridgeName)
	m.viper.SetDefault("surface.complete_urls", defaults.Surface.CompleteURLs)
	m.viper.SetDefault("surface.error_urls", defaults.Surface.ErrorURLs)
	m.viper.SetDefault("surface.chromium.exec_path", defaults.Surface.Chromium.ExecPath)
	m.viper.SetDefault("surface.chromium.user_data_dir", defaults.Surface.Chromium.UserDataDir)
	m.viper.SetDefault("surface.chromium.window_origin_x", defaults.Surface.Chromium.WindowOriginX)
	m.viper.SetDefault("surface.chromium.window_origin_y", defaults.Surface.Chromium.WindowOriginY)
	m.viper.SetDefault("surface.chromium.flags", defaults.Surface.Chromium.Flags)
}
