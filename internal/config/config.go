// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Browser() BrowserConfig
	Locator() LocatorConfig
	Input() InputConfig

	// Browser Setters
	SetBrowserRemoteURL(string)
	SetBrowserHeadless(bool)

	// Locator Setters
	SetLocatorViewportGuardMargin(int64)
	SetLocatorMouseMoveSteps(int)

	// Input Setters
	SetInputBackend(string)
	SetInputWindowPID(int)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	BrowserCfg BrowserConfig `mapstructure:"browser" yaml:"browser"`
	LocatorCfg LocatorConfig `mapstructure:"locator" yaml:"locator"`
	InputCfg   InputConfig   `mapstructure:"input" yaml:"input"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig   { return c.LoggerCfg }
func (c *Config) Browser() BrowserConfig { return c.BrowserCfg }
func (c *Config) Locator() LocatorConfig { return c.LocatorCfg }
func (c *Config) Input() InputConfig     { return c.InputCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetBrowserRemoteURL(u string) { c.BrowserCfg.RemoteURL = u }
func (c *Config) SetBrowserHeadless(b bool)    { c.BrowserCfg.Headless = b }

func (c *Config) SetLocatorViewportGuardMargin(m int64) { c.LocatorCfg.ViewportGuardMargin = m }
func (c *Config) SetLocatorMouseMoveSteps(n int)        { c.LocatorCfg.MouseMoveSteps = n }

func (c *Config) SetInputBackend(b string) { c.InputCfg.Backend = b }
func (c *Config) SetInputWindowPID(p int)  { c.InputCfg.WindowPID = p }

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// BrowserConfig selects the browser the CDP backend drives. When RemoteURL is
// set the backend attaches to that DevTools endpoint instead of starting one.
type BrowserConfig struct {
	RemoteURL       string         `mapstructure:"remote_url" yaml:"remote_url"`
	Headless        bool           `mapstructure:"headless" yaml:"headless"`
	IgnoreTLSErrors bool           `mapstructure:"ignore_tls_errors" yaml:"ignore_tls_errors"`
	Args            []string       `mapstructure:"args" yaml:"args"`
	Viewport        map[string]int `mapstructure:"viewport" yaml:"viewport"`
}

// LocatorConfig tunes element location and click synthesis.
type LocatorConfig struct {
	// ViewportGuardMargin is the band along each client-area edge in which a
	// click point is treated as outside the viewport. Clicks that close to the
	// edge can land on window chrome. The default of 2 is a guess, not a
	// measurement.
	ViewportGuardMargin int64 `mapstructure:"viewport_guard_margin" yaml:"viewport_guard_margin"`
	// MouseMoveSteps is the number of move events emitted on the way to the
	// click point.
	MouseMoveSteps int `mapstructure:"mouse_move_steps" yaml:"mouse_move_steps"`
	// IgnoreOpacity is passed to the visibility check.
	IgnoreOpacity bool `mapstructure:"ignore_opacity" yaml:"ignore_opacity"`
}

// InputConfig selects the input injection backend.
type InputConfig struct {
	// Backend is "cdp" (browser input protocol) or "os" (real pointer).
	Backend string `mapstructure:"backend" yaml:"backend"`
	// WindowPID identifies the browser window for the "os" backend.
	WindowPID int `mapstructure:"window_pid" yaml:"window_pid"`
	// EventsPerSecond paces OS-level events.
	EventsPerSecond float64 `mapstructure:"events_per_second" yaml:"events_per_second"`
}

// Supported input backends.
const (
	InputBackendCDP = "cdp"
	InputBackendOS  = "os"
)

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "clickpoint")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Browser --
	v.SetDefault("browser.remote_url", "")
	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.ignore_tls_errors", false)
	v.SetDefault("browser.viewport", map[string]int{"width": 1280, "height": 800})

	// -- Locator --
	v.SetDefault("locator.viewport_guard_margin", 2)
	v.SetDefault("locator.mouse_move_steps", 10)
	v.SetDefault("locator.ignore_opacity", true)

	// -- Input --
	v.SetDefault("input.backend", InputBackendCDP)
	v.SetDefault("input.window_pid", 0)
	v.SetDefault("input.events_per_second", 250.0)
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	v.BindEnv("browser.remote_url", "CLICKPOINT_REMOTE_URL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if cfg.LoggerCfg.LogFile != "" {
		expanded, err := homedir.Expand(cfg.LoggerCfg.LogFile)
		if err != nil {
			return nil, fmt.Errorf("error expanding logger.log_file: %w", err)
		}
		cfg.LoggerCfg.LogFile = expanded
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := c.LocatorCfg.Validate(); err != nil {
		return fmt.Errorf("locator configuration invalid: %w", err)
	}
	if err := c.InputCfg.Validate(); err != nil {
		return fmt.Errorf("input configuration invalid: %w", err)
	}
	return nil
}

// Validate checks the locator settings.
func (l *LocatorConfig) Validate() error {
	if l.ViewportGuardMargin < 0 {
		return fmt.Errorf("viewport_guard_margin must not be negative")
	}
	if l.MouseMoveSteps <= 0 {
		return fmt.Errorf("mouse_move_steps must be a positive integer")
	}
	return nil
}

// Validate checks the input settings.
func (i *InputConfig) Validate() error {
	switch strings.ToLower(i.Backend) {
	case InputBackendCDP:
		return nil
	case InputBackendOS:
		if i.WindowPID <= 0 {
			return fmt.Errorf("window_pid is required for the %q backend", InputBackendOS)
		}
		if i.EventsPerSecond <= 0 {
			return fmt.Errorf("events_per_second must be positive")
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want %q or %q)", i.Backend, InputBackendCDP, InputBackendOS)
	}
}
