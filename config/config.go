// Package config provides configuration loading and access for the widget.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all widget configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Arena     ArenaConfig     `yaml:"arena"`
	Entity    EntityConfig    `yaml:"entity"`
	Motion    MotionConfig    `yaml:"motion"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds the simulation step parameters.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per simulation tick
}

// ArenaConfig holds the bounded area parameters.
type ArenaConfig struct {
	Padding float64 `yaml:"padding"` // inset from the window edge the bug's center stays within
}

// EntityConfig holds bug body parameters.
type EntityConfig struct {
	BodyRadius float64 `yaml:"body_radius"`
	GrabRadius float64 `yaml:"grab_radius"` // max pointer distance from center that starts a drag
}

// MotionConfig holds wander motion parameters.
type MotionConfig struct {
	Speed             float64 `yaml:"speed"`               // px/s while wandering
	MinChangeInterval float64 `yaml:"min_change_interval"` // seconds until the next direction change, lower bound
	MaxChangeInterval float64 `yaml:"max_change_interval"` // seconds until the next direction change, upper bound
	SnapRadius        float64 `yaml:"snap_radius"`         // release within this distance of center snaps to center
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32         float32 // Physics.DT as float32
	ScreenW32    float32 // Screen.Width as float32
	ScreenH32    float32 // Screen.Height as float32
	Padding32    float32
	Speed32      float32
	SnapRadius32 float32
	GrabRadius32 float32
	BodyRadius32 float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Interval bounds must be ordered and positive
	if c.Motion.MinChangeInterval <= 0 {
		c.Motion.MinChangeInterval = 0.7
	}
	if c.Motion.MaxChangeInterval < c.Motion.MinChangeInterval {
		c.Motion.MaxChangeInterval = c.Motion.MinChangeInterval
	}

	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.Padding32 = float32(c.Arena.Padding)
	c.Derived.Speed32 = float32(c.Motion.Speed)
	c.Derived.SnapRadius32 = float32(c.Motion.SnapRadius)
	c.Derived.GrabRadius32 = float32(c.Entity.GrabRadius)
	c.Derived.BodyRadius32 = float32(c.Entity.BodyRadius)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
