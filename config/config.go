package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/linebounce/engine"
	"github.com/lixenwraith/linebounce/physics"
)

// EnvPrefix namespaces environment overrides, e.g. LINEBOUNCE_CIRCLE_RADIUS
const EnvPrefix = "LINEBOUNCE"

var ErrInvalidConfig = errors.New("invalid configuration")

type WorldConfig struct {
	Width      float64 `mapstructure:"width" yaml:"width"`
	Height     float64 `mapstructure:"height" yaml:"height"`
	MaxCircles int     `mapstructure:"max_circles" yaml:"max_circles"`
}

type GridConfig struct {
	Rows        int     `mapstructure:"rows" yaml:"rows"`
	Cols        int     `mapstructure:"cols" yaml:"cols"`
	Spacing     float64 `mapstructure:"spacing" yaml:"spacing"`
	Span        float64 `mapstructure:"span" yaml:"span"`
	RotateSpeed float64 `mapstructure:"rotate_speed" yaml:"rotate_speed"`
	// Omit lists [col, row] pairs, 1-based, left without a segment
	Omit [][]int `mapstructure:"omit" yaml:"omit,flow"`
}

type CircleConfig struct {
	Radius float64 `mapstructure:"radius" yaml:"radius"`
}

type SpawnConfig struct {
	Interval time.Duration `mapstructure:"interval" yaml:"interval"`
}

type PhysicsConfig struct {
	Gravity           float64 `mapstructure:"gravity" yaml:"gravity"`
	TimeScale         float64 `mapstructure:"time_scale" yaml:"time_scale"`
	MaxResolveSteps   int     `mapstructure:"max_resolve_steps" yaml:"max_resolve_steps"`
	SeparationEpsilon float64 `mapstructure:"separation_epsilon" yaml:"separation_epsilon"`
	Strict            bool    `mapstructure:"strict" yaml:"strict"`
}

type LoopConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval" yaml:"frame_interval"`
}

type AudioConfig struct {
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	Volume       float64 `mapstructure:"volume" yaml:"volume"`
	MaxPerSecond float64 `mapstructure:"max_per_second" yaml:"max_per_second"`
}

type LogConfig struct {
	Enabled    bool   `mapstructure:"enabled" yaml:"enabled"`
	File       string `mapstructure:"file" yaml:"file"`
	Level      string `mapstructure:"level" yaml:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
}

// Config is the full effective configuration of one run
type Config struct {
	World   WorldConfig   `mapstructure:"world" yaml:"world"`
	Grid    GridConfig    `mapstructure:"grid" yaml:"grid"`
	Circle  CircleConfig  `mapstructure:"circle" yaml:"circle"`
	Spawn   SpawnConfig   `mapstructure:"spawn" yaml:"spawn"`
	Physics PhysicsConfig `mapstructure:"physics" yaml:"physics"`
	Loop    LoopConfig    `mapstructure:"loop" yaml:"loop"`
	Audio   AudioConfig   `mapstructure:"audio" yaml:"audio"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	// Seed for segment angles, 0 picks one per run
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	// -- World --
	v.SetDefault("world.width", engine.DefaultWidth)
	v.SetDefault("world.height", engine.DefaultHeight)
	v.SetDefault("world.max_circles", 0)

	// -- Grid --
	v.SetDefault("grid.rows", engine.DefaultGridRows)
	v.SetDefault("grid.cols", engine.DefaultGridCols)
	v.SetDefault("grid.spacing", engine.DefaultGridSpacing)
	v.SetDefault("grid.span", engine.DefaultSegmentSpan)
	v.SetDefault("grid.rotate_speed", engine.DefaultRotateSpeed)
	v.SetDefault("grid.omit", [][]int{{3, 1}, {3, 2}})

	// -- Bodies --
	v.SetDefault("circle.radius", engine.DefaultRadius)
	v.SetDefault("spawn.interval", engine.DefaultSpawnInterval)

	// -- Physics --
	v.SetDefault("physics.gravity", physics.DefaultGravity)
	v.SetDefault("physics.time_scale", physics.DefaultTimeScale)
	v.SetDefault("physics.max_resolve_steps", physics.DefaultMaxResolveSteps)
	v.SetDefault("physics.separation_epsilon", physics.DefaultSeparationEpsilon)
	v.SetDefault("physics.strict", false)

	// -- Host --
	v.SetDefault("loop.frame_interval", engine.DefaultFrameInterval)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.3)
	v.SetDefault("audio.max_per_second", 20.0)
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.file", "logs/linebounce.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)

	v.SetDefault("seed", 0)
}

// NewDefaultConfig returns the configuration with nothing overridden
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// Prepare registers defaults, the config file and environment overrides on v
// An empty file searches ./linebounce.{yaml,toml,...} and tolerates its absence
func Prepare(v *viper.Viper, file string) error {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("linebounce")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// NewConfigFromViper decodes and validates the settings held by v
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is Prepare followed by NewConfigFromViper on a fresh viper instance
func Load(file string) (*Config, error) {
	v := viper.New()
	if err := Prepare(v, file); err != nil {
		return nil, err
	}
	return NewConfigFromViper(v)
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0, "world.width must be positive, got %v", c.World.Width)
	check(c.World.Height > 0, "world.height must be positive, got %v", c.World.Height)
	check(c.World.MaxCircles >= 0, "world.max_circles must not be negative, got %d", c.World.MaxCircles)
	check(c.Grid.Rows >= 0 && c.Grid.Cols >= 0, "grid.rows and grid.cols must not be negative")
	check(c.Grid.Span > 0, "grid.span must be positive, got %v", c.Grid.Span)
	for _, cell := range c.Grid.Omit {
		check(len(cell) == 2, "grid.omit entries must be [col, row] pairs, got %v", cell)
	}
	check(c.Circle.Radius > 0, "circle.radius must be positive, got %v", c.Circle.Radius)
	check(c.Spawn.Interval > 0, "spawn.interval must be positive, got %v", c.Spawn.Interval)
	check(c.Physics.TimeScale > 0, "physics.time_scale must be positive, got %v", c.Physics.TimeScale)
	check(c.Physics.MaxResolveSteps >= 0, "physics.max_resolve_steps must not be negative, got %d", c.Physics.MaxResolveSteps)
	check(c.Physics.SeparationEpsilon > 0, "physics.separation_epsilon must be positive, got %v", c.Physics.SeparationEpsilon)
	check(c.Loop.FrameInterval > 0, "loop.frame_interval must be positive, got %v", c.Loop.FrameInterval)
	check(c.Audio.Volume >= 0, "audio.volume must not be negative, got %v", c.Audio.Volume)
	check(c.Audio.MaxPerSecond >= 0, "audio.max_per_second must not be negative, got %v", c.Audio.MaxPerSecond)
	if c.Log.Enabled {
		check(c.Log.File != "", "log.file is required when logging is enabled")
		check(c.Log.MaxSizeMB > 0, "log.max_size_mb must be positive, got %d", c.Log.MaxSizeMB)
		check(c.Log.MaxBackups >= 0, "log.max_backups must not be negative, got %d", c.Log.MaxBackups)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// WorldOptions converts the configuration into engine options
func (c *Config) WorldOptions() engine.Options {
	omit := make([]engine.GridCell, 0, len(c.Grid.Omit))
	for _, cell := range c.Grid.Omit {
		if len(cell) == 2 {
			omit = append(omit, engine.GridCell{Col: cell[0], Row: cell[1]})
		}
	}

	return engine.Options{
		Width:         c.World.Width,
		Height:        c.World.Height,
		Radius:        c.Circle.Radius,
		SpawnInterval: c.Spawn.Interval,
		MaxCircles:    c.World.MaxCircles,
		Grid: engine.GridOptions{
			Cols:        c.Grid.Cols,
			Rows:        c.Grid.Rows,
			Spacing:     c.Grid.Spacing,
			Span:        c.Grid.Span,
			RotateSpeed: c.Grid.RotateSpeed,
			Omit:        omit,
		},
		Kinematics: physics.Kinematics{
			Gravity:   c.Physics.Gravity,
			TimeScale: c.Physics.TimeScale,
		},
		MaxResolveSteps:   c.Physics.MaxResolveSteps,
		SeparationEpsilon: c.Physics.SeparationEpsilon,
		Strict:            c.Physics.Strict,
		Seed:              c.Seed,
	}
}

// YAML renders the configuration in the file format Load accepts
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("error marshaling config: %w", err)
	}
	return out, nil
}
