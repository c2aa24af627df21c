// Package config loads and holds the application configuration for the
// gestureview tooling. The library core takes its parameters as plain
// structs; this package maps config files and environment variables onto
// them for the CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds the entire tool configuration.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	View   ViewConfig   `mapstructure:"view" yaml:"view"`
	Replay ReplayConfig `mapstructure:"replay" yaml:"replay"`
}

// LoggerConfig configures the zap logger bootstrap.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	AddSource   bool   `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// ViewConfig holds the viewport engine parameters.
type ViewConfig struct {
	// MaxScale is the fixed upper zoom bound.
	MaxScale float64 `mapstructure:"max_scale" yaml:"max_scale"`
	// AnimationDurationMs applies to all smooth transitions.
	AnimationDurationMs int `mapstructure:"animation_duration_ms" yaml:"animation_duration_ms"`
	// ImagePadding is extra scrollable margin beyond the content edges,
	// in base content pixels.
	ImagePadding int `mapstructure:"image_padding" yaml:"image_padding"`
	// FlingFriction is the fling deceleration in px/s^2.
	FlingFriction float64 `mapstructure:"fling_friction" yaml:"fling_friction"`
}

// ReplayConfig holds the gesture replay driver parameters.
type ReplayConfig struct {
	// FrameRate paces the frame loop, in frames per second.
	FrameRate int `mapstructure:"frame_rate" yaml:"frame_rate"`
	// ContentWidth and ContentHeight are the base content dimensions the
	// replayed gestures act on.
	ContentWidth  int `mapstructure:"content_width" yaml:"content_width"`
	ContentHeight int `mapstructure:"content_height" yaml:"content_height"`
	// ViewportWidth and ViewportHeight are the simulated viewport size.
	ViewportWidth  int `mapstructure:"viewport_width" yaml:"viewport_width"`
	ViewportHeight int `mapstructure:"viewport_height" yaml:"viewport_height"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Logger: LoggerConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "gestureview",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      7,
		},
		View: ViewConfig{
			MaxScale:            2.0,
			AnimationDurationMs: 400,
			ImagePadding:        0,
			FlingFriction:       4000.0,
		},
		Replay: ReplayConfig{
			FrameRate:      60,
			ContentWidth:   1024,
			ContentHeight:  1024,
			ViewportWidth:  640,
			ViewportHeight: 480,
		},
	}
}

// setDefaults registers the default values with viper so partial config
// files inherit the rest.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
	v.SetDefault("logger.service_name", d.Logger.ServiceName)
	v.SetDefault("logger.max_size", d.Logger.MaxSize)
	v.SetDefault("logger.max_backups", d.Logger.MaxBackups)
	v.SetDefault("logger.max_age", d.Logger.MaxAge)
	v.SetDefault("view.max_scale", d.View.MaxScale)
	v.SetDefault("view.animation_duration_ms", d.View.AnimationDurationMs)
	v.SetDefault("view.image_padding", d.View.ImagePadding)
	v.SetDefault("view.fling_friction", d.View.FlingFriction)
	v.SetDefault("replay.frame_rate", d.Replay.FrameRate)
	v.SetDefault("replay.content_width", d.Replay.ContentWidth)
	v.SetDefault("replay.content_height", d.Replay.ContentHeight)
	v.SetDefault("replay.viewport_width", d.Replay.ViewportWidth)
	v.SetDefault("replay.viewport_height", d.Replay.ViewportHeight)
}

// Load reads the configuration from the given file, or from
// gestureview.yaml in the working directory or home directory when the path
// is empty. Environment variables prefixed GESTUREVIEW_ override file values.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigName("gestureview")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("GESTUREVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit file or a
		// malformed one is not.
		if cfgFile != "" {
			return Config{}, fmt.Errorf("failed to read config file %q: %w", cfgFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
