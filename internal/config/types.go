package config

import (
	"io"
	"time"

	"github.com/alexisbeaulieu97/elevate/internal/logger"
)

// Config is the root of an elevate configuration file.
type Config struct {
	Touch  TouchConfig  `yaml:"touch"`
	Banner BannerConfig `yaml:"banner"`
	Theme  ThemeConfig  `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
}

// TouchConfig tunes tap recognition and the terminal-to-touch mapping.
type TouchConfig struct {
	// Threshold is the largest press-to-release distance, in touch units,
	// that still counts as a tap.
	Threshold float64 `yaml:"threshold" validate:"gt=0"`
	// CellWidth and CellHeight give the size of one terminal cell in touch
	// units.
	CellWidth  float64 `yaml:"cell_width" validate:"gt=0"`
	CellHeight float64 `yaml:"cell_height" validate:"gt=0"`
	// ScrollSlop is the vertical travel that turns a touch into a scroll.
	ScrollSlop float64 `yaml:"scroll_slop" validate:"gt=0"`
}

// BannerConfig controls notification banners.
type BannerConfig struct {
	// Duration before a banner dismisses itself. Zero keeps banners up until
	// they are dismissed.
	Duration time.Duration `yaml:"duration" validate:"gte=0"`
	// SwipeDistance is the upward travel, in touch units, that dismisses a
	// banner.
	SwipeDistance float64 `yaml:"swipe_distance" validate:"gt=0"`
	// ReduceMotion shows and hides banners without the slide animation.
	ReduceMotion bool `yaml:"reduce_motion"`
}

type ThemeConfig struct {
	Mode string `yaml:"mode" validate:"theme_mode"`
}

type LogConfig struct {
	Level         string `yaml:"level" validate:"log_level"`
	HumanReadable bool   `yaml:"human_readable"`
	// File receives log output instead of stderr. The demo always needs one,
	// since the alternate screen owns the terminal.
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Touch: TouchConfig{
			Threshold:  20,
			CellWidth:  8,
			CellHeight: 16,
			ScrollSlop: 16,
		},
		Banner: BannerConfig{
			Duration:      5 * time.Second,
			SwipeDistance: 50,
		},
		Theme: ThemeConfig{Mode: "auto"},
		Log: LogConfig{
			Level:         "info",
			HumanReadable: true,
		},
	}
}

// LoggerOptions maps the log section onto logger options. w is used when
// no file is configured.
func (c LogConfig) LoggerOptions(w io.Writer) logger.Options {
	return logger.Options{
		Level:         c.Level,
		HumanReadable: c.HumanReadable,
		Writer:        w,
		File:          c.File,
	}
}
