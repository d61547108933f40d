// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package config loads the configuration of the clock from a YAML file and
// LCDCLOCK_ environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables. Nested keys are joined with
// underscores, for example LCDCLOCK_LOGGER_LEVEL.
const EnvPrefix = "LCDCLOCK"

// Display selects the character display.
type Display struct {
	// Driver is hd44780 for a PCF8574 backpack, or sim for the emulator.
	Driver  string `mapstructure:"driver" validate:"required|in:hd44780,sim"`
	Bus     string `mapstructure:"bus"`
	Address uint16 `mapstructure:"address" validate:"max:127"`
	Rows    int    `mapstructure:"rows" validate:"required|min:2|max:4"`
	Cols    int    `mapstructure:"cols" validate:"required|min:16|max:40"`
}

// RTC selects the real time clock. When disabled the host clock is used.
type RTC struct {
	Enabled bool   `mapstructure:"enabled"`
	Bus     string `mapstructure:"bus"`
	Address uint16 `mapstructure:"address" validate:"max:127"`
}

// Sensor selects the temperature and humidity sensor.
type Sensor struct {
	Enabled  bool          `mapstructure:"enabled"`
	Bus      string        `mapstructure:"bus"`
	Address  uint16        `mapstructure:"address" validate:"max:127"`
	Interval time.Duration `mapstructure:"interval"`
}

// Buttons names the input pins, as known to gpioreg. An empty name leaves
// the input unconnected.
type Buttons struct {
	Mode         string        `mapstructure:"mode"`
	Increment    string        `mapstructure:"increment"`
	Decrement    string        `mapstructure:"decrement"`
	Tilt         string        `mapstructure:"tilt"`
	Debounce     time.Duration `mapstructure:"debounce"`
	EditDebounce time.Duration `mapstructure:"editDebounce"`
}

// Buzzer names the PWM pin of the buzzer. Empty disables the alarm sound.
type Buzzer struct {
	Pin string `mapstructure:"pin"`
}

// Backlight sets how the backlight follows user activity.
type Backlight struct {
	Mode    string        `mapstructure:"mode" validate:"required|in:timeout,always,off"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Clock tunes the faces.
type Clock struct {
	TwelveHour bool `mapstructure:"twelveHour"`
}

// Settings locates the persisted settings.
type Settings struct {
	Path string `mapstructure:"path" validate:"required"`
}

// Logger configures zerolog.
type Logger struct {
	Level  string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic,disabled"`
	Pretty bool   `mapstructure:"pretty"`
}

// Sim configures the emulated display.
type Sim struct {
	// PNG is the path of a snapshot rewritten every second. Empty disables it.
	PNG string `mapstructure:"png"`
	// Terminal paints the display on stdout.
	Terminal bool `mapstructure:"terminal"`
	Scale    int  `mapstructure:"scale" validate:"min:1|max:32"`
}

// Config is the whole configuration.
type Config struct {
	Display   Display   `mapstructure:"display"`
	RTC       RTC       `mapstructure:"rtc"`
	Sensor    Sensor    `mapstructure:"sensor"`
	Buttons   Buttons   `mapstructure:"buttons"`
	Buzzer    Buzzer    `mapstructure:"buzzer"`
	Backlight Backlight `mapstructure:"backlight"`
	Clock     Clock     `mapstructure:"clock"`
	Settings  Settings  `mapstructure:"settings"`
	Logger    Logger    `mapstructure:"logger"`
	Sim       Sim       `mapstructure:"sim"`

	// Path is the file the configuration was read from, if any.
	Path string `mapstructure:"-"`
}

var defaults = map[string]any{
	"display.driver":       "hd44780",
	"display.bus":          "",
	"display.address":      0x27,
	"display.rows":         2,
	"display.cols":         16,
	"rtc.enabled":          true,
	"rtc.bus":              "",
	"rtc.address":          0x68,
	"sensor.enabled":       true,
	"sensor.bus":           "",
	"sensor.address":       0x5c,
	"sensor.interval":      "6s",
	"buttons.mode":         "GPIO17",
	"buttons.increment":    "GPIO27",
	"buttons.decrement":    "GPIO22",
	"buttons.tilt":         "GPIO23",
	"buttons.debounce":     "500ms",
	"buttons.editDebounce": "350ms",
	"buzzer.pin":           "GPIO18",
	"backlight.mode":       "timeout",
	"backlight.timeout":    "10s",
	"clock.twelveHour":     false,
	"settings.path":        "/var/lib/lcdclock/settings.bin",
	"logger.level":         "info",
	"logger.pretty":        true,
	"sim.png":              "",
	"sim.terminal":         true,
	"sim.scale":            4,
}

// Load reads the YAML file at path on fs, overlays the environment and
// validates the result. An empty path uses the defaults and the environment
// only.
func Load(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("config: unable to decode into config struct: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	conf.Path = path
	return &conf, nil
}

// Validate checks the struct tags of c and the durations, which must be
// positive.
func (c *Config) Validate() error {
	val := validate.Struct(c)
	if !val.Validate() {
		return fmt.Errorf("config: %w", val.Errors)
	}
	for name, d := range map[string]time.Duration{
		"sensor.interval":      c.Sensor.Interval,
		"buttons.debounce":     c.Buttons.Debounce,
		"buttons.editDebounce": c.Buttons.EditDebounce,
		"backlight.timeout":    c.Backlight.Timeout,
	} {
		if d <= 0 {
			return fmt.Errorf("config: %s must be positive, got %s", name, d)
		}
	}
	return nil
}
