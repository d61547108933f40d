// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/GermanBionicSystems/lcdclock/am2320"
	"github.com/GermanBionicSystems/lcdclock/buttons"
	"github.com/GermanBionicSystems/lcdclock/buzzer"
	"github.com/GermanBionicSystems/lcdclock/clockface"
	"github.com/GermanBionicSystems/lcdclock/config"
	"github.com/GermanBionicSystems/lcdclock/ds3231"
	"github.com/GermanBionicSystems/lcdclock/envsensor"
	"github.com/GermanBionicSystems/lcdclock/hd44780"
	"github.com/GermanBionicSystems/lcdclock/lcdsim"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

type displayDev interface {
	clockface.Display
	fmt.Stringer
}

type timeDev interface {
	clockface.TimeSource
	fmt.Stringer
}

// hardware holds the opened devices. Optional devices are nil when absent.
type hardware struct {
	display displayDev
	time    timeDev
	buttons *buttons.Reader
	buzzer  *buzzer.Dev
	sensor  *envsensor.Poller
	sim     *simulator

	buses     map[string]i2c.BusCloser
	resources []conn.Resource
}

func openHardware(conf *config.Config, log zerolog.Logger) (*hardware, error) {
	hw := &hardware{buses: map[string]i2c.BusCloser{}}
	if conf.Display.Driver == "sim" {
		hw.openSim(conf)
		return hw, nil
	}
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	if err := hw.open(conf, log); err != nil {
		_ = hw.Close()
		return nil, err
	}
	return hw, nil
}

func (hw *hardware) openSim(conf *config.Config) {
	opts := lcdsim.Opts{Rows: conf.Display.Rows, Cols: conf.Display.Cols}
	if !conf.Sim.Terminal {
		opts.W = io.Discard
	}
	dev := lcdsim.New(&opts)
	hw.display = dev
	hw.time = clockface.NewSystemClock(nil, nil)
	hw.sim = &simulator{
		dev:      dev,
		fs:       afero.NewOsFs(),
		png:      conf.Sim.PNG,
		scale:    conf.Sim.Scale,
		terminal: conf.Sim.Terminal,
	}
	hw.resources = append(hw.resources, dev)
}

func (hw *hardware) open(conf *config.Config, log zerolog.Logger) error {
	b, err := hw.bus(conf.Display.Bus)
	if err != nil {
		return err
	}
	lcd, err := hd44780.NewPCF8574Backpack(b, conf.Display.Address, conf.Display.Rows, conf.Display.Cols)
	if err != nil {
		return err
	}
	hw.display = lcd
	hw.resources = append(hw.resources, lcd)

	hw.time = clockface.NewSystemClock(nil, nil)
	if conf.RTC.Enabled {
		if rtc, err := hw.openRTC(conf.RTC); err != nil {
			log.Warn().Err(err).Msg("no RTC, using the system clock")
		} else {
			hw.time = rtc
		}
	}

	if conf.Sensor.Enabled {
		if err := hw.openSensor(conf.Sensor); err != nil {
			log.Warn().Err(err).Msg("no environment sensor")
		}
	}

	var pins buttons.Pins
	for i, name := range []string{conf.Buttons.Mode, conf.Buttons.Increment, conf.Buttons.Decrement, conf.Buttons.Tilt} {
		p, err := pin(name)
		if err != nil {
			return fmt.Errorf("%s button: %w", buttons.Button(i), err)
		}
		if p != nil {
			pins[i] = p
		}
	}
	if hw.buttons, err = buttons.New(pins, conf.Buttons.Debounce); err != nil {
		return err
	}

	p, err := pin(conf.Buzzer.Pin)
	if err != nil {
		return fmt.Errorf("buzzer: %w", err)
	}
	if p != nil {
		if hw.buzzer, err = buzzer.New(p, nil); err != nil {
			return err
		}
		hw.resources = append(hw.resources, hw.buzzer)
	}
	return nil
}

func (hw *hardware) openRTC(c config.RTC) (*ds3231.Dev, error) {
	b, err := hw.bus(c.Bus)
	if err != nil {
		return nil, err
	}
	rtc, err := ds3231.New(b, c.Address)
	if err != nil {
		return nil, err
	}
	hw.resources = append(hw.resources, rtc)
	return rtc, nil
}

func (hw *hardware) openSensor(c config.Sensor) error {
	b, err := hw.bus(c.Bus)
	if err != nil {
		return err
	}
	dev, err := am2320.NewI2C(b, c.Address, nil)
	if err != nil {
		return err
	}
	hw.resources = append(hw.resources, dev)
	hw.sensor = envsensor.New(dev, c.Interval)
	return nil
}

// bus opens the I²C bus name once. "" is the first bus available.
func (hw *hardware) bus(name string) (i2c.Bus, error) {
	if b, ok := hw.buses[name]; ok {
		return b, nil
	}
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, err
	}
	hw.buses[name] = b
	return b, nil
}

// pin returns the GPIO named name, or nil for "".
func pin(name string) (gpio.PinIO, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("unknown pin %q", name)
	}
	return p, nil
}

// Close halts the devices then closes the buses.
func (hw *hardware) Close() error {
	var errs []error
	for i := len(hw.resources) - 1; i >= 0; i-- {
		errs = append(errs, hw.resources[i].Halt())
	}
	for _, b := range hw.buses {
		errs = append(errs, b.Close())
	}
	return errors.Join(errs...)
}
