// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
)

// bus transfers 4 bit halves of instructions (rs false) and data (rs true)
// to the controller.
type bus interface {
	fmt.Stringer
	nibble(rs bool, n byte) error
	send(rs bool, b byte) error
	backlight(on bool) error
	halt() error
}

// gpioBus drives the controller through 4 data lines and discrete register
// select and enable lines.
type gpioBus struct {
	data gpio.Group
	rs   gpio.PinOut
	en   gpio.PinOut
	bl   display.DisplayBacklight
}

// NewGPIO returns a display wired to GPIO lines.
//
// The first 4 pins of data must be connected to D4-D7 of the display. bl may
// be nil when the backlight is not switchable.
func NewGPIO(data gpio.Group, rs, en gpio.PinOut, bl display.DisplayBacklight, rows, cols int) (*Dev, error) {
	if n := len(data.Pins()); n < 4 {
		return nil, fmt.Errorf("hd44780: need 4 data pins, got %d", n)
	}
	if err := en.Out(gpio.Low); err != nil {
		return nil, wrap(err)
	}
	return newDev(&gpioBus{data: data, rs: rs, en: en, bl: bl}, rows, cols)
}

func (g *gpioBus) String() string {
	return g.data.String()
}

func (g *gpioBus) nibble(rs bool, n byte) error {
	if err := g.rs.Out(gpio.Level(rs)); err != nil {
		return err
	}
	if err := g.data.Out(gpio.GPIOValue(n&0x0f), 0x0f); err != nil {
		return err
	}
	if err := g.en.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(2 * time.Microsecond)
	return g.en.Out(gpio.Low)
}

func (g *gpioBus) send(rs bool, b byte) error {
	if err := g.nibble(rs, b>>4); err != nil {
		return err
	}
	return g.nibble(rs, b)
}

func (g *gpioBus) backlight(on bool) error {
	if g.bl == nil {
		return nil
	}
	var i display.Intensity
	if on {
		i = 0xff
	}
	return g.bl.Backlight(i)
}

func (g *gpioBus) halt() error {
	return g.data.Halt()
}
