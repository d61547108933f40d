// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package style

import (
	"fmt"

	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/glyph"
)

const (
	thermometerSlot byte = 2
	dropletSlot     byte = 3
)

// thermometer shows the environment reading next to the time:
//
//	HH:MM  t23C d45%
//	DD/MM/YY AH:AM b
type thermometer struct{}

func newThermometer(Options) Renderer {
	return thermometer{}
}

func (thermometer) Style() Style {
	return Thermometer
}

func (thermometer) Setup(s Surface) error {
	p := NewPrinter(s)
	p.Program(glyph.BellSlot, glyph.Bell)
	p.Program(thermometerSlot, glyph.Thermometer)
	p.Program(dropletSlot, glyph.Droplet)
	return p.Err()
}

func (thermometer) Render(s Surface, st *clock.State) error {
	now := st.Now.Clamped()
	alarm := st.Alarm.Clamped()
	p := NewPrinter(s)

	temp, hum := "--", "--"
	if st.Env.Valid {
		env := st.Env.Clamped()
		temp, hum = fmt.Sprintf("%2d", env.Temperature), fmt.Sprintf("%2d", env.Humidity)
	}
	p.Text(0, 0, twoDigits(now.Hour)+":"+twoDigits(now.Minute)+"  ")
	p.Cells(7, 0, glyph.Cell(thermometerSlot))
	p.Text(8, 0, temp+"C ")
	p.Cells(12, 0, glyph.Cell(dropletSlot))
	p.Text(13, 0, hum+"%")

	p.Text(0, 1, twoDigits(now.Day)+"/"+twoDigits(now.Month)+"/"+twoDigits(now.Year%100)+" "+
		twoDigits(alarm.Hour)+":"+twoDigits(alarm.Minute)+" ")
	p.bell(15, 1, glyph.Cell(glyph.BellSlot), alarm.Enabled, odd(now.Second))
	return p.Err()
}
