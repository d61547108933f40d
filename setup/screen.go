// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package setup

import (
	"fmt"

	"github.com/GermanBionicSystems/lcdclock/style"
)

// Marker is drawn in front of the active field.
const Marker = '>'

// Render draws the page of the active field. The display is cleared when the
// page changes. Every marker cell of the page is rewritten so that only the
// active field carries Marker. Render does nothing while idle.
func (m *Machine) Render(s style.Surface) error {
	if m.active < 0 {
		return nil
	}
	spec := &Sequence[m.active]
	p := style.NewPrinter(s)
	if !m.drawnValid || m.drawn != spec.Screen {
		p.Clear()
		if p.Err() != nil {
			return p.Err()
		}
		m.drawn, m.drawnValid = spec.Screen, true
	}
	v := &m.values
	switch spec.Screen {
	case TimeScreen:
		p.Text(0, 0, clockLine(v.Time.Hour, v.Time.Minute))
		p.Text(0, 1, dateLine(v.Time.Day, v.Time.Month, v.Time.Year))
	case BirthScreen:
		p.Text(0, 0, " SET BIRTH DATE ")
		p.Text(0, 1, dateLine(v.Birth.Day, v.Birth.Month, v.Birth.Year))
	case AlarmScreen:
		p.Text(0, 0, " SET ALARM TIME ")
		p.Text(0, 1, clockLine(v.Alarm.Hour, v.Alarm.Minute))
	}
	p.Bytes(spec.Marker.Col, spec.Marker.Row, Marker)
	if err := p.Err(); err != nil {
		m.drawnValid = false
		return err
	}
	return nil
}

// Banner draws the notice shown when a session starts.
func Banner(s style.Surface) error {
	p := style.NewPrinter(s)
	p.Clear()
	p.Text(0, 0, "------SET------")
	p.Text(0, 1, "-TIME and DATE-")
	return p.Err()
}

// Saving draws the notice shown after a commit.
func Saving(s style.Surface) error {
	p := style.NewPrinter(s)
	p.Clear()
	p.Text(0, 0, "Saving....")
	return p.Err()
}

// clockLine lays out HH at column 5 and MM at column 10, with the marker
// cells at 4 and 9 left blank.
func clockLine(h, m int) string {
	return fmt.Sprintf("     %02d : %02d    ", h, m)
}

// dateLine lays out DD at 1, MM at 6 and YYYY at 11, with the marker cells
// at 0, 5 and 10 left blank.
func dateLine(d, m, y int) string {
	return fmt.Sprintf(" %02d / %02d / %04d ", d, m, y)
}
