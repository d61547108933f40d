// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package style

import (
	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/glyph"
)

// layout places the large digits of a dual style. Columns are 0-based, a
// negative column disables the element.
type layout struct {
	table      *glyph.Table
	hour       int
	minute     int
	second     int
	separators []int
	// bell is drawn at bellCol, row 0 on odd seconds and row 1 on even ones.
	bell    glyph.Cell
	bellCol int
	// meridiemCol holds the am/pm marker in twelve hour mode. When it equals
	// bellCol the marker replaces the bell.
	meridiemCol int
	// alarmCol shows the alarm time and a blinking ALARM text.
	alarmCol int
}

var (
	thickLayout = layout{
		table:       &glyph.Thick,
		hour:        0,
		minute:      8,
		second:      -1,
		separators:  []int{7},
		bell:        glyph.Cell(glyph.BellSlot),
		bellCol:     15,
		meridiemCol: 15,
		alarmCol:    -1,
	}
	bevelLayout = layout{
		table:       &glyph.Bevel,
		hour:        0,
		minute:      8,
		second:      -1,
		separators:  []int{7},
		bell:        'A',
		bellCol:     15,
		meridiemCol: 15,
		alarmCol:    -1,
	}
	trekLayout = layout{
		table:       &glyph.Trek,
		hour:        0,
		minute:      5,
		second:      10,
		separators:  []int{4, 9},
		bell:        'A',
		bellCol:     15,
		meridiemCol: 14,
		alarmCol:    -1,
	}
	thinLayout = layout{
		table:       &glyph.Thin,
		hour:        0,
		minute:      3,
		second:      6,
		separators:  []int{2, 5},
		bellCol:     -1,
		meridiemCol: 9,
		alarmCol:    11,
	}
)

// dual draws hours, minutes and optionally seconds with large digits.
type dual struct {
	style Style
	l     layout
	opts  Options
}

func newDual(st Style, l layout, opts Options) Renderer {
	return &dual{style: st, l: l, opts: opts}
}

func (d *dual) Style() Style {
	return d.style
}

func (d *dual) Setup(s Surface) error {
	p := NewPrinter(s)
	p.programTable(d.l.table)
	return p.Err()
}

func (d *dual) Render(s Surface, st *clock.State) error {
	now := st.Now.Clamped()
	alarm := st.Alarm.Clamped()
	p := NewPrinter(s)

	hour, lead := now.Hour, true
	if d.opts.TwelveHour {
		hour, lead = hour12(hour), false
	}
	d.number(p, d.l.hour, hour, lead)
	d.number(p, d.l.minute, now.Minute, true)
	if d.l.second >= 0 {
		d.number(p, d.l.second, now.Second, true)
	}

	sep := glyph.Space
	if odd(now.Second) {
		sep = d.l.table.Separator
	}
	for _, col := range d.l.separators {
		p.Cells(col, 0, sep)
		p.Cells(col, 1, sep)
	}

	meridiemShown := d.opts.TwelveHour && d.l.meridiemCol >= 0
	if meridiemShown {
		p.Text(d.l.meridiemCol, 0, meridiem(now.Hour))
		p.Text(d.l.meridiemCol, 1, "m")
	}
	if d.l.bellCol >= 0 && !(meridiemShown && d.l.meridiemCol == d.l.bellCol) {
		p.bell(d.l.bellCol, 0, d.l.bell, alarm.Enabled, odd(now.Second))
		p.bell(d.l.bellCol, 1, d.l.bell, alarm.Enabled, !odd(now.Second))
	}
	if d.l.alarmCol >= 0 {
		p.Text(d.l.alarmCol, 0, twoDigits(alarm.Hour)+":"+twoDigits(alarm.Minute))
		flag := "     "
		if alarm.Enabled && odd(now.Second) {
			flag = "ALARM"
		}
		p.Text(d.l.alarmCol, 1, flag)
	}
	return p.Err()
}

// number draws a two digit value at col. Without lead a zero tens digit is
// drawn blank.
func (d *dual) number(p *Printer, col, v int, lead bool) {
	t, u := v/10, v%10
	if t == 0 && !lead {
		t = glyph.Blank
	}
	d.digit(p, col, t)
	d.digit(p, col+d.l.table.Advance, u)
}

func (d *dual) digit(p *Printer, col, v int) {
	for y, row := range d.l.table.Grid(v) {
		p.Cells(col, y, row...)
	}
}
