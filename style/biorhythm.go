// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package style

import (
	"github.com/GermanBionicSystems/lcdclock/biorhythm"
	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/glyph"
)

// Upper bar slot of each cycle. The lower bar uses the next slot.
var barSlots = [3]byte{2, 4, 6}

// Cycle initials written left of the lower bars.
var barLabels = [3]string{"P", "E", "I"}

// bio shows the time and three cycle bars:
//
//	HH:MM:SS u  u  u
//	AH:AM b Pl El Il
type bio struct {
	// last holds the value currently loaded in each bar pair, -1 if none.
	last [3]int
}

func newBiorhythm(Options) Renderer {
	b := &bio{}
	b.reset()
	return b
}

func (b *bio) reset() {
	b.last = [3]int{-1, -1, -1}
}

func (b *bio) Style() Style {
	return Biorhythm
}

func (b *bio) Setup(s Surface) error {
	b.reset()
	p := NewPrinter(s)
	p.Program(glyph.BellSlot, glyph.Bell)
	return p.Err()
}

func (b *bio) Render(s Surface, st *clock.State) error {
	now := st.Now.Clamped()
	alarm := st.Alarm.Clamped()
	reading := biorhythm.Compute(now.Date(), st.Birth)
	p := NewPrinter(s)

	for i, v := range reading.Values() {
		if v == b.last[i] {
			continue
		}
		upper, lower := biorhythm.Bars(v)
		p.Program(barSlots[i], upper)
		p.Program(barSlots[i]+1, lower)
		if p.Err() != nil {
			b.reset()
			return p.Err()
		}
		b.last[i] = v
	}

	p.Text(0, 0, twoDigits(now.Hour)+":"+twoDigits(now.Minute)+":"+twoDigits(now.Second)+" ")
	p.Text(0, 1, twoDigits(alarm.Hour)+":"+twoDigits(alarm.Minute)+"   ")
	for i, slot := range barSlots {
		col := 9 + 3*i
		p.Cells(col, 0, glyph.Cell(slot))
		if i < len(barSlots)-1 {
			p.Text(col+1, 0, "  ")
		}
		p.Text(col-1, 1, barLabels[i])
		p.Cells(col, 1, glyph.Cell(slot+1))
		if i < len(barSlots)-1 {
			p.Text(col+1, 1, " ")
		}
	}
	p.bell(6, 1, glyph.Cell(glyph.BellSlot), alarm.Enabled, odd(now.Second))
	return p.Err()
}
