// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package style

import (
	"time"

	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/glyph"
)

// FrameInterval is the time each hourglass frame stays on screen.
const FrameInterval = 200 * time.Millisecond

const hourglassSlot byte = 0

var (
	units = [10]string{"HUNDRED", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE"}
	teens = [10]string{"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN", "SEVENTEEN", "EIGHTEEN", "NINETEEN"}
	tens  = [6]string{"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY"}
)

// NumberToWord spells v, clamped to 0-59, the way a military clock is read.
// An hour of zero reads TWELVE. A minute below ten is prefixed with ZERO and
// minute zero reads HUNDRED.
func NumberToWord(v int, minutes bool) string {
	v = clock.Clamp(v, 0, 59)
	if v == 0 && !minutes {
		return teens[2]
	}
	t, u := v/10, v%10
	switch {
	case t == 0 && minutes && u != 0:
		return "ZERO " + units[u]
	case t == 0:
		return units[u]
	case t == 1:
		return teens[u]
	case u == 0:
		return tens[t]
	default:
		return tens[t] + " " + units[u]
	}
}

// word spells the hour on row 0 and the minutes on row 1:
//
//	SEVEN        xSS
//	FIFTY TWO     b
type word struct {
	opts Options
	// frame is the next hourglass frame, shown once due has passed.
	frame int
	due   time.Time
}

func newWord(opts Options) Renderer {
	return &word{opts: opts}
}

func (w *word) Style() Style {
	return Word
}

func (w *word) Setup(s Surface) error {
	w.frame = 0
	w.due = time.Time{}
	p := NewPrinter(s)
	p.Program(glyph.BellSlot, glyph.Bell)
	p.Program(hourglassSlot, glyph.Hourglass[0])
	return p.Err()
}

func (w *word) Render(s Surface, st *clock.State) error {
	now := st.Now.Clamped()
	alarm := st.Alarm.Clamped()
	p := NewPrinter(s)

	hour := now.Hour
	if w.opts.TwelveHour {
		hour = hour12(hour)
	}
	p.Padded(0, 0, 13, NumberToWord(hour, false))
	p.Padded(0, 1, 14, NumberToWord(now.Minute, true))

	if t := w.opts.Clock.Now(); !t.Before(w.due) {
		p.Program(hourglassSlot, glyph.Hourglass[w.frame])
		w.frame = (w.frame + 1) % len(glyph.Hourglass)
		w.due = t.Add(FrameInterval)
	}
	p.Cells(13, 0, glyph.Cell(hourglassSlot))
	p.Text(14, 0, twoDigits(now.Second))

	bell := glyph.Cell(glyph.BellSlot)
	p.bell(14, 1, bell, alarm.Enabled, odd(now.Second))
	p.bell(15, 1, bell, alarm.Enabled, !odd(now.Second))
	return p.Err()
}
