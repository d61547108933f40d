// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package style

import (
	"fmt"
	"strings"

	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/glyph"
	"github.com/jonboulle/clockwork"
)

// Display geometry.
const (
	Rows = 2
	Cols = 16
)

// Surface is a character display with programmable tiles.
//
// MoveTo is 1-based like the periph text display drivers.
type Surface interface {
	Clear() error
	MoveTo(row, col int) error
	Write(p []byte) (int, error)
	CreateChar(slot byte, t glyph.Tile) error
}

// Renderer draws one style.
type Renderer interface {
	Style() Style
	// Setup programs the tiles of the style. It must be called after every
	// style switch and before the first Render.
	Setup(s Surface) error
	// Render draws a full frame of st.
	Render(s Surface, st *clock.State) error
}

// Style selects a Renderer.
type Style uint8

const (
	Standard Style = iota
	DualThick
	DualBevel
	DualTrek
	DualThin
	Word
	Biorhythm
	Thermometer

	// NumStyles is the number of styles.
	NumStyles = int(Thermometer) + 1
)

var styleNames = [NumStyles]string{
	"standard",
	"dual-thick",
	"dual-bevel",
	"dual-trek",
	"dual-thin",
	"word",
	"biorhythm",
	"thermometer",
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return int(s) < NumStyles
}

// Next returns the style after s, wrapping from the last to Standard.
func (s Style) Next() Style {
	if !s.Valid() || s == Thermometer {
		return Standard
	}
	return s + 1
}

func (s Style) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Style(%d)", uint8(s))
	}
	return styleNames[s]
}

// ParseStyle returns the style named name. Case is ignored.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(n, name) {
			return Style(i), nil
		}
	}
	return Standard, fmt.Errorf("style: unknown style %q", name)
}

// Options tunes the renderers.
type Options struct {
	// TwelveHour shows the hour as 1-12 with a blank tens digit on the dual
	// styles, with an am/pm marker.
	TwelveHour bool
	// Clock paces the word style animation. Defaults to the real clock.
	Clock clockwork.Clock
}

var constructors = [NumStyles]func(Options) Renderer{
	Standard:    newStandard,
	DualThick:   func(o Options) Renderer { return newDual(DualThick, thickLayout, o) },
	DualBevel:   func(o Options) Renderer { return newDual(DualBevel, bevelLayout, o) },
	DualTrek:    func(o Options) Renderer { return newDual(DualTrek, trekLayout, o) },
	DualThin:    func(o Options) Renderer { return newDual(DualThin, thinLayout, o) },
	Word:        newWord,
	Biorhythm:   newBiorhythm,
	Thermometer: newThermometer,
}

// New returns the renderer of st. An invalid style falls back to Standard.
func New(st Style, opts Options) Renderer {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if !st.Valid() {
		st = Standard
	}
	return constructors[st](opts)
}

// Printer writes to a Surface with 0-based coordinates and keeps the first
// error. Later calls are no-ops once an error occurred.
type Printer struct {
	s   Surface
	err error
}

// NewPrinter returns a Printer over s.
func NewPrinter(s Surface) *Printer {
	return &Printer{s: s}
}

// Err returns the first error met.
func (p *Printer) Err() error {
	return p.err
}

// Clear clears the display.
func (p *Printer) Clear() {
	if p.err == nil {
		p.err = p.s.Clear()
	}
}

// Bytes writes b at column col of row.
func (p *Printer) Bytes(col, row int, b ...byte) {
	if p.err != nil {
		return
	}
	if p.err = p.s.MoveTo(row+1, col+1); p.err != nil {
		return
	}
	_, p.err = p.s.Write(b)
}

// Text writes s at column col of row.
func (p *Printer) Text(col, row int, s string) {
	p.Bytes(col, row, []byte(s)...)
}

// Padded writes s at column col of row, cut or padded with spaces to width.
func (p *Printer) Padded(col, row, width int, s string) {
	if len(s) > width {
		s = s[:width]
	}
	p.Text(col, row, s+strings.Repeat(" ", width-len(s)))
}

// Cells writes cells at column col of row.
func (p *Printer) Cells(col, row int, cells ...glyph.Cell) {
	p.Bytes(col, row, glyph.Bytes(cells)...)
}

// Program loads t into slot.
func (p *Printer) Program(slot byte, t glyph.Tile) {
	if p.err == nil {
		p.err = p.s.CreateChar(slot, t)
	}
}

// programTable loads every tile of t.
func (p *Printer) programTable(t *glyph.Table) {
	for _, prog := range t.Tiles {
		p.Program(prog.Slot, prog.Tile)
	}
}

// bell draws c at (col, row) when the alarm is enabled and show is set, and
// a space otherwise.
func (p *Printer) bell(col, row int, c glyph.Cell, enabled, show bool) {
	if enabled && show {
		p.Cells(col, row, c)
		return
	}
	p.Cells(col, row, glyph.Space)
}

// twoDigits formats v as two digits with a leading zero.
func twoDigits(v int) string {
	return fmt.Sprintf("%02d", v)
}

// odd reports whether the second has bit 0 set.
func odd(second int) bool {
	return second&1 == 1
}

// hour12 converts a 0-23 hour to 1-12.
func hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

// meridiem returns "a" before noon and "p" after.
func meridiem(h int) string {
	if h >= 12 {
		return "p"
	}
	return "a"
}
