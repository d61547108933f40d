// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdsim emulates a character LCD with programmable tiles.
//
// The emulator keeps the character memory in RAM. Refresh paints the dot
// matrix on the terminal using ANSI colors and EncodePNG saves a picture of
// it, which is handy while the real display is still in the mail.
package lcdsim

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/GermanBionicSystems/lcdclock/glyph"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

const packageName = "lcdsim"

// Colors of the panel.
var (
	// Lit is the color of an active dot.
	Lit = color.NRGBA{0x10, 0x20, 0x60, 0xff}
	// Unlit is the color of an inactive dot with the backlight on.
	Unlit = color.NRGBA{0x60, 0x90, 0xff, 0xff}
	// Dark is the color of an inactive dot with the backlight off.
	Dark = color.NRGBA{0x10, 0x18, 0x30, 0xff}
	// Gap is the color between character cells.
	Gap = color.NRGBA{0x00, 0x00, 0x00, 0xff}
)

// Opts represents the options available for the emulator.
type Opts struct {
	Rows int
	Cols int
	// W receives the terminal output of Refresh. Defaults to a colorable
	// stdout.
	W       io.Writer
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a character LCD emulator.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette
	rows    int
	cols    int

	ddram     [][]byte
	cgram     [glyph.MaxSlots]glyph.Tile
	row, col  int
	on        bool
	backlight bool
	cursor    bool
	blink     bool

	buf bytes.Buffer
}

// New returns an emulated display, blank with the backlight on.
func New(opts *Opts) *Dev {
	rows, cols := opts.Rows, opts.Cols
	if rows <= 0 {
		rows = 2
	}
	if cols <= 0 {
		cols = 16
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:         w,
		palette:   *p,
		rows:      rows,
		cols:      cols,
		ddram:     make([][]byte, rows),
		on:        true,
		backlight: true,
	}
	for i := range d.ddram {
		d.ddram[i] = make([]byte, cols)
	}
	d.clear()
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s - Rows: %d, Cols: %d", packageName, d.rows, d.cols)
}

// Halt implements conn.Resource.
//
// It resets the terminal colors.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// AutoScroll is not supported.
func (d *Dev) AutoScroll(enabled bool) error {
	return wrap(display.ErrNotImplemented)
}

// Clear blanks the character memory and moves the cursor home.
func (d *Dev) Clear() error {
	d.clear()
	return nil
}

func (d *Dev) clear() {
	for _, line := range d.ddram {
		for i := range line {
			line[i] = byte(glyph.Space)
		}
	}
	d.row, d.col = 0, 0
}

// Cols returns the number of columns.
func (d *Dev) Cols() int {
	return d.cols
}

// Rows returns the number of rows.
func (d *Dev) Rows() int {
	return d.rows
}

// MinCol returns the min column position.
func (d *Dev) MinCol() int {
	return 1
}

// MinRow returns the min row position.
func (d *Dev) MinRow() int {
	return 1
}

// Cursor records the cursor mode. The emulator does not draw a cursor.
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			d.cursor, d.blink = false, false
		case display.CursorUnderline, display.CursorBlock:
			d.cursor = true
		case display.CursorBlink:
			d.cursor, d.blink = true, true
		default:
			return fmt.Errorf("%s: unexpected cursor: %d", packageName, mode)
		}
	}
	return nil
}

// Home moves the cursor to the first position.
func (d *Dev) Home() error {
	d.row, d.col = 0, 0
	return nil
}

// Move moves the cursor forward or backward on the current row.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Backward:
		if d.col > 0 {
			d.col--
		}
	case display.Forward:
		if d.col < d.cols {
			d.col++
		}
	default:
		return wrap(display.ErrNotImplemented)
	}
	return nil
}

// MoveTo moves the cursor. row and col are 1-based.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row > d.rows || col < d.MinCol() || col > d.cols {
		return fmt.Errorf("%s: MoveTo(%d,%d) value out of range", packageName, row, col)
	}
	d.row, d.col = row-1, col-1
	return nil
}

// Display turns the display on or off. The character memory is kept.
func (d *Dev) Display(on bool) error {
	d.on = on
	return nil
}

// Backlight turns the backlight on for any non-zero intensity.
func (d *Dev) Backlight(intensity display.Intensity) error {
	d.backlight = intensity > 0
	return nil
}

// BacklightOn reports the backlight state.
func (d *Dev) BacklightOn() bool {
	return d.backlight
}

// Write stores p at the cursor. Characters past the end of the row are
// dropped like on the real controller's hidden memory.
func (d *Dev) Write(p []byte) (int, error) {
	for _, c := range p {
		if d.col < d.cols {
			d.ddram[d.row][d.col] = c
			d.col++
		}
	}
	return len(p), nil
}

// WriteString writes text at the cursor.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// CreateChar programs slot with t. Only the low 3 bits of slot are used.
func (d *Dev) CreateChar(slot byte, t glyph.Tile) error {
	d.cgram[slot&(glyph.MaxSlots-1)] = t
	return nil
}

// Tile returns the tile programmed in slot.
func (d *Dev) Tile(slot byte) glyph.Tile {
	return d.cgram[slot&(glyph.MaxSlots-1)]
}

// Line returns the raw character codes of row, 0-based.
func (d *Dev) Line(row int) string {
	if row < 0 || row >= d.rows {
		return ""
	}
	return string(d.ddram[row])
}

// Text returns the rows as printable text. Tile references are shown as
// digits 0-7 and other non ASCII codes as '?'.
func (d *Dev) Text() string {
	var b bytes.Buffer
	for y, line := range d.ddram {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range line {
			switch {
			case c < glyph.MaxSlots:
				b.WriteByte('0' + c)
			case c >= 0x20 && c < 0x7f:
				b.WriteByte(c)
			default:
				b.WriteByte('?')
			}
		}
	}
	return b.String()
}

// Refresh paints the panel on the terminal, one colored block per dot.
func (d *Dev) Refresh() error {
	img := d.Image()
	r := img.Bounds()
	d.buf.Reset()
	_, _ = d.buf.WriteString("\033[H\033[0m")
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	_, err := d.buf.WriteTo(d.w)
	return wrap(err)
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", packageName, err)
}

var _ display.TextDisplay = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ conn.Resource = &Dev{}
