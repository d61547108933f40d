// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hd44780 controls the Hitachi LCD display chipset HD-44780 in 4 bit
// mode, either through the common PCF8574 I²C backpack or through GPIO pins.
//
// On top of display.TextDisplay, Dev can program the 8 user defined
// characters of the controller with CreateChar.
//
// # Datasheet
//
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package hd44780

import (
	"fmt"
	"time"

	"github.com/GermanBionicSystems/lcdclock/glyph"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Instruction set.
const (
	cmdClear       byte = 0x01
	cmdHome        byte = 0x02
	cmdEntryMode   byte = 0x04
	cmdDisplayCtl  byte = 0x08
	cmdShift       byte = 0x10
	cmdFunctionSet byte = 0x20
	cmdSetCGRAM    byte = 0x40
	cmdSetDDRAM    byte = 0x80

	entryIncrement byte = 0x02

	displayOn byte = 0x04
	cursorOn  byte = 0x02
	blinkOn   byte = 0x01

	shiftRight byte = 0x04

	twoLines byte = 0x08
)

const (
	delayCommand   = 50 * time.Microsecond
	delayClearHome = 2 * time.Millisecond
	delayReset     = 4100 * time.Microsecond
)

// rowOffsets lists the DDRAM address of the first column of each row, for
// 16 column displays and for the others.
var rowOffsets = [2][4]byte{{0x00, 0x40, 0x10, 0x50}, {0x00, 0x40, 0x14, 0x54}}

// Dev is a HD44780 driven in 4 bit mode.
//
// Implements display.TextDisplay, display.DisplayBacklight and the tile
// programming used by the clock faces.
type Dev struct {
	bus  bus
	rows int
	cols int

	on     bool
	cursor bool
	blink  bool
	// addr is the DDRAM address the next character goes to.
	addr byte
}

func newDev(b bus, rows, cols int) (*Dev, error) {
	if rows < 1 || rows > 4 || cols < 1 || cols > 40 {
		return nil, fmt.Errorf("hd44780: invalid geometry %dx%d", rows, cols)
	}
	d := &Dev{bus: b, rows: rows, cols: cols, on: true}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("HD44780::%s - Rows: %d, Cols: %d", d.bus, d.rows, d.cols)
}

// AutoScroll is not supported by this device. Returns display.ErrNotImplemented.
func (d *Dev) AutoScroll(enabled bool) error {
	return wrap(display.ErrNotImplemented)
}

// Clear clears the screen and moves the cursor to the first position.
func (d *Dev) Clear() error {
	d.addr = 0
	return d.command(cmdClear)
}

// Cols returns the number of columns the display supports.
func (d *Dev) Cols() int {
	return d.cols
}

// Cursor sets the cursor mode. You can pass multiple arguments.
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
			d.cursor, d.blink = false, false
		case display.CursorBlink, display.CursorBlock:
			d.cursor, d.blink = true, true
		case display.CursorUnderline:
			d.cursor = true
		default:
			return fmt.Errorf("hd44780: unexpected cursor: %d", mode)
		}
	}
	return d.command(d.displayControl())
}

// Home moves the cursor to (MinRow(), MinCol()).
func (d *Dev) Home() error {
	d.addr = 0
	return d.command(cmdHome)
}

// MinCol returns the min column position.
func (d *Dev) MinCol() int {
	return 1
}

// MinRow returns the min row position.
func (d *Dev) MinRow() int {
	return 1
}

// Move moves the cursor forward or backward.
func (d *Dev) Move(dir display.CursorDirection) error {
	val := cmdShift
	switch dir {
	case display.Backward:
		d.addr--
	case display.Forward:
		val |= shiftRight
		d.addr++
	default:
		return wrap(display.ErrNotImplemented)
	}
	return d.command(val)
}

// MoveTo moves the cursor to an arbitrary position. row and col are 1-based.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row > d.rows || col < d.MinCol() || col > d.cols {
		return fmt.Errorf("hd44780: MoveTo(%d,%d) value out of range", row, col)
	}
	d.addr = rowOffset(row-1, d.cols) + byte(col-1)
	return d.command(cmdSetDDRAM | d.addr)
}

// Rows returns the number of rows the display supports.
func (d *Dev) Rows() int {
	return d.rows
}

// Display turns the display on or off. The character memory is kept.
func (d *Dev) Display(on bool) error {
	d.on = on
	return d.command(d.displayControl())
}

// Write writes character codes at the cursor. Codes 0 to 7 show the
// programmed tiles.
func (d *Dev) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := d.bus.send(true, c); err != nil {
			return i, wrap(err)
		}
		d.addr++
	}
	return len(p), nil
}

// WriteString writes text at the cursor.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// CreateChar programs slot with t. Only the low 3 bits of slot are used.
//
// The cursor is restored afterward so the next Write lands where it would
// have before.
func (d *Dev) CreateChar(slot byte, t glyph.Tile) error {
	if err := d.command(cmdSetCGRAM | (slot&(glyph.MaxSlots-1))<<3); err != nil {
		return err
	}
	for _, row := range t {
		if err := d.bus.send(true, row&0x1f); err != nil {
			return wrap(err)
		}
	}
	return d.command(cmdSetDDRAM | d.addr&0x7f)
}

// Backlight turns the backlight on for any non-zero intensity.
func (d *Dev) Backlight(intensity display.Intensity) error {
	return wrap(d.bus.backlight(intensity > 0))
}

// Halt clears the display, turns the backlight off, and turns the display off.
func (d *Dev) Halt() error {
	_ = d.Clear()
	_ = d.Backlight(0)
	_ = d.Display(false)
	return wrap(d.bus.halt())
}

func (d *Dev) displayControl() byte {
	val := cmdDisplayCtl
	if d.on {
		val |= displayOn
	}
	if d.cursor {
		val |= cursorOn
	}
	if d.blink {
		val |= blinkOn
	}
	return val
}

func (d *Dev) command(c byte) error {
	if err := d.bus.send(false, c); err != nil {
		return wrap(err)
	}
	if c == cmdClear || c == cmdHome {
		time.Sleep(delayClearHome)
	} else {
		time.Sleep(delayCommand)
	}
	return nil
}

// init runs the 4 bit initialization by instruction of the datasheet
// (figure 24). It works whatever state the controller was left in.
func (d *Dev) init() error {
	if err := d.bus.nibble(false, 0x03); err != nil {
		return wrap(err)
	}
	time.Sleep(delayReset)
	for _, n := range []byte{0x03, 0x03, 0x02} {
		if err := d.bus.nibble(false, n); err != nil {
			return wrap(err)
		}
		time.Sleep(delayCommand)
	}
	fs := cmdFunctionSet
	if d.rows > 1 {
		fs |= twoLines
	}
	for _, c := range []byte{fs, d.displayControl(), cmdEntryMode | entryIncrement, cmdClear} {
		if err := d.command(c); err != nil {
			return err
		}
	}
	return wrap(d.bus.backlight(true))
}

func rowOffset(row, cols int) byte {
	if cols == 16 {
		return rowOffsets[0][row]
	}
	return rowOffsets[1][row]
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("hd44780: %w", err)
}

var _ display.TextDisplay = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ conn.Resource = &Dev{}
