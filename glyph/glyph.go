// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

import (
	"errors"
	"fmt"
)

const (
	// MaxSlots is the number of programmable character slots on the display.
	MaxSlots = 8
	// Blank is the digit index that draws an empty digit.
	Blank = 10

	packageName = "glyph"
)

// Literal character codes from the HD44780 A00 character ROM.
const (
	Space Cell = 0x20
	Colon Cell = 0x3a
	Dot   Cell = 0xa5
	Full  Cell = 0xff
)

// Tile is a 5x8 bitmap, one byte per row from top to bottom. Only the low 5
// bits of each row are significant.
type Tile [8]byte

// Cell is one character position of the display. Values below MaxSlots refer
// to a programmed slot, anything else is a literal character code.
type Cell byte

// IsSlot reports whether c refers to a programmable slot.
func (c Cell) IsSlot() bool {
	return c < MaxSlots
}

// Program pairs a tile with the slot it must be loaded into.
type Program struct {
	Slot byte
	Tile Tile
}

// Table maps the digits 0-9 and Blank to a Rows x Cols grid of cells.
type Table struct {
	Name string
	Rows int
	Cols int
	// Advance is the column distance between the tens and units digit.
	Advance int
	// Separator is the cell drawn between number fields.
	Separator Cell
	// Tiles must be programmed before any digit of the table is drawn.
	Tiles []Program
	// Digits holds Rows*Cols cells per digit, row-major.
	Digits [Blank + 1][]Cell
}

// Digit returns the cells of digit d. Values outside 0..Blank are clamped.
func (t *Table) Digit(d int) []Cell {
	return t.Digits[clampDigit(d)]
}

// Grid returns digit d split into rows.
func (t *Table) Grid(d int) [][]Cell {
	cells := t.Digit(d)
	grid := make([][]Cell, t.Rows)
	for y := range t.Rows {
		grid[y] = cells[y*t.Cols : (y+1)*t.Cols : (y+1)*t.Cols]
	}
	return grid
}

// Row returns row y of digit d.
func (t *Table) Row(d, y int) []Cell {
	if y < 0 {
		y = 0
	} else if y >= t.Rows {
		y = t.Rows - 1
	}
	cells := t.Digit(d)
	return cells[y*t.Cols : (y+1)*t.Cols : (y+1)*t.Cols]
}

// Bytes converts cells to the bytes written to the display.
func Bytes(cells []Cell) []byte {
	b := make([]byte, len(cells))
	for i, c := range cells {
		b[i] = byte(c)
	}
	return b
}

func clampDigit(d int) int {
	if d < 0 {
		return 0
	}
	if d > Blank {
		return Blank
	}
	return d
}

// Validate checks that the table covers every digit with a consistent shape,
// that Blank is all spaces and that every slot it references is programmed by
// the table itself.
func Validate(t *Table) error {
	if t.Rows <= 0 || t.Cols <= 0 {
		return fmt.Errorf("%s: %s: invalid shape %dx%d", packageName, t.Name, t.Cols, t.Rows)
	}
	if len(t.Tiles) > MaxSlots {
		return fmt.Errorf("%s: %s: %d tiles exceed %d slots", packageName, t.Name, len(t.Tiles), MaxSlots)
	}
	programmed := make(map[byte]bool, len(t.Tiles))
	for _, p := range t.Tiles {
		if p.Slot >= MaxSlots {
			return fmt.Errorf("%s: %s: slot %d out of range", packageName, t.Name, p.Slot)
		}
		if programmed[p.Slot] {
			return fmt.Errorf("%s: %s: slot %d programmed twice", packageName, t.Name, p.Slot)
		}
		programmed[p.Slot] = true
	}
	var errs []error
	for d, cells := range t.Digits {
		if len(cells) != t.Rows*t.Cols {
			errs = append(errs, fmt.Errorf("%s: %s: digit %d has %d cells, want %d", packageName, t.Name, d, len(cells), t.Rows*t.Cols))
			continue
		}
		for _, c := range cells {
			if c.IsSlot() && !programmed[byte(c)] {
				errs = append(errs, fmt.Errorf("%s: %s: digit %d uses unprogrammed slot %d", packageName, t.Name, d, c))
			}
			if d == Blank && c != Space {
				errs = append(errs, fmt.Errorf("%s: %s: blank digit is not empty", packageName, t.Name))
				break
			}
		}
	}
	if t.Separator.IsSlot() && !programmed[byte(t.Separator)] {
		errs = append(errs, fmt.Errorf("%s: %s: separator uses unprogrammed slot %d", packageName, t.Name, t.Separator))
	}
	return errors.Join(errs...)
}
