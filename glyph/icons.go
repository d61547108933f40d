// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

// Icons shared by several faces.
var (
	Bell        = Tile{0x04, 0x0e, 0x0e, 0x0e, 0x1f, 0x00, 0x04, 0x00}
	Clock       = Tile{0x00, 0x0e, 0x15, 0x17, 0x11, 0x0e, 0x00, 0x00}
	Thermometer = Tile{0x04, 0x0a, 0x0a, 0x0e, 0x0e, 0x1f, 0x1f, 0x0e}
	Droplet     = Tile{0x04, 0x04, 0x0a, 0x0a, 0x11, 0x11, 0x11, 0x0e}
)

// Hourglass is the sand animation of the word face. Frames are shown in order
// and loop back to the first.
var Hourglass = [8]Tile{
	{0x1f, 0x1f, 0x0a, 0x0a, 0x0a, 0x0a, 0x11, 0x1f},
	{0x1f, 0x1b, 0x0e, 0x0a, 0x0a, 0x0a, 0x11, 0x1f},
	{0x1f, 0x11, 0x0e, 0x0e, 0x0a, 0x0a, 0x11, 0x1f},
	{0x1f, 0x11, 0x0a, 0x0e, 0x0e, 0x0a, 0x11, 0x1f},
	{0x1f, 0x11, 0x0a, 0x0a, 0x0e, 0x0e, 0x11, 0x1f},
	{0x1f, 0x11, 0x0a, 0x0a, 0x0a, 0x0e, 0x15, 0x1f},
	{0x1f, 0x11, 0x0a, 0x0a, 0x0a, 0x0e, 0x1b, 0x1f},
	{0x1f, 0x11, 0x0a, 0x0a, 0x0a, 0x0a, 0x1f, 0x1f},
}

// Rows returns the tile as strings of '#' and '.', top row first. Useful when
// debugging or printing tiles.
func (t Tile) Rows() []string {
	rows := make([]string, len(t))
	for y, b := range t {
		row := make([]byte, 5)
		for x := range 5 {
			if b&(0x10>>x) != 0 {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}
	return rows
}

// Pixel reports whether the pixel at column x (0-4, left to right) and row y
// (0-7, top to bottom) is lit.
func (t Tile) Pixel(x, y int) bool {
	if x < 0 || x > 4 || y < 0 || y > 7 {
		return false
	}
	return t[y]&(0x10>>x) != 0
}
