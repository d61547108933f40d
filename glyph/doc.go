// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package glyph holds the tile bitmaps and large-digit tables used to draw on
// an HD44780 style character display.
//
// The display has eight programmable character slots (CGRAM). Each slot holds
// a 5x8 pixel Tile. A large digit is a small grid of Cells, where a Cell is
// either a reference to a programmed slot (0-7) or a literal character code
// from the display's character ROM.
//
// # Fonts
//
// Four two-row fonts are provided:
//
//	Thick  3x2 cells, 4 tiles, by Arduino World
//	Bevel  3x2 cells, 8 tiles, from the Arduino forum
//	Trek   2x2 cells, 8 tiles, by Carrie Sundra
//	Thin   1x2 cells, 8 tiles, by Arduino World
//
// Every table covers the digits 0-9 and the Blank sentinel.
package glyph
