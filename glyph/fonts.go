// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package glyph

// Slot of the bell tile for the faces that keep one free.
const BellSlot byte = 1

const sp = Space

// Thick square font. Slots 3-6, the bell stays in slot 1.
const (
	thickTop    Cell = 3
	thickBoth   Cell = 4
	thickBottom Cell = 5
	thickColon  Cell = 6
)

// Thick is a 3x2 square font.
var Thick = Table{
	Name:      "thick",
	Rows:      2,
	Cols:      3,
	Advance:   4,
	Separator: thickColon,
	Tiles: []Program{
		{Slot: byte(thickTop), Tile: Tile{0x1f, 0x1f, 0x1f, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{Slot: byte(thickBoth), Tile: Tile{0x1f, 0x1f, 0x1f, 0x00, 0x00, 0x1f, 0x1f, 0x1f}},
		{Slot: byte(thickBottom), Tile: Tile{0x00, 0x00, 0x00, 0x00, 0x00, 0x1f, 0x1f, 0x1f}},
		{Slot: byte(thickColon), Tile: Tile{0x00, 0x00, 0x0e, 0x0a, 0x0a, 0x0e, 0x00, 0x00}},
		{Slot: BellSlot, Tile: Bell},
	},
	Digits: [Blank + 1][]Cell{
		{Full, thickTop, Full, Full, thickBottom, Full},
		{thickTop, Full, sp, thickBottom, Full, thickBottom},
		{thickTop, thickTop, Full, Full, thickBoth, thickBottom},
		{thickBoth, thickBoth, Full, thickBoth, thickBoth, Full},
		{Full, thickBottom, Full, sp, sp, Full},
		{Full, thickBoth, thickBoth, thickBottom, thickBottom, Full},
		{Full, thickTop, thickTop, Full, thickBoth, Full},
		{thickTop, thickBoth, Full, sp, thickTop, Full},
		{Full, thickBoth, Full, Full, thickBoth, Full},
		{Full, thickBoth, Full, thickBottom, thickBottom, Full},
		{sp, sp, sp, sp, sp, sp},
	},
}

// Bevel font tiles, named after the corner or bar they draw.
const (
	bevelLeftTop     Cell = 0
	bevelUpperBar    Cell = 1
	bevelRightTop    Cell = 2
	bevelLeftLow     Cell = 3
	bevelLowerBar    Cell = 4
	bevelRightLow    Cell = 5
	bevelUpperMiddle Cell = 6
	bevelLowerMiddle Cell = 7
)

// Bevel is a 3x2 font with rounded corners. It uses every slot.
var Bevel = Table{
	Name:      "bevel",
	Rows:      2,
	Cols:      3,
	Advance:   4,
	Separator: Colon,
	Tiles: []Program{
		{Slot: byte(bevelLeftTop), Tile: Tile{0x07, 0x0f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f}},
		{Slot: byte(bevelUpperBar), Tile: Tile{0x1f, 0x1f, 0x1f, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{Slot: byte(bevelRightTop), Tile: Tile{0x1c, 0x1e, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f}},
		{Slot: byte(bevelLeftLow), Tile: Tile{0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x0f, 0x07}},
		{Slot: byte(bevelLowerBar), Tile: Tile{0x00, 0x00, 0x00, 0x00, 0x00, 0x1f, 0x1f, 0x1f}},
		{Slot: byte(bevelRightLow), Tile: Tile{0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1e, 0x1c}},
		{Slot: byte(bevelUpperMiddle), Tile: Tile{0x1f, 0x1f, 0x1f, 0x00, 0x00, 0x00, 0x1f, 0x1f}},
		{Slot: byte(bevelLowerMiddle), Tile: Tile{0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f}},
	},
	Digits: [Blank + 1][]Cell{
		{bevelLeftTop, bevelUpperBar, bevelRightTop, bevelLeftLow, bevelLowerBar, bevelRightLow},
		{bevelUpperBar, bevelRightTop, sp, bevelLowerBar, bevelLowerMiddle, bevelLowerBar},
		{bevelUpperMiddle, bevelUpperMiddle, bevelRightTop, bevelLeftLow, bevelLowerBar, bevelLowerBar},
		{bevelUpperMiddle, bevelUpperMiddle, bevelRightTop, bevelLowerBar, bevelLowerBar, bevelRightLow},
		{bevelLeftLow, bevelLowerBar, bevelLowerMiddle, sp, sp, bevelLowerMiddle},
		{bevelLeftTop, bevelUpperMiddle, bevelUpperMiddle, bevelLowerBar, bevelLowerBar, bevelRightLow},
		{bevelLeftTop, bevelUpperMiddle, bevelUpperMiddle, bevelLeftLow, bevelLowerBar, bevelRightLow},
		{bevelUpperBar, bevelUpperBar, bevelRightTop, sp, sp, bevelLeftTop},
		{bevelLeftTop, bevelUpperMiddle, bevelRightTop, bevelLeftLow, bevelLowerBar, bevelRightLow},
		{bevelLeftTop, bevelUpperMiddle, bevelRightTop, sp, sp, bevelRightLow},
		{sp, sp, sp, sp, sp, sp},
	},
}

// Trek font tiles.
const (
	trekTop        Cell = 0
	trekLeft       Cell = 1
	trekBottom     Cell = 2
	trekRightOpen  Cell = 3
	trekLeftOpen   Cell = 4
	trekLeftCorner Cell = 5
	trekRightFoot  Cell = 6
	trekRightTop   Cell = 7
)

// Trek is a narrow 2x2 font.
var Trek = Table{
	Name:      "trek",
	Rows:      2,
	Cols:      2,
	Advance:   2,
	Separator: Dot,
	Tiles: []Program{
		{Slot: byte(trekTop), Tile: Tile{0x1f, 0x1f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{Slot: byte(trekLeft), Tile: Tile{0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18}},
		{Slot: byte(trekBottom), Tile: Tile{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1f, 0x1f}},
		{Slot: byte(trekRightOpen), Tile: Tile{0x1f, 0x1f, 0x03, 0x03, 0x03, 0x03, 0x1f, 0x1f}},
		{Slot: byte(trekLeftOpen), Tile: Tile{0x1f, 0x1f, 0x18, 0x18, 0x18, 0x18, 0x1f, 0x1f}},
		{Slot: byte(trekLeftCorner), Tile: Tile{0x1f, 0x1f, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18}},
		{Slot: byte(trekRightFoot), Tile: Tile{0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x1f, 0x1f}},
		{Slot: byte(trekRightTop), Tile: Tile{0x1f, 0x1f, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03}},
	},
	Digits: [Blank + 1][]Cell{
		{trekLeftCorner, trekRightTop, Full, trekRightFoot},
		{trekTop, trekLeft, trekBottom, Full},
		{trekTop, trekRightOpen, Full, trekBottom},
		{trekTop, trekRightOpen, trekBottom, Full},
		{trekLeft, Full, trekTop, trekLeft},
		{trekLeftOpen, trekTop, trekBottom, Full},
		{trekLeftCorner, trekTop, trekLeftOpen, Full},
		{trekTop, Full, sp, trekLeft},
		{Full, trekRightOpen, trekLeftOpen, Full},
		{Full, trekRightOpen, trekBottom, trekRightFoot},
		{sp, sp, sp, sp},
	},
}

// Thin font tiles.
const (
	thinRight      Cell = 0
	thinTopRight   Cell = 1
	thinTopLeft    Cell = 2
	thinBox        Cell = 3
	thinOpenBottom Cell = 4
	thinOpenTop    Cell = 5
	thinHook       Cell = 6
	thinFoot       Cell = 7
)

// Thin is a single column 1x2 font.
var Thin = Table{
	Name:      "thin",
	Rows:      2,
	Cols:      1,
	Advance:   1,
	Separator: Dot,
	Tiles: []Program{
		{Slot: byte(thinRight), Tile: Tile{0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02}},
		{Slot: byte(thinTopRight), Tile: Tile{0x0e, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x0e}},
		{Slot: byte(thinTopLeft), Tile: Tile{0x0e, 0x08, 0x08, 0x08, 0x08, 0x08, 0x08, 0x0e}},
		{Slot: byte(thinBox), Tile: Tile{0x0e, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0e}},
		{Slot: byte(thinOpenBottom), Tile: Tile{0x0e, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a}},
		{Slot: byte(thinOpenTop), Tile: Tile{0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0a, 0x0e}},
		{Slot: byte(thinHook), Tile: Tile{0x0e, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02, 0x02}},
		{Slot: byte(thinFoot), Tile: Tile{0x18, 0x18, 0x18, 0x18, 0x18, 0x1e, 0x1f, 0x1f}},
	},
	Digits: [Blank + 1][]Cell{
		{thinOpenBottom, thinOpenTop},
		{thinRight, thinRight},
		{thinTopRight, thinTopLeft},
		{thinTopRight, thinTopRight},
		{thinOpenTop, thinHook},
		{thinTopLeft, thinTopRight},
		{thinTopLeft, thinBox},
		{thinHook, thinRight},
		{thinBox, thinBox},
		{thinBox, thinTopRight},
		{sp, sp},
	},
}

// Fonts lists every large-digit table.
var Fonts = []*Table{&Thick, &Bevel, &Trek, &Thin}
