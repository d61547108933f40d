// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdsim

import (
	"image"
	"io"
	"sync"

	"github.com/GermanBionicSystems/lcdclock/glyph"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Dot matrix geometry of one character cell, gaps excluded.
const (
	cellW = 5
	cellH = 8
)

var (
	romOnce sync.Once
	rom     [256]glyph.Tile
)

// romTile returns the bitmap of a character code that is not a tile
// reference. Printable ASCII comes from the 7x13 basic font sampled down to
// 5x8, a few codes of the A00 ROM are drawn by hand.
func romTile(c byte) glyph.Tile {
	romOnce.Do(loadROM)
	return rom[c]
}

func loadROM() {
	for c := 0x21; c < 0x7f; c++ {
		rom[c] = rasterize(rune(c))
	}
	rom[glyph.Full] = glyph.Tile{0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f, 0x1f}
	rom[glyph.Dot] = glyph.Tile{0x00, 0x00, 0x00, 0x0c, 0x0c, 0x00, 0x00, 0x00}
}

func rasterize(r rune) glyph.Tile {
	face := basicfont.Face7x13
	dst := image.NewAlpha(image.Rect(0, 0, face.Width, face.Height))
	dr := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	dr.DrawString(string(r))
	var t glyph.Tile
	for y := range cellH {
		sy := 2 + (y*9+4)/8
		for x := range cellW {
			if dst.AlphaAt(x, sy).A >= 0x80 {
				t[y] |= 0x10 >> x
			}
		}
	}
	return t
}

// cellTile returns the bitmap shown for the character at row, col.
func (d *Dev) cellTile(row, col int) glyph.Tile {
	c := d.ddram[row][col]
	if glyph.Cell(c).IsSlot() {
		return d.cgram[c]
	}
	return romTile(c)
}

// Image renders the panel with one pixel per dot and one pixel of gap
// around each character cell.
func (d *Dev) Image() *image.NRGBA {
	w, h := d.cols*(cellW+1)+1, d.rows*(cellH+1)+1
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, Gap)
		}
	}
	off := Unlit
	if !d.backlight {
		off = Dark
	}
	for row := range d.rows {
		for col := range d.cols {
			t := d.cellTile(row, col)
			x0, y0 := col*(cellW+1)+1, row*(cellH+1)+1
			for y := range cellH {
				for x := range cellW {
					c := off
					if d.on && t.Pixel(x, y) {
						c = Lit
					}
					img.SetNRGBA(x0+x, y0+y, c)
				}
			}
		}
	}
	return img
}

// EncodePNG writes a picture of the panel with each dot scale pixels wide.
func (d *Dev) EncodePNG(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := d.Image()
	b := src.Bounds()
	dc := gg.NewContext(b.Dx()*scale, b.Dy()*scale)
	dc.SetColor(Gap)
	dc.Clear()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := src.NRGBAAt(x, y)
			if c == Gap {
				continue
			}
			dc.SetColor(c)
			dc.DrawRectangle(float64(x*scale), float64(y*scale), float64(scale), float64(scale))
			dc.Fill()
		}
	}
	return wrap(dc.EncodePNG(w))
}
