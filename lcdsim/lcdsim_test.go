// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lcdsim

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/lcdclock/glyph"
	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/display/displaytest"
)

func newTestDev() (*Dev, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&Opts{Rows: 2, Cols: 16, W: &buf}), &buf
}

func TestWriteAndMoveTo(t *testing.T) {
	d, _ := newTestDev()
	if _, err := d.WriteString("HELLO"); err != nil {
		t.Fatal(err)
	}
	if err := d.MoveTo(2, 12); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Write([]byte{'A', 1, 0xff, 'B', 'C', 'D', 'E'}); err != nil {
		t.Fatal(err)
	}
	want := "HELLO           \n           A1?BC"
	if diff := cmp.Diff(d.Text(), want); diff != "" {
		t.Errorf("Text() (-got +want):\n%s", diff)
	}
	if got := d.Line(1)[12]; got != 1 {
		t.Errorf("Line(1)[12] = %d, want 1", got)
	}
	if got := d.Line(5); got != "" {
		t.Errorf("Line(5) = %q", got)
	}
}

func TestMoveToRange(t *testing.T) {
	d, _ := newTestDev()
	for _, tc := range []struct{ row, col int }{
		{0, 1}, {1, 0}, {3, 1}, {1, 17},
	} {
		if err := d.MoveTo(tc.row, tc.col); err == nil {
			t.Errorf("MoveTo(%d, %d) expected error", tc.row, tc.col)
		}
	}
	if err := d.MoveTo(2, 16); err != nil {
		t.Error(err)
	}
}

func TestClear(t *testing.T) {
	d, _ := newTestDev()
	_, _ = d.WriteString("XYZ")
	if err := d.Clear(); err != nil {
		t.Fatal(err)
	}
	_, _ = d.WriteString("Q")
	if got := d.Line(0); got != "Q"+strings.Repeat(" ", 15) {
		t.Errorf("Line(0) = %q", got)
	}
}

func TestCreateChar(t *testing.T) {
	d, _ := newTestDev()
	if err := d.CreateChar(9, glyph.Bell); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d.Tile(1), glyph.Bell); diff != "" {
		t.Errorf("Tile(1) (-got +want):\n%s", diff)
	}
}

func TestCursorAndMove(t *testing.T) {
	d, _ := newTestDev()
	if err := d.Cursor(display.CursorBlink, display.CursorOff); err != nil {
		t.Error(err)
	}
	if err := d.Cursor(display.CursorMode(42)); err == nil {
		t.Error("expected error")
	}
	if err := d.Move(display.Up); !errors.Is(err, display.ErrNotImplemented) {
		t.Errorf("Move(Up) = %v", err)
	}
	_ = d.Move(display.Forward)
	_ = d.Move(display.Forward)
	_ = d.Move(display.Backward)
	_, _ = d.WriteString("x")
	if got := d.Line(0)[:3]; got != " x " {
		t.Errorf("Line(0) = %q", got)
	}
}

func TestImage(t *testing.T) {
	d, _ := newTestDev()
	_ = d.CreateChar(0, glyph.Tile{0x1f})
	_, _ = d.Write([]byte{0})
	img := d.Image()
	if b := img.Bounds(); b.Dx() != 16*6+1 || b.Dy() != 2*9+1 {
		t.Fatalf("Bounds() = %v", b)
	}
	if got := img.NRGBAAt(1, 1); got != Lit {
		t.Errorf("top row of slot 0 = %v, want lit", got)
	}
	if got := img.NRGBAAt(1, 2); got != Unlit {
		t.Errorf("second row of slot 0 = %v, want unlit", got)
	}
	_ = d.Backlight(0)
	if d.BacklightOn() {
		t.Error("backlight still on")
	}
	if got := d.Image().NRGBAAt(1, 2); got != Dark {
		t.Errorf("unlit dot without backlight = %v, want dark", got)
	}
}

func TestROM(t *testing.T) {
	if romTile(' ') != (glyph.Tile{}) {
		t.Error("space is not blank")
	}
	if romTile('A') == (glyph.Tile{}) {
		t.Error("A is blank")
	}
	if romTile(byte(glyph.Full))[7] != 0x1f {
		t.Error("full block is not full")
	}
}

func TestRefresh(t *testing.T) {
	d, buf := newTestDev()
	if err := d.Refresh(); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 2*9+1 {
		t.Errorf("Refresh() wrote %d lines", got)
	}
}

func TestEncodePNG(t *testing.T) {
	d, _ := newTestDev()
	_, _ = d.WriteString("12:34")
	var buf bytes.Buffer
	if err := d.EncodePNG(&buf, 3); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 3*(16*6+1) || b.Dy() != 3*(2*9+1) {
		t.Errorf("Bounds() = %v", b)
	}
}

func TestInterface(t *testing.T) {
	d, _ := newTestDev()
	for _, err := range displaytest.TestTextDisplay(d, false) {
		if !errors.Is(err, display.ErrNotImplemented) {
			t.Error(err)
		}
	}
}
