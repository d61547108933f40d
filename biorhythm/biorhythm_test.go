// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package biorhythm

import (
	"testing"
	"time"

	"github.com/GermanBionicSystems/lcdclock/glyph"
	"github.com/google/go-cmp/cmp"
)

var testDates = []Date{
	{1900, 1, 1},
	{1900, 3, 1},
	{1970, 1, 1},
	{1999, 12, 31},
	{2000, 2, 29},
	{2000, 3, 1},
	{2020, 6, 26},
	{2024, 2, 28},
	{2099, 12, 31},
}

func TestDayDifferenceSelf(t *testing.T) {
	for _, d := range testDates {
		if got := DayDifference(d, d); got != 0 {
			t.Errorf("DayDifference(%s, %s) = %d, want 0", d, d, got)
		}
	}
}

func TestDayDifferenceAntisymmetric(t *testing.T) {
	for _, a := range testDates {
		for _, b := range testDates {
			if DayDifference(a, b) != -DayDifference(b, a) {
				t.Errorf("DayDifference(%s, %s) = %d, reverse %d", a, b, DayDifference(a, b), DayDifference(b, a))
			}
		}
	}
}

func TestDayDifferenceMatchesCalendar(t *testing.T) {
	for _, a := range testDates {
		for _, b := range testDates {
			ta := time.Date(a.Year, time.Month(a.Month), a.Day, 0, 0, 0, 0, time.UTC)
			tb := time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
			want := int(ta.Sub(tb).Hours() / 24)
			if got := DayDifference(a, b); got != want {
				t.Errorf("DayDifference(%s, %s) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestLeapYearsBefore(t *testing.T) {
	for _, tc := range []struct {
		y, m, want int
	}{
		{2000, 2, 484},
		{2000, 3, 485},
		{1900, 3, 460},
		{1901, 1, 460},
		{4, 1, 0},
		{4, 3, 1},
	} {
		if got := leapYearsBefore(tc.y, tc.m); got != tc.want {
			t.Errorf("leapYearsBefore(%d, %d) = %d, want %d", tc.y, tc.m, got, tc.want)
		}
	}
}

func TestCycleValuePeriodic(t *testing.T) {
	for _, p := range Periods {
		for days := -200; days < 2000; days++ {
			a, b := CycleValue(days, p), CycleValue(days+int(p), p)
			if a != b {
				t.Fatalf("%s: CycleValue(%d) = %d, CycleValue(%d) = %d", p, days, a, days+int(p), b)
			}
			if a < 0 || a > MaxValue {
				t.Fatalf("%s: CycleValue(%d) = %d out of range", p, days, a)
			}
		}
	}
}

func TestCycleValue(t *testing.T) {
	for _, tc := range []struct {
		days int
		p    Period
		want int
	}{
		{0, Physical, 8},
		{7, Emotional, 16},
		{14, Emotional, 8},
		{21, Emotional, 0},
		{-7, Emotional, 0},
		{5, Physical, 16},
		{10, Intellectual, 16},
	} {
		if got := CycleValue(tc.days, tc.p); got != tc.want {
			t.Errorf("CycleValue(%d, %s) = %d, want %d", tc.days, tc.p, got, tc.want)
		}
	}
	if got := CycleValue(3, 0); got != Midpoint {
		t.Errorf("CycleValue(3, 0) = %d, want %d", got, Midpoint)
	}
}

func TestBars(t *testing.T) {
	for _, tc := range []struct {
		v            int
		upper, lower glyph.Tile
	}{
		{
			v: 8,
		},
		{
			v:     16,
			upper: glyph.Tile{0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e},
		},
		{
			v:     11,
			upper: glyph.Tile{0, 0, 0, 0, 0, 0x0e, 0x0e, 0x0e},
		},
		{
			v:     5,
			lower: glyph.Tile{0x0e, 0x0e, 0x0e, 0, 0, 0, 0, 0},
		},
		{
			v:     0,
			lower: glyph.Tile{0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e},
		},
		{
			v:     -4,
			lower: glyph.Tile{0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e},
		},
		{
			v:     99,
			upper: glyph.Tile{0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e, 0x0e},
		},
	} {
		upper, lower := Bars(tc.v)
		if diff := cmp.Diff(upper, tc.upper); diff != "" {
			t.Errorf("Bars(%d) upper (-got +want):\n%s", tc.v, diff)
		}
		if diff := cmp.Diff(lower, tc.lower); diff != "" {
			t.Errorf("Bars(%d) lower (-got +want):\n%s", tc.v, diff)
		}
	}
}

func TestCompute(t *testing.T) {
	birth := Date{2000, 1, 1}
	today := Date{2000, 1, 8}
	r := Compute(today, birth)
	want := Reading{
		Days:         7,
		Physical:     CycleValue(7, Physical),
		Emotional:    16,
		Intellectual: CycleValue(7, Intellectual),
	}
	if diff := cmp.Diff(r, want); diff != "" {
		t.Errorf("Compute() (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(r.Values(), [3]int{want.Physical, 16, want.Intellectual}); diff != "" {
		t.Errorf("Values() (-got +want):\n%s", diff)
	}
}
