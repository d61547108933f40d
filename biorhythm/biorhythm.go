// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package biorhythm computes the physical, emotional and intellectual cycles
// of a birth date and maps them to split bar tiles for a character display.
//
// Day numbers are only meaningful relative to each other. The reference day
// is not a real calendar day.
package biorhythm

import (
	"fmt"
	"math"

	"github.com/GermanBionicSystems/lcdclock/glyph"
)

// Period is the length of a cycle in days.
type Period int

const (
	Physical     Period = 23
	Emotional    Period = 28
	Intellectual Period = 33
)

// Periods lists the cycles in display order.
var Periods = [3]Period{Physical, Emotional, Intellectual}

func (p Period) String() string {
	switch p {
	case Physical:
		return "physical"
	case Emotional:
		return "emotional"
	case Intellectual:
		return "intellectual"
	}
	return fmt.Sprintf("Period(%d)", int(p))
}

// Midpoint is the cycle value drawn as two empty half bars.
const Midpoint = 8

// MaxValue is the largest cycle value.
const MaxValue = 16

// barRow is a lit row of a bar tile.
const barRow = 0x0e

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Date is a calendar date. Day is not checked against the month length.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DayNumber converts d to a day count from an internal reference. Months
// outside 1-12 are clamped.
func DayNumber(d Date) int {
	m := min(max(d.Month, 1), 12)
	n := d.Year*365 + d.Day
	for i := range m - 1 {
		n += monthDays[i]
	}
	return n + leapYearsBefore(d.Year, m)
}

// leapYearsBefore counts the leap years up to year y. February and January
// do not see the leap day of their own year yet.
func leapYearsBefore(y, m int) int {
	if m <= 2 {
		y--
	}
	return y/4 - y/100 + y/400
}

// DayDifference returns the number of days from b to a.
func DayDifference(a, b Date) int {
	return DayNumber(a) - DayNumber(b)
}

// CycleValue maps a day count to the 0-16 height of a cycle.
func CycleValue(days int, p Period) int {
	if p <= 0 {
		return Midpoint
	}
	phase := ((days % int(p)) + int(p)) % int(p)
	v := 8*math.Sin(2*math.Pi*float64(phase)/float64(p)) + 8
	return min(max(int(math.Round(v)), 0), MaxValue)
}

// Bars returns the pair of tiles drawing value v. Values above the midpoint
// fill the upper tile from the bottom, values below fill the lower tile from
// the top. The midpoint draws two empty tiles.
func Bars(v int) (upper, lower glyph.Tile) {
	v = min(max(v, 0), MaxValue)
	if v > Midpoint {
		for i := range v - Midpoint {
			upper[len(upper)-1-i] = barRow
		}
		return upper, lower
	}
	for i := range Midpoint - v {
		lower[i] = barRow
	}
	return upper, lower
}

// Reading holds the three cycle values of one day.
type Reading struct {
	Days         int
	Physical     int
	Emotional    int
	Intellectual int
}

// Values returns the cycle values in display order.
func (r Reading) Values() [3]int {
	return [3]int{r.Physical, r.Emotional, r.Intellectual}
}

// Compute returns the cycles of birth on day today.
func Compute(today, birth Date) Reading {
	days := DayDifference(today, birth)
	return Reading{
		Days:         days,
		Physical:     CycleValue(days, Physical),
		Emotional:    CycleValue(days, Emotional),
		Intellectual: CycleValue(days, Intellectual),
	}
}
