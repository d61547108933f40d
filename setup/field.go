// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package setup

import (
	"fmt"

	"github.com/GermanBionicSystems/lcdclock/biorhythm"
	"github.com/GermanBionicSystems/lcdclock/clock"
)

// Field is one editable value. Fields are visited in declaration order.
type Field uint8

const (
	ClockHour Field = iota
	ClockMinute
	ClockDay
	ClockMonth
	ClockYear
	BirthDay
	BirthMonth
	BirthYear
	AlarmHour
	AlarmMinute

	// NumFields is the length of the edit sequence.
	NumFields = int(AlarmMinute) + 1
)

func (f Field) String() string {
	if int(f) >= NumFields {
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
	return Sequence[f].Name
}

// Screen is one of the setup pages.
type Screen uint8

const (
	TimeScreen Screen = iota
	BirthScreen
	AlarmScreen
)

func (s Screen) String() string {
	switch s {
	case TimeScreen:
		return "time"
	case BirthScreen:
		return "birth"
	case AlarmScreen:
		return "alarm"
	default:
		return fmt.Sprintf("Screen(%d)", uint8(s))
	}
}

// Pos is a 0-based cell position.
type Pos struct {
	Col, Row int
}

// Spec describes the bounds and placement of a Field.
type Spec struct {
	Field Field
	Name  string
	Min   int
	Max   int
	// Wraps makes a step past a bound land on the other bound. Otherwise the
	// value sticks to the bound.
	Wraps  bool
	Screen Screen
	// Marker is the cell that holds the '>' cursor while the field is active.
	Marker Pos
}

// Year bounds of the editable fields. A time source may hold less: the
// DS3231 stops at 2199.
const (
	MinClockYear = 2019
	MinBirthYear = 1900
	MaxYear      = 2999
)

// Sequence lists every field in edit order.
var Sequence = [NumFields]Spec{
	{ClockHour, "clock hour", 0, 23, true, TimeScreen, Pos{4, 0}},
	{ClockMinute, "clock minute", 0, 59, true, TimeScreen, Pos{9, 0}},
	{ClockDay, "clock day", 1, 31, true, TimeScreen, Pos{0, 1}},
	{ClockMonth, "clock month", 1, 12, true, TimeScreen, Pos{5, 1}},
	{ClockYear, "clock year", MinClockYear, MaxYear, true, TimeScreen, Pos{10, 1}},
	{BirthDay, "birth day", 1, 31, true, BirthScreen, Pos{0, 1}},
	{BirthMonth, "birth month", 1, 12, true, BirthScreen, Pos{5, 1}},
	{BirthYear, "birth year", MinBirthYear, MaxYear, true, BirthScreen, Pos{10, 1}},
	{AlarmHour, "alarm hour", 0, 23, true, AlarmScreen, Pos{4, 1}},
	{AlarmMinute, "alarm minute", 0, 59, true, AlarmScreen, Pos{9, 1}},
}

// Step moves v by delta within the bounds of s.
func (s *Spec) Step(v, delta int) int {
	if s.Wraps {
		return Wrap(v, s.Min, s.Max, delta)
	}
	return clock.Clamp(clock.Clamp(v, s.Min, s.Max)+delta, s.Min, s.Max)
}

// Wrap adds delta to v and wraps the result into [min, max]. An out of range
// v is clamped first, so Wrap(max, min, max, 1) == min and
// Wrap(min, min, max, -1) == max.
func Wrap(v, min, max, delta int) int {
	if max < min {
		return min
	}
	v = clock.Clamp(v, min, max)
	span := max - min + 1
	return min + ((v-min+delta)%span+span)%span
}

// Values is the working copy edited by a session.
type Values struct {
	Time  clock.Snapshot
	Birth biorhythm.Date
	Alarm clock.Alarm
}

// Get returns the value of f.
func (v *Values) Get(f Field) int {
	switch f {
	case ClockHour:
		return v.Time.Hour
	case ClockMinute:
		return v.Time.Minute
	case ClockDay:
		return v.Time.Day
	case ClockMonth:
		return v.Time.Month
	case ClockYear:
		return v.Time.Year
	case BirthDay:
		return v.Birth.Day
	case BirthMonth:
		return v.Birth.Month
	case BirthYear:
		return v.Birth.Year
	case AlarmHour:
		return v.Alarm.Hour
	case AlarmMinute:
		return v.Alarm.Minute
	default:
		return 0
	}
}

// Set stores x in f as is.
func (v *Values) Set(f Field, x int) {
	switch f {
	case ClockHour:
		v.Time.Hour = x
	case ClockMinute:
		v.Time.Minute = x
	case ClockDay:
		v.Time.Day = x
	case ClockMonth:
		v.Time.Month = x
	case ClockYear:
		v.Time.Year = x
	case BirthDay:
		v.Birth.Day = x
	case BirthMonth:
		v.Birth.Month = x
	case BirthYear:
		v.Birth.Year = x
	case AlarmHour:
		v.Alarm.Hour = x
	case AlarmMinute:
		v.Alarm.Minute = x
	}
}

// Clamped returns v with every field forced into its bounds.
func (v Values) Clamped() Values {
	for i := range Sequence {
		s := &Sequence[i]
		v.Set(s.Field, clock.Clamp(v.Get(s.Field), s.Min, s.Max))
	}
	v.Time.Second = clock.Clamp(v.Time.Second, 0, 59)
	return v
}
