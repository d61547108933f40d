// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package clock holds the state shown by the clock faces: the current time,
// the alarm, the birth date and the last environment reading.
package clock

import (
	"errors"
	"fmt"
	"time"

	"github.com/GermanBionicSystems/lcdclock/biorhythm"
)

// ErrTimeLost is wrapped by time sources that lost the time, for example
// after their backup battery ran flat.
var ErrTimeLost = errors.New("clock: time lost")

// Bounds of the snapshot fields.
const (
	MinYear = 1900
	MaxYear = 2999
)

// Snapshot is a wall clock reading captured once per tick.
type Snapshot struct {
	Hour   int
	Minute int
	Second int
	Day    int
	Month  int
	Year   int
}

// FromTime captures t in its own location.
func FromTime(t time.Time) Snapshot {
	return Snapshot{
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		Day:    t.Day(),
		Month:  int(t.Month()),
		Year:   t.Year(),
	}
}

// Time converts s to a time.Time in loc. Out of range fields are clamped
// first, then normalized by time.Date.
func (s Snapshot) Time(loc *time.Location) time.Time {
	c := s.Clamped()
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, 0, loc)
}

// Clamped returns s with every field forced into its range.
func (s Snapshot) Clamped() Snapshot {
	return Snapshot{
		Hour:   clamp(s.Hour, 0, 23),
		Minute: clamp(s.Minute, 0, 59),
		Second: clamp(s.Second, 0, 59),
		Day:    clamp(s.Day, 1, 31),
		Month:  clamp(s.Month, 1, 12),
		Year:   clamp(s.Year, MinYear, MaxYear),
	}
}

// Date returns the calendar part of s.
func (s Snapshot) Date() biorhythm.Date {
	return biorhythm.Date{Year: s.Year, Month: s.Month, Day: s.Day}
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", s.Year, s.Month, s.Day, s.Hour, s.Minute, s.Second)
}

// Alarm is the single daily alarm.
type Alarm struct {
	Hour    int
	Minute  int
	Enabled bool
}

// Clamped returns a with hour and minute forced into range.
func (a Alarm) Clamped() Alarm {
	return Alarm{Hour: clamp(a.Hour, 0, 23), Minute: clamp(a.Minute, 0, 59), Enabled: a.Enabled}
}

func (a Alarm) String() string {
	state := "off"
	if a.Enabled {
		state = "on"
	}
	return fmt.Sprintf("%02d:%02d %s", a.Hour, a.Minute, state)
}

// Environment reading bounds as shown on the display.
const (
	MinTemperature = -9
	MaxTemperature = 99
	MinHumidity    = 0
	MaxHumidity    = 99
)

// Env is the last known environment reading, in whole degrees Celsius and
// percent relative humidity. Valid is false until the first good reading.
type Env struct {
	Temperature int
	Humidity    int
	Valid       bool
}

// Clamped returns e with both values forced into the displayable range.
func (e Env) Clamped() Env {
	return Env{
		Temperature: clamp(e.Temperature, MinTemperature, MaxTemperature),
		Humidity:    clamp(e.Humidity, MinHumidity, MaxHumidity),
		Valid:       e.Valid,
	}
}

// State is everything a face renders from. It is owned by a single caller
// and passed by pointer.
type State struct {
	Now   Snapshot
	Alarm Alarm
	Birth biorhythm.Date
	Env   Env
}

// Clamp forces v into [lo, hi].
func Clamp(v, lo, hi int) int {
	return clamp(v, lo, hi)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
