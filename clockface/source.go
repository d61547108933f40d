// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clockface

import (
	"sync"
	"time"

	"github.com/GermanBionicSystems/lcdclock/biorhythm"
	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/style"
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
)

// TimeSource is the battery backed clock. ds3231.Dev implements it. Read
// returns an error wrapping clock.ErrTimeLost when the time is invalid.
type TimeSource interface {
	Read() (clock.Snapshot, error)
	Set(s clock.Snapshot) error
}

// Store persists the settings. settings.Store implements it.
type Store interface {
	SaveAlarmEnabled(on bool) error
	SaveStyle(st style.Style) error
	SaveCommit(a clock.Alarm, birth biorhythm.Date) error
}

// Display is the surface with a switchable backlight. hd44780.Dev and
// lcdsim.Dev implement it.
type Display interface {
	style.Surface
	Backlight(intensity display.Intensity) error
}

// Sounder plays the alarm. buzzer.Dev implements it.
type Sounder interface {
	Tone(f physic.Frequency, d time.Duration) error
	Stop() error
}

// Sensor supplies the environment reading. envsensor.Poller implements it.
type Sensor interface {
	Poll(now time.Time) (clock.Env, error)
}

// DefaultTime seeds a clock that lost its time.
var DefaultTime = clock.Snapshot{Hour: 7, Minute: 52, Second: 0, Day: 26, Month: 6, Year: 2020}

// SystemClock is a TimeSource over the host clock. Set keeps an offset
// instead of changing the host time.
type SystemClock struct {
	clock clockwork.Clock
	loc   *time.Location

	mu     sync.Mutex
	offset time.Duration
}

// NewSystemClock returns a SystemClock reading clk in loc. Both default to
// the real clock and time.Local.
func NewSystemClock(clk clockwork.Clock, loc *time.Location) *SystemClock {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &SystemClock{clock: clk, loc: loc}
}

func (c *SystemClock) String() string {
	return "system clock"
}

// Read returns the host time plus the offset.
func (c *SystemClock) Read() (clock.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clock.FromTime(c.clock.Now().Add(c.offset).In(c.loc)), nil
}

// Set moves the offset so that Read returns s now.
func (c *SystemClock) Set(s clock.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	c.offset = s.Time(c.loc).Sub(now.Truncate(time.Second))
	return nil
}
