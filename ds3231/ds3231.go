// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds3231 provides a driver for the Maxim DS3231 real time clock.
//
// Only the time keeping registers are used. The device counts years 00-99
// with a century bit, so it covers 2000 to 2199.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/DS3231.pdf
package ds3231

import (
	"fmt"
	"sync"
	"time"

	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddress is the fixed address of the device.
const DefaultAddress uint16 = 0x68

// Year range of the device.
const (
	MinYear = 2000
	MaxYear = 2199
)

const (
	regSeconds byte = 0x00
	regStatus  byte = 0x0f

	hour12   byte = 0x40
	hourPM   byte = 0x20
	century  byte = 0x80
	statusOS byte = 0x80
)

// ErrOscillatorStopped is returned by Read when the oscillator stopped since
// the time was last set, for example after the backup battery ran flat. The
// time read is meaningless until Set is called. It wraps clock.ErrTimeLost.
var ErrOscillatorStopped = fmt.Errorf("ds3231: oscillator stopped: %w", clock.ErrTimeLost)

// Dev is a DS3231 real time clock.
type Dev struct {
	mu sync.Mutex
	d  *i2c.Dev
}

// New returns a DS3231 on bus b. Use DefaultAddress unless the device sits
// behind an address translator.
func New(b i2c.Bus, addr uint16) (*Dev, error) {
	if addr == 0 {
		addr = DefaultAddress
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: addr}}, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ds3231: %s", d.d)
}

// Halt implements conn.Resource. It is a no-op, the device keeps time on its
// own.
func (d *Dev) Halt() error {
	return nil
}

// Read returns the current time. When the oscillator stop flag is set, the
// registers are returned anyway with ErrOscillatorStopped.
func (d *Dev) Read() (clock.Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var r [7]byte
	if err := d.d.Tx([]byte{regSeconds}, r[:]); err != nil {
		return clock.Snapshot{}, wrap(err)
	}
	s := decode(r)
	var st [1]byte
	if err := d.d.Tx([]byte{regStatus}, st[:]); err != nil {
		return s, wrap(err)
	}
	if st[0]&statusOS != 0 {
		return s, ErrOscillatorStopped
	}
	return s, nil
}

// Set writes s to the device in 24 hour mode and clears the oscillator stop
// flag. Fields are clamped to what the device can hold, including the year
// to MinYear-MaxYear. Writing the same
// snapshot twice leaves the device in the same state.
func (d *Dev) Set(s clock.Snapshot) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := encode(s)
	if err := d.d.Tx(append([]byte{regSeconds}, r[:]...), nil); err != nil {
		return wrap(err)
	}
	var st [1]byte
	if err := d.d.Tx([]byte{regStatus}, st[:]); err != nil {
		return wrap(err)
	}
	if st[0]&statusOS == 0 {
		return nil
	}
	return wrap(d.d.Tx([]byte{regStatus, st[0] &^ statusOS}, nil))
}

// decode converts the registers 0x00 to 0x06.
func decode(r [7]byte) clock.Snapshot {
	var h int
	if r[2]&hour12 != 0 {
		h = common.FromBCD(r[2]&0x1f) % 12
		if r[2]&hourPM != 0 {
			h += 12
		}
	} else {
		h = common.FromBCD(r[2] & 0x3f)
	}
	y := MinYear + common.FromBCD(r[6])
	if r[5]&century != 0 {
		y += 100
	}
	return clock.Snapshot{
		Second: common.FromBCD(r[0] & 0x7f),
		Minute: common.FromBCD(r[1] & 0x7f),
		Hour:   h,
		Day:    common.FromBCD(r[4] & 0x3f),
		Month:  common.FromBCD(r[5] & 0x1f),
		Year:   y,
	}
}

// encode converts s to the registers 0x00 to 0x06.
func encode(s clock.Snapshot) [7]byte {
	s = s.Clamped()
	s.Year = clock.Clamp(s.Year, MinYear, MaxYear)
	// Day of week, 1 is Sunday. The device only increments it at midnight.
	wd := time.Date(s.Year, time.Month(s.Month), s.Day, 0, 0, 0, 0, time.UTC).Weekday()
	r := [7]byte{
		common.ToBCD(s.Second),
		common.ToBCD(s.Minute),
		common.ToBCD(s.Hour),
		byte(wd) + 1,
		common.ToBCD(s.Day),
		common.ToBCD(s.Month),
		common.ToBCD((s.Year - MinYear) % 100),
	}
	if s.Year-MinYear >= 100 {
		r[5] |= century
	}
	return r
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("ds3231: %w", err)
}

var _ conn.Resource = &Dev{}
