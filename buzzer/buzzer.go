// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package buzzer plays tones on a passive piezo buzzer driven by a PWM
// capable pin.
package buzzer

import (
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Dev is a buzzer.
type Dev struct {
	pin   gpio.PinOut
	clock clockwork.Clock

	mu      sync.Mutex
	timer   clockwork.Timer
	gen     uint64
	playing bool
}

// New returns a silent buzzer on pin. clk schedules the end of tones and
// defaults to the real clock.
func New(pin gpio.PinOut, clk clockwork.Clock) (*Dev, error) {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	d := &Dev{pin: pin, clock: clk}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, wrap(err)
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("buzzer: %s", d.pin)
}

// Tone starts a square wave at f and returns immediately. The tone stops
// after dur, or earlier on the next call to Tone or Stop.
func (d *Dev) Tone(f physic.Frequency, dur time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancel()
	if f <= 0 || dur <= 0 {
		return wrap(d.silence())
	}
	if err := d.pin.PWM(gpio.DutyHalf, f); err != nil {
		return wrap(err)
	}
	d.playing = true
	gen := d.gen
	d.timer = d.clock.AfterFunc(dur, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.gen == gen {
			_ = d.silence()
		}
	})
	return nil
}

// Stop silences the buzzer.
func (d *Dev) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancel()
	return wrap(d.silence())
}

// Playing reports whether a tone is sounding.
func (d *Dev) Playing() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.playing
}

// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	return d.Stop()
}

// cancel invalidates the pending end of tone. d.mu must be held.
func (d *Dev) cancel() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Dev) silence() error {
	d.playing = false
	return d.pin.Out(gpio.Low)
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("buzzer: %w", err)
}

var _ conn.Resource = &Dev{}
