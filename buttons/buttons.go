// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package buttons reads the push buttons and the tilt switch of the clock.
//
// Inputs are active low with the internal pull-up enabled. The Reader is
// polled from the tick loop: it reports each falling edge once and then
// ignores that input for its debounce interval.
package buttons

import (
	"fmt"
	"strings"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Button names one input.
type Button uint8

const (
	// Mode enters setup and moves to the next field.
	Mode Button = iota
	// Increment cycles the style when idle and increments in setup.
	Increment
	// Decrement toggles the alarm when idle, silences it while ringing and
	// decrements in setup.
	Decrement
	// Tilt is the shake switch used to silence the alarm.
	Tilt

	// NumButtons is the number of inputs.
	NumButtons = int(Tilt) + 1
)

var buttonNames = [NumButtons]string{"mode", "increment", "decrement", "tilt"}

func (b Button) String() string {
	if int(b) >= NumButtons {
		return fmt.Sprintf("Button(%d)", uint8(b))
	}
	return buttonNames[b]
}

// Set is a set of buttons.
type Set uint8

// Of returns the set holding bs.
func Of(bs ...Button) Set {
	var s Set
	for _, b := range bs {
		s |= 1 << b
	}
	return s
}

// Has reports whether b is in s.
func (s Set) Has(b Button) bool {
	return s&(1<<b) != 0
}

func (s Set) String() string {
	var names []string
	for b := range Button(NumButtons) {
		if s.Has(b) {
			names = append(names, b.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}

// Default debounce intervals.
const (
	DefaultDebounce     = 500 * time.Millisecond
	DefaultEditDebounce = 350 * time.Millisecond
	DefaultTiltDebounce = 50 * time.Millisecond
)

// Pins lists the inputs. A nil pin is never pressed.
type Pins [NumButtons]gpio.PinIn

// Reader detects presses on Pins.
type Reader struct {
	pins     Pins
	debounce [NumButtons]time.Duration

	level [NumButtons]gpio.Level
	last  [NumButtons]time.Time
}

// New configures pins as inputs with pull-ups. The buttons use debounce and
// the tilt switch DefaultTiltDebounce.
func New(pins Pins, debounce time.Duration) (*Reader, error) {
	r := &Reader{pins: pins}
	for i, p := range pins {
		r.level[i] = gpio.High
		r.debounce[i] = debounce
		if p == nil {
			continue
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("buttons: %s: %w", Button(i), err)
		}
		r.level[i] = p.Read()
	}
	r.debounce[Tilt] = DefaultTiltDebounce
	return r, nil
}

// SetDebounce changes the debounce interval of b.
func (r *Reader) SetDebounce(b Button, d time.Duration) {
	if int(b) < NumButtons {
		r.debounce[b] = d
	}
}

// Poll samples every input and returns the buttons that went from high to
// low since the previous call, minus the ones still in their debounce
// interval. A press hidden by the debounce interval is dropped, not delayed.
func (r *Reader) Poll(now time.Time) Set {
	var s Set
	for i, p := range r.pins {
		if p == nil {
			continue
		}
		l := p.Read()
		prev := r.level[i]
		r.level[i] = l
		if prev != gpio.High || l != gpio.Low {
			continue
		}
		if !r.last[i].IsZero() && now.Sub(r.last[i]) < r.debounce[i] {
			continue
		}
		r.last[i] = now
		s |= 1 << i
	}
	return s
}
