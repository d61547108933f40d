// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package buttons

import (
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func newTestReader(t *testing.T) (*Reader, [NumButtons]*gpiotest.Pin) {
	var fakes [NumButtons]*gpiotest.Pin
	var pins Pins
	for i := range fakes {
		fakes[i] = &gpiotest.Pin{N: Button(i).String(), Num: i}
		pins[i] = fakes[i]
	}
	r, err := New(pins, DefaultDebounce)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range fakes {
		if p.P != gpio.PullUp || p.L != gpio.High {
			t.Fatalf("%s not pulled up", p)
		}
	}
	return r, fakes
}

func TestSet(t *testing.T) {
	s := Of(Mode, Tilt)
	if !s.Has(Mode) || !s.Has(Tilt) || s.Has(Increment) {
		t.Errorf("Of() = %s", s)
	}
	if got := s.String(); got != "{mode,tilt}" {
		t.Errorf("String() = %q", got)
	}
	if got := Button(9).String(); got != "Button(9)" {
		t.Errorf("String() = %q", got)
	}
}

func TestFallingEdge(t *testing.T) {
	r, pins := newTestReader(t)
	now := time.Now()
	if s := r.Poll(now); s != 0 {
		t.Fatalf("Poll() = %s on idle inputs", s)
	}
	pins[Mode].L = gpio.Low
	if s := r.Poll(now); s != Of(Mode) {
		t.Errorf("Poll() = %s", s)
	}
	// Held down: no new edge.
	if s := r.Poll(now.Add(time.Second)); s != 0 {
		t.Errorf("Poll() = %s while held", s)
	}
	pins[Mode].L = gpio.High
	if s := r.Poll(now.Add(2 * time.Second)); s != 0 {
		t.Errorf("Poll() = %s on release", s)
	}
}

func TestDebounce(t *testing.T) {
	r, pins := newTestReader(t)
	now := time.Now()
	press := func(b Button, at time.Duration) Set {
		pins[b].L = gpio.Low
		s := r.Poll(now.Add(at))
		pins[b].L = gpio.High
		r.Poll(now.Add(at))
		return s
	}
	if s := press(Increment, 0); s != Of(Increment) {
		t.Fatalf("first press = %s", s)
	}
	if s := press(Increment, 499*time.Millisecond); s != 0 {
		t.Errorf("bounce accepted: %s", s)
	}
	if s := press(Increment, 500*time.Millisecond); s != Of(Increment) {
		t.Errorf("press after 500ms = %s", s)
	}
	r.SetDebounce(Increment, DefaultEditDebounce)
	if s := press(Increment, 850*time.Millisecond); s != Of(Increment) {
		t.Errorf("press after 350ms = %s", s)
	}
	// Buttons are debounced independently.
	if s := press(Decrement, 860*time.Millisecond); s != Of(Decrement) {
		t.Errorf("other button = %s", s)
	}
	if s := press(Tilt, 0); s != Of(Tilt) {
		t.Errorf("tilt = %s", s)
	}
	if s := press(Tilt, 60*time.Millisecond); s != Of(Tilt) {
		t.Errorf("tilt after 60ms = %s", s)
	}
}

func TestSimultaneous(t *testing.T) {
	r, pins := newTestReader(t)
	pins[Increment].L = gpio.Low
	pins[Decrement].L = gpio.Low
	if s := r.Poll(time.Now()); s != Of(Increment, Decrement) {
		t.Errorf("Poll() = %s", s)
	}
}

func TestNilPins(t *testing.T) {
	r, err := New(Pins{}, DefaultDebounce)
	if err != nil {
		t.Fatal(err)
	}
	if s := r.Poll(time.Now()); s != 0 {
		t.Errorf("Poll() = %s", s)
	}
}
