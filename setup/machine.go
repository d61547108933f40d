// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package setup

import (
	"fmt"
	"time"
)

// DefaultEditInterval is the minimum time between two accepted edits.
const DefaultEditInterval = 350 * time.Millisecond

// Debouncer accepts an event only if Interval elapsed since the last
// accepted one. It compares times and never sleeps, so pass times that carry
// a monotonic reading.
type Debouncer struct {
	Interval time.Duration

	last  time.Time
	armed bool
}

// Allow reports whether an event at now is accepted and records it if so.
func (d *Debouncer) Allow(now time.Time) bool {
	if d.armed && now.Sub(d.last) < d.Interval {
		return false
	}
	d.last, d.armed = now, true
	return true
}

// Reset forgets the last accepted event.
func (d *Debouncer) Reset() {
	d.armed = false
}

// Transition reports what a Mode press did.
type Transition struct {
	// Entered is set when the press started a session.
	Entered bool
	// Committed is set when the press ended the session. Values then holds
	// the edited values, with the seconds zeroed.
	Committed bool
	Values    Values
}

// Machine is the setup state machine: Idle, then Editing(0) through
// Editing(NumFields-1), then back to Idle with a commit. There is no way to
// leave a session without committing it.
type Machine struct {
	debounce Debouncer
	active   int
	values   Values

	drawn      Screen
	drawnValid bool
}

// New returns an idle Machine that accepts at most one edit per interval.
func New(interval time.Duration) *Machine {
	if interval < 0 {
		interval = 0
	}
	return &Machine{debounce: Debouncer{Interval: interval}, active: -1}
}

func (m *Machine) String() string {
	if f, ok := m.Field(); ok {
		return fmt.Sprintf("setup: editing %s", f)
	}
	return "setup: idle"
}

// Editing reports whether a session is in progress.
func (m *Machine) Editing() bool {
	return m.active >= 0
}

// Field returns the active field.
func (m *Machine) Field() (Field, bool) {
	if m.active < 0 {
		return 0, false
	}
	return Sequence[m.active].Field, true
}

// Values returns the working copy.
func (m *Machine) Values() Values {
	return m.values
}

// Mode handles a press of the mode button. current seeds the working copy
// when a session starts and is ignored otherwise.
func (m *Machine) Mode(current Values) Transition {
	switch {
	case m.active < 0:
		m.active = 0
		m.values = current.Clamped()
		m.debounce.Reset()
		m.drawnValid = false
		return Transition{Entered: true, Values: m.values}
	case m.active < NumFields-1:
		m.active++
		return Transition{Values: m.values}
	default:
		m.active = -1
		m.drawnValid = false
		v := m.values
		v.Time.Second = 0
		return Transition{Committed: true, Values: v}
	}
}

// Increment steps the active field up. It returns false when idle or when
// the edit came too soon after the previous one.
func (m *Machine) Increment(now time.Time) bool {
	return m.step(now, 1)
}

// Decrement steps the active field down. It returns false when idle or when
// the edit came too soon after the previous one.
func (m *Machine) Decrement(now time.Time) bool {
	return m.step(now, -1)
}

func (m *Machine) step(now time.Time, delta int) bool {
	if m.active < 0 || !m.debounce.Allow(now) {
		return false
	}
	s := &Sequence[m.active]
	m.values.Set(s.Field, s.Step(m.values.Get(s.Field), delta))
	return true
}

// Invalidate forces the next Render to clear the display first.
func (m *Machine) Invalidate() {
	m.drawnValid = false
}
