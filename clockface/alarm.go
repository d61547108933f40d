// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clockface

import (
	"time"

	"github.com/GermanBionicSystems/lcdclock/clock"
	"periph.io/x/conn/v3/physic"
)

// Melody is played one note at a time while the alarm rings.
var Melody = [...]physic.Frequency{600 * physic.Hertz, 800 * physic.Hertz, 1000 * physic.Hertz, 1200 * physic.Hertz}

// Alarm sound timing.
const (
	NoteLength   = 100 * time.Millisecond
	NoteInterval = 300 * time.Millisecond
	// ShakesToSilence is the number of tilt pulses that stop the alarm.
	ShakesToSilence = 6
	// RingMinutes is how long the alarm rings unattended.
	RingMinutes = 5
)

// ringer tracks one ringing alarm.
type ringer struct {
	ringing bool
	note    int
	next    time.Time
	shakes  int
	// fired is the minute of day of the last start, -1 when none. It keeps
	// the 3 second trigger window from restarting a silenced alarm.
	fired int
}

// due reports whether the alarm should start ringing at s.
func (r *ringer) due(a clock.Alarm, s clock.Snapshot) bool {
	if r.ringing || !a.Enabled {
		return false
	}
	if s.Hour != a.Hour || s.Minute != a.Minute || s.Second > 2 {
		return false
	}
	return r.fired != minuteOfDay(s.Hour, s.Minute)
}

func (r *ringer) start(now time.Time, s clock.Snapshot) {
	r.ringing = true
	r.note = 0
	r.next = now
	r.shakes = 0
	r.fired = minuteOfDay(s.Hour, s.Minute)
}

func (r *ringer) stop() {
	r.ringing = false
	r.shakes = 0
}

// expired reports whether the alarm rang for RingMinutes.
func (r *ringer) expired(a clock.Alarm, s clock.Snapshot) bool {
	return s.Minute == (a.Minute+RingMinutes)%60
}

// shake counts a tilt pulse and reports whether the alarm must stop.
func (r *ringer) shake() bool {
	r.shakes++
	return r.shakes >= ShakesToSilence
}

// tone returns the note to play at now, if one is due.
func (r *ringer) tone(now time.Time) (physic.Frequency, bool) {
	if !r.ringing || now.Before(r.next) {
		return 0, false
	}
	f := Melody[r.note]
	r.note = (r.note + 1) % len(Melody)
	r.next = now.Add(NoteInterval)
	return f, true
}

func minuteOfDay(h, m int) int {
	return h*60 + m
}
