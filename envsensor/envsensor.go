// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package envsensor turns a periph environment sensor into the whole degree
// and percent readings shown by the clock.
package envsensor

import (
	"fmt"
	"math"
	"time"

	"github.com/GermanBionicSystems/lcdclock/clock"
	"periph.io/x/conn/v3/physic"
)

// DefaultInterval is the time between two readings.
const DefaultInterval = 6 * time.Second

// Sensor is the part of physic.SenseEnv used by the Poller.
type Sensor interface {
	Sense(env *physic.Env) error
}

// Poller reads a Sensor at most once per interval and remembers the last
// good reading.
type Poller struct {
	s        Sensor
	interval time.Duration

	last clock.Env
	due  time.Time
}

// New returns a Poller over s. The first Poll reads the sensor.
func New(s Sensor, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{s: s, interval: interval}
}

// Poll reads the sensor when the interval elapsed since the previous read and
// returns the latest values. A failed read keeps the previous values and
// returns the error. The next read is scheduled in both cases.
func (p *Poller) Poll(now time.Time) (clock.Env, error) {
	if !p.due.IsZero() && now.Before(p.due) {
		return p.last, nil
	}
	p.due = now.Add(p.interval)
	var e physic.Env
	if err := p.s.Sense(&e); err != nil {
		return p.last, fmt.Errorf("envsensor: %w", err)
	}
	p.last = Convert(e)
	return p.last, nil
}

// Last returns the latest good reading.
func (p *Poller) Last() clock.Env {
	return p.last
}

// Convert rounds e to whole degrees Celsius and whole percents and clamps
// them to what the display can show.
func Convert(e physic.Env) clock.Env {
	t := float64(e.Temperature-physic.ZeroCelsius) / float64(physic.Celsius)
	h := float64(e.Humidity) / float64(physic.PercentRH)
	return clock.Env{
		Temperature: int(math.Round(t)),
		Humidity:    int(math.Round(h)),
		Valid:       true,
	}.Clamped()
}
