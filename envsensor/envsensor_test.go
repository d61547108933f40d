// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package envsensor

import (
	"errors"
	"testing"
	"time"

	"github.com/GermanBionicSystems/lcdclock/clock"
	"periph.io/x/conn/v3/physic"
)

type reading struct {
	env physic.Env
	err error
}

type fakeSensor struct {
	readings []reading
	calls    int
}

func (f *fakeSensor) Sense(env *physic.Env) error {
	r := f.readings[f.calls%len(f.readings)]
	f.calls++
	*env = r.env
	return r.err
}

func env(c float64, rh float64) physic.Env {
	return physic.Env{
		Temperature: physic.ZeroCelsius + physic.Temperature(c*float64(physic.Celsius)),
		Humidity:    physic.RelativeHumidity(rh * float64(physic.PercentRH)),
	}
}

func TestConvert(t *testing.T) {
	data := []struct {
		in   physic.Env
		want clock.Env
	}{
		{env(23.9, 34.8), clock.Env{Temperature: 24, Humidity: 35, Valid: true}},
		{env(23.4, 34.4), clock.Env{Temperature: 23, Humidity: 34, Valid: true}},
		{env(150, 100), clock.Env{Temperature: 99, Humidity: 99, Valid: true}},
		{env(-10.1, 0), clock.Env{Temperature: -9, Humidity: 0, Valid: true}},
		{env(-0.4, 0), clock.Env{Temperature: 0, Humidity: 0, Valid: true}},
	}
	for i, line := range data {
		if got := Convert(line.in); got != line.want {
			t.Errorf("#%d: Convert() = %+v, want %+v", i, got, line.want)
		}
	}
}

func TestPoll(t *testing.T) {
	errSensor := errors.New("no ack")
	s := &fakeSensor{readings: []reading{
		{env: env(21, 40)},
		{err: errSensor},
		{env: env(22, 41)},
	}}
	p := New(s, 6*time.Second)
	now := time.Now()
	got, err := p.Poll(now)
	if err != nil {
		t.Fatal(err)
	}
	if got.Temperature != 21 || !got.Valid {
		t.Errorf("Poll() = %+v", got)
	}
	if _, err := p.Poll(now.Add(5 * time.Second)); err != nil || s.calls != 1 {
		t.Errorf("polled before the interval: %d calls, %v", s.calls, err)
	}
	got, err = p.Poll(now.Add(6 * time.Second))
	if !errors.Is(err, errSensor) {
		t.Errorf("Poll() = %v", err)
	}
	if got.Temperature != 21 || got.Humidity != 40 {
		t.Errorf("failed read lost the last values: %+v", got)
	}
	got, err = p.Poll(now.Add(12 * time.Second))
	if err != nil || got.Temperature != 22 || got.Humidity != 41 {
		t.Errorf("Poll() = %+v, %v", got, err)
	}
	if p.Last() != got {
		t.Errorf("Last() = %+v", p.Last())
	}
}

func TestPollNeverRead(t *testing.T) {
	p := New(&fakeSensor{readings: []reading{{err: errors.New("bus")}}}, 0)
	got, err := p.Poll(time.Now())
	if err == nil {
		t.Fatal("expected error")
	}
	if got.Valid {
		t.Errorf("Poll() = %+v, want invalid", got)
	}
}
