// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package am2320

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"
)

var pbWake = i2ctest.IO{Addr: SensorAddress, W: []uint8{0x0}}

// Playback values for a single sense operation.
var pbSense = []i2ctest.IO{
	pbWake,
	{Addr: SensorAddress, W: []uint8{0x3, 0x0, 0x4}, R: []uint8{0x3, 0x4, 0x1, 0x5c, 0x0, 0xef, 0x71, 0x8a}}}

// -10.1°C, 34.8%RH.
var pbSenseNegative = []i2ctest.IO{
	pbWake,
	{Addr: SensorAddress, W: []uint8{0x3, 0x0, 0x4}, R: []uint8{0x3, 0x4, 0x1, 0x5c, 0x80, 0x65, 0x91, 0xed}}}

var pbBadCRC = []i2ctest.IO{
	pbWake,
	{Addr: SensorAddress, W: []uint8{0x3, 0x0, 0x4}, R: []uint8{0x3, 0x4, 0x1, 0x5c, 0x0, 0xef, 0x72, 0x8a}}}

func getDev(t *testing.T, clk clockwork.Clock, ops ...[]i2ctest.IO) (*Dev, *i2ctest.Playback) {
	bus := &i2ctest.Playback{Ops: slices.Concat(ops...), DontPanic: true}
	dev, err := NewI2C(bus, SensorAddress, &Opts{Clock: clk})
	if err != nil {
		t.Fatal(err)
	}
	return dev, bus
}

func TestBasic(t *testing.T) {
	dev, _ := getDev(t, nil)
	env := &physic.Env{}
	dev.Precision(env)
	if env.Pressure != 0 {
		t.Error("this device doesn't measure pressure")
	}
	if 10*env.Temperature != physic.Celsius {
		t.Error("incorrect temperature precision value")
	}
	if env.Humidity != physic.MilliRH {
		t.Error("incorrect humidity precision")
	}
	if s := dev.String(); len(s) == 0 {
		t.Error("invalid value for String()")
	}

	// Check the CRC Calculation algorithm using the data supplied by the vendor.
	crcTest := []byte{0x03, 0x04, 0x01, 0xf4, 0x00, 0xfa, 0x31, 0xa5}
	if !checkCRC(crcTest) {
		t.Error("crc error")
	}
	// ensure a corruption is detected.
	crcTest[0] = crcTest[0] ^ 0xff
	if checkCRC(crcTest) {
		t.Error("crc error")
	}
	if checkCRC([]byte{0x01}) {
		t.Error("short reply accepted")
	}
}

func TestSense(t *testing.T) {
	data := []struct {
		name string
		ops  []i2ctest.IO
		temp physic.Temperature
	}{
		{"positive", pbSense, physic.ZeroCelsius + 23_900*physic.MilliKelvin},
		{"negative", pbSenseNegative, physic.ZeroCelsius - 10_100*physic.MilliKelvin},
	}
	for _, line := range data {
		t.Run(line.name, func(t *testing.T) {
			d, bus := getDev(t, nil, line.ops)
			e := physic.Env{}
			if err := d.Sense(&e); err != nil {
				t.Fatal(err)
			}
			if e.Temperature != line.temp {
				t.Errorf("temperature %s, want %s", e.Temperature, line.temp)
			}
			// 34.8% expected.
			if want := 34*physic.PercentRH + 8*physic.MilliRH; e.Humidity != want {
				t.Errorf("humidity %s, want %s", e.Humidity, want)
			}
			if err := bus.Close(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestSenseRetries(t *testing.T) {
	d, _ := getDev(t, nil, pbBadCRC, pbSense)
	e := physic.Env{}
	if err := d.Sense(&e); err != nil {
		t.Fatal(err)
	}
	d, _ = getDev(t, nil, pbBadCRC, pbBadCRC, pbBadCRC)
	if err := d.Sense(&e); !errors.Is(err, ErrCRC) {
		t.Errorf("Sense() = %v, want ErrCRC", err)
	}
	if e.Temperature != 0 || e.Humidity != 0 {
		t.Errorf("Sense() left %v", e)
	}
	d, _ = getDev(t, nil)
	if err := d.Sense(&e); err == nil {
		t.Error("expected bus error")
	}
}

func TestSenseContinuous(t *testing.T) {
	const readCount = 3
	clk := clockwork.NewFakeClock()
	var ops [][]i2ctest.IO
	for range readCount {
		ops = append(ops, pbSense)
	}
	d, bus := getDev(t, clk, ops...)

	if _, err := d.SenseContinuous(time.Second); err == nil {
		t.Error("SenseContinuous() accepted invalid reading interval")
	}
	ch, err := d.SenseContinuous(3 * time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.SenseContinuous(3 * time.Second); err == nil {
		t.Error("second SenseContinuous() accepted")
	}
	for i := range readCount {
		clk.BlockUntil(1)
		clk.Advance(3 * time.Second)
		e, ok := <-ch
		if !ok {
			t.Fatalf("channel closed after %d readings", i)
		}
		if e.Humidity != 348*physic.MilliRH {
			t.Errorf("#%d: %v", i, e)
		}
	}
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	for range ch {
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}
