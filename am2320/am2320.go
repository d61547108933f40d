// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// This package provides a driver for the AOSONG AM2320 Temperature/Humidity
// Sensor. This sensor is a basic, inexpensive i2c sensor with reasonably good
// accuracy for both temperature and humidity. It is the I²C sibling of the
// DHT21/AM2301.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/product-files/3721/AM2320.pdf
package am2320

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GermanBionicSystems/lcdclock/common"
	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// SensorAddress is the fixed address of the device. Note that the datasheet
// states the value is 0xb8, which is the address shifted left by one.
const SensorAddress uint16 = 0x5c

const (
	cmdReadRegisters  byte = 0x03
	humidityRegisters byte = 0x00

	// MinInterval is the shortest sampling interval the sensor supports.
	MinInterval = 2 * time.Second

	attempts  = 3
	wakeDelay = time.Millisecond
)

// ErrCRC is returned when a reply fails its checksum.
var ErrCRC = errors.New("am2320: crc mismatch")

// Opts holds the configuration of the driver.
type Opts struct {
	// Clock paces SenseContinuous. Defaults to the real clock.
	Clock clockwork.Clock
}

// Dev represents an am2320 temperature/humidity sensor.
type Dev struct {
	d     *i2c.Dev
	clock clockwork.Clock

	mu       sync.Mutex
	shutdown chan struct{}
}

// NewI2C returns a sensor on bus b. addr is usually SensorAddress.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if addr == 0 {
		addr = SensorAddress
	}
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, clock: clockwork.NewRealClock()}
	if opts != nil && opts.Clock != nil {
		d.clock = opts.Clock
	}
	return d, nil
}

// Halt interrupts a running SenseContinuous() operation.
func (dev *Dev) Halt() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		close(dev.shutdown)
		dev.shutdown = nil
	}
	return nil
}

// checkCRC reports whether the trailing checksum of a reply, low byte first,
// matches its payload.
func checkCRC(b []byte) bool {
	if len(b) < 3 {
		return false
	}
	n := len(b) - 2
	return common.CRC16(b[:n]) == uint16(b[n])|uint16(b[n+1])<<8
}

// readRegisters wakes the sensor up and reads count registers starting at
// reg. The sensor sleeps between requests to avoid self-heating, so the
// wake-up write is expected to be NACKed and its error is ignored.
func (dev *Dev) readRegisters(reg, count byte) ([]byte, error) {
	w := []byte{cmdReadRegisters, reg, count}
	// {function, count, registers..., crc low, crc high}
	r := make([]byte, count+4)
	var err error
	for range attempts {
		_ = dev.d.Tx([]byte{0}, nil)
		time.Sleep(wakeDelay)
		if err = dev.d.Tx(w, r); err != nil {
			continue
		}
		if r[0] != w[0] || r[1] != count {
			err = fmt.Errorf("am2320: unexpected reply header % x", r[:2])
			continue
		}
		if !checkCRC(r) {
			err = ErrCRC
			continue
		}
		return r[2 : 2+count], nil
	}
	return nil, wrap(err)
}

// Sense queries the sensor for the current temperature and humidity. The
// sensor samples at 0.5 Hz, polling faster returns the same values.
func (dev *Dev) Sense(env *physic.Env) error {
	env.Temperature = 0
	env.Pressure = 0
	env.Humidity = 0

	dev.mu.Lock()
	defer dev.mu.Unlock()

	r, err := dev.readRegisters(humidityRegisters, 4)
	if err != nil {
		return err
	}
	h := uint16(r[0])<<8 | uint16(r[1])
	env.Humidity = physic.RelativeHumidity(h) * physic.MilliRH
	env.Temperature = physic.ZeroCelsius + (physic.Celsius/10)*physic.Temperature(signMagnitude(r[2], r[3]))
	return nil
}

// signMagnitude decodes the temperature word: bit 15 is the sign, the other
// bits the magnitude in tenths of degree.
func signMagnitude(hi, lo byte) int {
	v := int(hi&0x7f)<<8 | int(lo)
	if hi&0x80 != 0 {
		return -v
	}
	return v
}

// SenseContinuous returns a channel that receives a reading every interval.
// Failed readings are skipped. To end the read, call Halt().
func (dev *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < MinInterval {
		return nil, fmt.Errorf("am2320: invalid interval %s, minimum %s", interval, MinInterval)
	}
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.shutdown != nil {
		return nil, errors.New("am2320: sense continuous already running")
	}
	done := make(chan struct{})
	dev.shutdown = done
	ch := make(chan physic.Env, 16)
	ticker := dev.clock.NewTicker(interval)
	go func() {
		defer close(ch)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.Chan():
				e := physic.Env{}
				if dev.Sense(&e) == nil {
					select {
					case ch <- e:
					default:
					}
				}
			}
		}
	}()
	return ch, nil
}

func (dev *Dev) String() string {
	return fmt.Sprintf("am2320: %s", dev.d)
}

// Precision returns the resolution of the device for it's measured parameters.
func (dev *Dev) Precision(env *physic.Env) {
	env.Temperature = physic.Celsius / 10
	env.Pressure = 0
	env.Humidity = physic.MilliRH
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrCRC) {
		return err
	}
	return fmt.Errorf("am2320: %w", err)
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
