// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
)

// DefaultBackpackAddress is the address of a PCF8574 backpack with A0-A2
// open. The PCF8574A variant answers at 0x3f.
const DefaultBackpackAddress uint16 = 0x27

// Pin assignment of the PCF8574 port on the common LCD1602/LCD2004 backpacks.
const (
	bpRS        byte = 0x01
	bpRW        byte = 0x02
	bpEnable    byte = 0x04
	bpBacklight byte = 0x08
)

// backpack drives the controller through a PCF8574 I/O expander. The
// expander latches every byte written to it, so a strobe is the same value
// written with and without the enable bit. R/W is kept low.
//
// # Product Information
//
// https://www.handsontec.com/dataspecs/I2C_2004_LCD.pdf
type backpack struct {
	d  i2c.Dev
	bl byte
}

// NewPCF8574Backpack returns a display behind a PCF8574 I²C backpack.
func NewPCF8574Backpack(b i2c.Bus, address uint16, rows, cols int) (*Dev, error) {
	if address == 0 {
		address = DefaultBackpackAddress
	}
	return newDev(&backpack{d: i2c.Dev{Bus: b, Addr: address}, bl: bpBacklight}, rows, cols)
}

func (p *backpack) String() string {
	return fmt.Sprintf("PCF8574(%s, %#x)", p.d.Bus, p.d.Addr)
}

func (p *backpack) port(rs bool, n byte) byte {
	v := n<<4 | p.bl
	if rs {
		v |= bpRS
	}
	return v
}

func (p *backpack) nibble(rs bool, n byte) error {
	v := p.port(rs, n&0x0f)
	return p.d.Tx([]byte{v | bpEnable, v}, nil)
}

func (p *backpack) send(rs bool, b byte) error {
	hi, lo := p.port(rs, b>>4), p.port(rs, b&0x0f)
	return p.d.Tx([]byte{hi | bpEnable, hi, lo | bpEnable, lo}, nil)
}

func (p *backpack) backlight(on bool) error {
	p.bl = 0
	if on {
		p.bl = bpBacklight
	}
	return p.d.Tx([]byte{p.bl}, nil)
}

func (p *backpack) halt() error {
	return nil
}
