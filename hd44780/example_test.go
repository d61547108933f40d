// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hd44780_test

import (
	"fmt"
	"log"

	"github.com/GermanBionicSystems/lcdclock/glyph"
	"github.com/GermanBionicSystems/lcdclock/hd44780"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/gpioioctl"
)

// This example drives the common LCD1602 module with a PCF8574 backpack and
// shows a bell from the user defined characters.
func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	lcd, err := hd44780.NewPCF8574Backpack(bus, hd44780.DefaultBackpackAddress, 2, 16)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(lcd)
	_ = lcd.CreateChar(glyph.BellSlot, glyph.Bell)
	_ = lcd.MoveTo(1, 1)
	_, _ = lcd.WriteString("Alarm")
	_, _ = lcd.Write([]byte{glyph.BellSlot})
}

// This example uses lines of the GPIO character device. The first 4 lines
// are D4-D7, the others register select, enable and backlight.
func ExampleNewGPIO() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	chip := gpioioctl.Chips[0]
	ls, err := chip.LineSet(gpioioctl.LineOutput, gpio.NoEdge, gpio.PullNoChange,
		"GPIO27", "GPIO22", "GPIO23", "GPIO24", "GPIO17", "GPIO18", "GPIO25")
	if err != nil {
		log.Fatal(err)
	}
	pins := ls.Pins()
	lcd, err := hd44780.NewGPIO(ls, pins[4].(gpio.PinOut), pins[5].(gpio.PinOut), hd44780.NewBacklight(pins[6].(gpio.PinOut)), 2, 16)
	if err != nil {
		log.Fatal(err)
	}
	defer lcd.Halt()
	_, _ = lcd.WriteString("Hello")
}
