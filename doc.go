// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lcdclock is an alarm clock for a 16x2 character LCD.
//
// The faces are drawn by package style from programmable 5x8 tiles, the
// clock, alarm and birth date are edited through package setup and the
// biorhythm face is computed by package biorhythm. Package clockface ties
// them together with the device drivers: hd44780 and lcdsim for the display,
// ds3231 for the time, am2320 for the environment, buttons and buzzer for
// the user. The binary is cmd/lcdclock.
package lcdclock
