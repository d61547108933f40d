// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package style

import (
	"github.com/GermanBionicSystems/lcdclock/clock"
)

// standard is the plain text style:
//
//	HH:MM:SS | AH:AM
//	DD/MM/YY | ALARM
type standard struct{}

func newStandard(Options) Renderer {
	return standard{}
}

func (standard) Style() Style {
	return Standard
}

func (standard) Setup(Surface) error {
	return nil
}

func (standard) Render(s Surface, st *clock.State) error {
	now := st.Now.Clamped()
	alarm := st.Alarm.Clamped()
	p := NewPrinter(s)
	p.Text(0, 0, twoDigits(now.Hour)+":"+twoDigits(now.Minute)+":"+twoDigits(now.Second)+" | "+
		twoDigits(alarm.Hour)+":"+twoDigits(alarm.Minute))
	flag := "     "
	if alarm.Enabled && odd(now.Second) {
		flag = "ALARM"
	}
	p.Text(0, 1, twoDigits(now.Day)+"/"+twoDigits(now.Month)+"/"+twoDigits(now.Year%100)+" | "+flag)
	return p.Err()
}
