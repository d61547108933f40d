// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clockface

import (
	"fmt"
	"time"
)

// BacklightMode selects how the backlight follows user activity.
type BacklightMode uint8

const (
	// BacklightTimeout lights the display for a while after each press.
	BacklightTimeout BacklightMode = iota
	// BacklightAlways keeps the backlight on.
	BacklightAlways
	// BacklightOff keeps the backlight off except in setup and while the
	// alarm rings.
	BacklightOff
)

// DefaultBacklightTimeout is how long the backlight stays on after a press.
const DefaultBacklightTimeout = 10 * time.Second

var backlightNames = [...]string{"timeout", "always", "off"}

func (m BacklightMode) String() string {
	if int(m) < len(backlightNames) {
		return backlightNames[m]
	}
	return fmt.Sprintf("BacklightMode(%d)", uint8(m))
}

// ParseBacklightMode returns the mode named name.
func ParseBacklightMode(name string) (BacklightMode, error) {
	for i, n := range backlightNames {
		if n == name {
			return BacklightMode(i), nil
		}
	}
	return BacklightTimeout, fmt.Errorf("clockface: unknown backlight mode %q", name)
}

// backlight decides the backlight state.
type backlight struct {
	mode    BacklightMode
	timeout time.Duration
	until   time.Time
}

// wake extends the lit period after a press. It reports whether the press
// only woke the display and must be ignored otherwise.
func (b *backlight) wake(now time.Time) bool {
	dark := !now.Before(b.until)
	b.until = now.Add(b.timeout)
	return b.mode == BacklightTimeout && dark
}

func (b *backlight) lit(now time.Time) bool {
	switch b.mode {
	case BacklightAlways:
		return true
	case BacklightOff:
		return false
	default:
		return now.Before(b.until)
	}
}
