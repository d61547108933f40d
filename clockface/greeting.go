// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clockface

import (
	"strings"

	"github.com/GermanBionicSystems/lcdclock/style"
)

// Greeting returns the startup message for hour, or "" when there is none.
func Greeting(hour int) string {
	switch {
	case hour >= 1 && hour <= 12:
		return "Good Morning !"
	case hour >= 13 && hour <= 19:
		return "Good Afternoon !"
	case hour >= 20 && hour <= 22:
		return "Good Night !"
	default:
		return ""
	}
}

// drawGreeting centers msg on the first row.
func drawGreeting(s style.Surface, msg string) error {
	p := style.NewPrinter(s)
	p.Clear()
	pad := (style.Cols - len(msg)) / 2
	if pad < 0 {
		pad = 0
	}
	p.Padded(0, 0, style.Cols, strings.Repeat(" ", pad)+msg)
	return p.Err()
}
