// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package clockface runs the clock: one cooperative Tick reads the buttons,
// captures the time once, dispatches between the normal faces and the setup
// session, rings the alarm and draws a single frame.
//
// Face never sleeps. The startup greeting, the setup banner and the saving
// notice are deadlines checked on later ticks.
package clockface
