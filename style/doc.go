// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package style renders the clock state on a 16x2 character display in one
// of eight styles.
//
// A Renderer first programs the tiles it needs with Setup, then draws a full
// frame on every Render call. The separator and the alarm bell blink with the
// parity of the current second, so no timer is needed for either.
//
// The dual styles draw large digits spanning both rows out of the tiles of a
// glyph.Table. The word style spells the time out in English, the biorhythm
// style draws three cycle bars and the thermometer style shows the last
// environment reading.
package style
