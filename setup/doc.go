// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package setup implements the button driven editor of the clock, the birth
// date and the alarm.
//
// The mode button walks through the ten fields of Sequence. The increment and
// decrement buttons change the active field, wrapping at its bounds. Nothing
// is written back until the tenth mode press, which commits every field at
// once.
package setup
