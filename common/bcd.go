// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

// FromBCD decodes a packed binary coded decimal byte. Nibbles above 9 are
// not checked.
func FromBCD(b byte) int {
	return int(b>>4)*10 + int(b&0x0f)
}

// ToBCD encodes v, which must be in 0..99, as packed binary coded decimal.
func ToBCD(v int) byte {
	return byte(v/10)<<4 | byte(v%10)
}
