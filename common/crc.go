// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains helpers used across multiple device packages, like
// checksums and register encodings.
package common

// CRC16 calculates the Modbus flavor of CRC-16 (polynomial 0xa001 reflected,
// initial value 0xffff) used by the Aosong sensors. The result is sent low
// byte first on the wire.
func CRC16(bytes []byte) uint16 {
	crc := uint16(0xffff)
	for _, val := range bytes {
		crc ^= uint16(val)
		for range 8 {
			if crc&0x01 == 0 {
				crc >>= 1
			} else {
				crc = crc>>1 ^ 0xa001
			}
		}
	}
	return crc
}
