// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestCRC16(t *testing.T) {
	var tests = []struct {
		bytes  []byte
		result uint16
	}{
		{bytes: []byte{0x03, 0x04, 0x01, 0x5c, 0x00, 0xef}, result: 0x8a71},
		{bytes: []byte("123456789"), result: 0x4b37},
		{bytes: nil, result: 0xffff},
	}
	for _, test := range tests {
		res := CRC16(test.bytes)
		if res != test.result {
			t.Errorf("CRC16(%#v)!=0x%x received 0x%x", test.bytes, test.result, res)
		}
	}
}

func TestBCD(t *testing.T) {
	for v := range 100 {
		b := ToBCD(v)
		if got := FromBCD(b); got != v {
			t.Errorf("FromBCD(ToBCD(%d)) = %d", v, got)
		}
	}
	if got := ToBCD(59); got != 0x59 {
		t.Errorf("ToBCD(59) = %#x", got)
	}
	if got := FromBCD(0x23); got != 23 {
		t.Errorf("FromBCD(0x23) = %d", got)
	}
}
