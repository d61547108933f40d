// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"time"

	"github.com/GermanBionicSystems/lcdclock/buttons"
	"github.com/GermanBionicSystems/lcdclock/lcdsim"
	"github.com/spf13/afero"
)

// Simulator output pacing.
const (
	framePeriod    = 200 * time.Millisecond
	snapshotPeriod = time.Second
)

// simulator paints the emulated display.
type simulator struct {
	dev      *lcdsim.Dev
	fs       afero.Fs
	png      string
	scale    int
	terminal bool

	nextFrame    time.Time
	nextSnapshot time.Time
}

func (s *simulator) show(now time.Time) error {
	if s.terminal && !now.Before(s.nextFrame) {
		s.nextFrame = now.Add(framePeriod)
		if err := s.dev.Refresh(); err != nil {
			return err
		}
	}
	if s.png != "" && !now.Before(s.nextSnapshot) {
		s.nextSnapshot = now.Add(snapshotPeriod)
		var buf bytes.Buffer
		if err := s.dev.EncodePNG(&buf, s.scale); err != nil {
			return err
		}
		return afero.WriteFile(s.fs, s.png, buf.Bytes(), 0o644)
	}
	return nil
}

// keyButton maps a key to the button it stands for.
func keyButton(r rune) (buttons.Button, bool) {
	switch r {
	case 'm', 'M':
		return buttons.Mode, true
	case '+', '=':
		return buttons.Increment, true
	case '-', '_':
		return buttons.Decrement, true
	case 't', 'T':
		return buttons.Tilt, true
	}
	return 0, false
}

// readKeys sends one button per recognized key read from r. The channel is
// closed at the end of r.
func readKeys(ctx context.Context, r io.Reader) <-chan buttons.Button {
	c := make(chan buttons.Button)
	go func() {
		defer close(c)
		s := bufio.NewScanner(r)
		for s.Scan() {
			for _, k := range s.Text() {
				b, ok := keyButton(k)
				if !ok {
					continue
				}
				select {
				case c <- b:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return c
}
