// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package settings persists the alarm, the style and the birth date in a
// small EEPROM-like image.
//
// The image is 8 bytes long:
//
//	0   alarm hour
//	1   alarm minute
//	2   alarm enabled (1) or disabled
//	3   style index
//	4-5 birth year, big endian
//	6   birth month
//	7   birth day
//
// Unwritten bytes read as 0xFF like erased memory. Load never fails on bad
// content: every out of range slot is replaced by its default. The alarm is
// enabled only when slot 2 holds exactly 1, so an erased 0xFF reads as
// disabled.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/GermanBionicSystems/lcdclock/biorhythm"
	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/style"
	"github.com/spf13/afero"
)

// Size is the length of the image.
const Size = 8

// Slots of the image.
const (
	slotAlarmHour    = 0
	slotAlarmMinute  = 1
	slotAlarmEnabled = 2
	slotStyle        = 3
	slotBirthYear    = 4
	slotBirthMonth   = 6
	slotBirthDay     = 7
)

const erased byte = 0xff

// Valid birth years. Anything else loads as DefaultBirthYear.
const (
	MinBirthYear     = 1900
	MaxBirthYear     = 2099
	DefaultBirthYear = 2000
)

// Settings is the persisted state.
type Settings struct {
	Alarm clock.Alarm
	Style style.Style
	Birth biorhythm.Date
}

// Store keeps the image in one file of an afero.Fs.
type Store struct {
	fs   afero.Fs
	path string

	mu sync.Mutex
}

// New returns a Store over the file at path.
func New(fsys afero.Fs, path string) *Store {
	return &Store{fs: fsys, path: path}
}

func (s *Store) String() string {
	return fmt.Sprintf("settings: %s", s.path)
}

// Load reads and validates the image. A missing or short file reads as
// erased memory. On a read error the defaults are returned with the error.
func (s *Store) Load() (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.read()
	return Decode(img), err
}

// SaveAlarmEnabled stores the alarm switch.
func (s *Store) SaveAlarmEnabled(on bool) error {
	return s.update(func(img *[Size]byte) {
		img[slotAlarmEnabled] = boolByte(on)
	})
}

// SaveStyle stores the active style.
func (s *Store) SaveStyle(st style.Style) error {
	return s.update(func(img *[Size]byte) {
		img[slotStyle] = byte(st)
	})
}

// SaveCommit stores the values edited in a setup session in one write.
func (s *Store) SaveCommit(a clock.Alarm, birth biorhythm.Date) error {
	return s.update(func(img *[Size]byte) {
		img[slotAlarmHour] = byte(a.Hour)
		img[slotAlarmMinute] = byte(a.Minute)
		img[slotBirthYear] = byte(birth.Year >> 8)
		img[slotBirthYear+1] = byte(birth.Year)
		img[slotBirthMonth] = byte(birth.Month)
		img[slotBirthDay] = byte(birth.Day)
	})
}

func (s *Store) update(f func(img *[Size]byte)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.read()
	if err != nil {
		return err
	}
	f(&img)
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, img[:], 0o644); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	return nil
}

func (s *Store) read() ([Size]byte, error) {
	var img [Size]byte
	for i := range img {
		img[i] = erased
	}
	b, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return img, nil
		}
		return img, fmt.Errorf("settings: %w", err)
	}
	copy(img[:], b)
	return img, nil
}

// Decode validates an image.
func Decode(img [Size]byte) Settings {
	st := style.Style(img[slotStyle])
	if !st.Valid() {
		st = style.Standard
	}
	return Settings{
		Alarm: clock.Alarm{
			Hour:    orDefault(int(img[slotAlarmHour]), 0, 23, 0),
			Minute:  orDefault(int(img[slotAlarmMinute]), 0, 59, 0),
			Enabled: img[slotAlarmEnabled] == 1,
		},
		Style: st,
		Birth: biorhythm.Date{
			Year:  orDefault(int(img[slotBirthYear])<<8|int(img[slotBirthYear+1]), MinBirthYear, MaxBirthYear, DefaultBirthYear),
			Month: orDefault(int(img[slotBirthMonth]), 1, 12, 1),
			Day:   orDefault(int(img[slotBirthDay]), 1, 31, 1),
		},
	}
}

func orDefault(v, lo, hi, def int) int {
	if v < lo || v > hi {
		return def
	}
	return v
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
