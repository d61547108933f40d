// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package setup

import (
	"testing"
	"time"

	"github.com/GermanBionicSystems/lcdclock/biorhythm"
	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/lcdsim"
	"github.com/google/go-cmp/cmp"
)

var testValues = Values{
	Time:  clock.Snapshot{Hour: 7, Minute: 52, Second: 9, Day: 26, Month: 6, Year: 2020},
	Birth: biorhythm.Date{Year: 1990, Month: 5, Day: 17},
	Alarm: clock.Alarm{Hour: 6, Minute: 30, Enabled: true},
}

func TestWrap(t *testing.T) {
	data := []struct {
		v, min, max, delta, want int
	}{
		{23, 0, 23, 1, 0},
		{0, 0, 23, -1, 23},
		{5, 0, 23, 1, 6},
		{5, 0, 23, -1, 4},
		{2999, 2019, 2999, 1, 2019},
		{2019, 2019, 2999, -1, 2999},
		{1, 1, 12, -1, 12},
		{99, 1, 12, 1, 1},
		{-5, 1, 31, -1, 31},
		{3, 5, 4, 1, 5},
	}
	for i, line := range data {
		if got := Wrap(line.v, line.min, line.max, line.delta); got != line.want {
			t.Errorf("#%d: Wrap(%d, %d, %d, %d) = %d, want %d", i, line.v, line.min, line.max, line.delta, got, line.want)
		}
	}
}

func TestSequence(t *testing.T) {
	if len(Sequence) != 10 {
		t.Fatalf("len(Sequence) = %d", len(Sequence))
	}
	for i, s := range Sequence {
		if int(s.Field) != i {
			t.Errorf("Sequence[%d].Field = %s", i, s.Field)
		}
		if s.Min > s.Max {
			t.Errorf("%s: min %d > max %d", s.Field, s.Min, s.Max)
		}
	}
	if s := Sequence[ClockYear]; s.Min != 2019 || s.Max != 2999 {
		t.Errorf("clock year bounds %d-%d", s.Min, s.Max)
	}
	if s := Sequence[BirthYear]; s.Min != 1900 || s.Max != 2999 {
		t.Errorf("birth year bounds %d-%d", s.Min, s.Max)
	}
	if got := Field(42).String(); got != "Field(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestValuesGetSet(t *testing.T) {
	var v Values
	for i := range Sequence {
		v.Set(Field(i), 100+i)
	}
	for i := range Sequence {
		if got := v.Get(Field(i)); got != 100+i {
			t.Errorf("Get(%s) = %d", Field(i), got)
		}
	}
	want := Values{
		Time:  clock.Snapshot{Hour: 100, Minute: 101, Day: 102, Month: 103, Year: 104},
		Birth: biorhythm.Date{Day: 105, Month: 106, Year: 107},
		Alarm: clock.Alarm{Hour: 108, Minute: 109},
	}
	if diff := cmp.Diff(v, want); diff != "" {
		t.Errorf("Values (-got +want):\n%s", diff)
	}
}

// Every field wraps from max to min on increment and from min to max on
// decrement.
func TestWrapAroundLaw(t *testing.T) {
	now := time.Now()
	for i, s := range Sequence {
		t.Run(s.Name, func(t *testing.T) {
			m := New(DefaultEditInterval)
			start := testValues
			start.Set(s.Field, s.Max)
			m.Mode(start)
			for range i {
				m.Mode(Values{})
			}
			if f, _ := m.Field(); f != s.Field {
				t.Fatalf("active field %s", f)
			}
			now = now.Add(time.Second)
			if !m.Increment(now) {
				t.Fatal("Increment rejected")
			}
			if v := m.Values(); v.Get(s.Field) != s.Min {
				t.Errorf("max+1 = %d, want %d", v.Get(s.Field), s.Min)
			}
			now = now.Add(time.Second)
			if !m.Decrement(now) {
				t.Fatal("Decrement rejected")
			}
			if v := m.Values(); v.Get(s.Field) != s.Max {
				t.Errorf("min-1 = %d, want %d", v.Get(s.Field), s.Max)
			}
		})
	}
}

func TestCommitOnlyOnTenthPress(t *testing.T) {
	m := New(0)
	if m.Editing() {
		t.Fatal("new machine is editing")
	}
	tr := m.Mode(testValues)
	if !tr.Entered || tr.Committed {
		t.Fatalf("first press: %+v", tr)
	}
	now := time.Now()
	m.Increment(now)
	for i := 1; i < NumFields; i++ {
		tr = m.Mode(Values{})
		if tr.Entered || tr.Committed {
			t.Fatalf("press %d: %+v", i+1, tr)
		}
		if !m.Editing() {
			t.Fatalf("press %d left the session", i+1)
		}
	}
	tr = m.Mode(Values{})
	if !tr.Committed || tr.Entered {
		t.Fatalf("tenth press: %+v", tr)
	}
	if m.Editing() {
		t.Error("still editing after commit")
	}
	want := testValues
	want.Time.Hour = 8
	want.Time.Second = 0
	if diff := cmp.Diff(tr.Values, want); diff != "" {
		t.Errorf("committed (-got +want):\n%s", diff)
	}
	if m.Increment(now.Add(time.Hour)) {
		t.Error("Increment accepted while idle")
	}
}

func TestModeClampsCorruptValues(t *testing.T) {
	m := New(0)
	v := testValues
	v.Time.Year = 2000
	v.Birth.Month = 0
	v.Alarm.Minute = 77
	tr := m.Mode(v)
	if tr.Values.Time.Year != 2019 || tr.Values.Birth.Month != 1 || tr.Values.Alarm.Minute != 59 {
		t.Errorf("Mode() = %+v", tr.Values)
	}
}

func TestDebounce(t *testing.T) {
	m := New(DefaultEditInterval)
	m.Mode(testValues)
	now := time.Now()
	if !m.Increment(now) {
		t.Fatal("first edit rejected")
	}
	if m.Increment(now.Add(349 * time.Millisecond)) {
		t.Error("edit after 349ms accepted")
	}
	if m.Decrement(now.Add(200 * time.Millisecond)) {
		t.Error("edit after 200ms accepted")
	}
	if !m.Increment(now.Add(350 * time.Millisecond)) {
		t.Error("edit after 350ms rejected")
	}
	if got := m.Values().Time.Hour; got != 9 {
		t.Errorf("hour = %d, want 9", got)
	}
}

func TestDebouncer(t *testing.T) {
	d := Debouncer{Interval: time.Second}
	now := time.Now()
	if !d.Allow(now) || d.Allow(now.Add(999*time.Millisecond)) || !d.Allow(now.Add(time.Second)) {
		t.Error("unexpected debounce")
	}
	d.Reset()
	if !d.Allow(now.Add(time.Second)) {
		t.Error("Reset() did not rearm")
	}
}

func TestRender(t *testing.T) {
	dev := lcdsim.New(&lcdsim.Opts{})
	m := New(0)
	if err := m.Render(dev); err != nil {
		t.Fatal(err)
	}
	m.Mode(testValues)
	data := []struct {
		field Field
		want  string
	}{
		{ClockHour, "    >07 : 52    \n 26 / 06 / 2020 "},
		{ClockMinute, "     07 :>52    \n 26 / 06 / 2020 "},
		{ClockDay, "     07 : 52    \n>26 / 06 / 2020 "},
		{ClockMonth, "     07 : 52    \n 26 />06 / 2020 "},
		{ClockYear, "     07 : 52    \n 26 / 06 />2020 "},
		{BirthDay, " SET BIRTH DATE \n>17 / 05 / 1990 "},
		{BirthMonth, " SET BIRTH DATE \n 17 />05 / 1990 "},
		{BirthYear, " SET BIRTH DATE \n 17 / 05 />1990 "},
		{AlarmHour, " SET ALARM TIME \n    >06 : 30    "},
		{AlarmMinute, " SET ALARM TIME \n     06 :>30    "},
	}
	for i, line := range data {
		if i > 0 {
			m.Mode(Values{})
		}
		if f, _ := m.Field(); f != line.field {
			t.Fatalf("#%d: field %s, want %s", i, f, line.field)
		}
		if err := m.Render(dev); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(dev.Text(), line.want); diff != "" {
			t.Errorf("%s (-got +want):\n%s", line.field, diff)
		}
	}
}

func TestNotices(t *testing.T) {
	dev := lcdsim.New(&lcdsim.Opts{})
	if err := Banner(dev); err != nil {
		t.Fatal(err)
	}
	if got, want := dev.Text(), "------SET------ \n-TIME and DATE- "; got != want {
		t.Errorf("Banner() = %q, want %q", got, want)
	}
	if err := Saving(dev); err != nil {
		t.Fatal(err)
	}
	if got, want := dev.Text(), "Saving....      \n                "; got != want {
		t.Errorf("Saving() = %q, want %q", got, want)
	}
}
