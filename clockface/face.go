// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package clockface

import (
	"errors"
	"fmt"
	"time"

	"github.com/GermanBionicSystems/lcdclock/biorhythm"
	"github.com/GermanBionicSystems/lcdclock/buttons"
	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/setup"
	"github.com/GermanBionicSystems/lcdclock/style"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/display"
)

// NoticeDuration is how long the greeting, the setup banner and the saving
// notice stay on screen.
const NoticeDuration = 2 * time.Second

// Debouncer changes the debounce interval of a button. buttons.Reader
// implements it.
type Debouncer interface {
	SetDebounce(b buttons.Button, d time.Duration)
}

// Opts holds the restored settings and the optional collaborators of a Face.
type Opts struct {
	Style      style.Style
	Alarm      clock.Alarm
	Birth      biorhythm.Date
	TwelveHour bool

	// Debounce is the button debounce outside setup and EditDebounce the one
	// of the increment and decrement buttons inside setup. Both are applied
	// to Input.
	Debounce     time.Duration
	EditDebounce time.Duration
	Input        Debouncer

	Backlight        BacklightMode
	BacklightTimeout time.Duration

	// Sounder and Sensor may be nil.
	Sounder Sounder
	Sensor  Sensor

	// Clock paces the style animations. Defaults to the real clock.
	Clock  clockwork.Clock
	Logger zerolog.Logger
}

type notice uint8

const (
	noNotice notice = iota
	greetingNotice
	bannerNotice
	savingNotice
)

// Face is the clock application. It is not safe for concurrent use.
type Face struct {
	disp  Display
	src   TimeSource
	store Store
	opts  Opts
	log   zerolog.Logger

	state    clock.State
	style    style.Style
	renderer style.Renderer
	// needSetup is set when the tiles of renderer must be programmed before
	// the next frame.
	needSetup bool
	machine   *setup.Machine

	ring    ringer
	light   backlight
	lightOn bool
	lightOK bool

	greeting    string
	greetUntil  time.Time
	bannerUntil time.Time
	savingUntil time.Time
	drawn       notice

	readFailed bool
}

// New returns a Face drawing on d.
func New(d Display, src TimeSource, store Store, opts *Opts) *Face {
	o := *opts
	if o.Clock == nil {
		o.Clock = clockwork.NewRealClock()
	}
	if o.Debounce <= 0 {
		o.Debounce = buttons.DefaultDebounce
	}
	if o.EditDebounce <= 0 {
		o.EditDebounce = setup.DefaultEditInterval
	}
	if o.BacklightTimeout <= 0 {
		o.BacklightTimeout = DefaultBacklightTimeout
	}
	if !o.Style.Valid() {
		o.Style = style.Standard
	}
	f := &Face{
		disp:      d,
		src:       src,
		store:     store,
		opts:      o,
		log:       o.Logger.With().Str("component", "clockface").Logger(),
		style:     o.Style,
		needSetup: true,
		machine:   setup.New(o.EditDebounce),
		ring:      ringer{fired: -1},
		light:     backlight{mode: o.Backlight, timeout: o.BacklightTimeout},
	}
	f.state.Alarm = o.Alarm.Clamped()
	f.state.Birth = o.Birth
	f.state.Now = DefaultTime
	f.renderer = f.newRenderer(f.style)
	return f
}

func (f *Face) String() string {
	return fmt.Sprintf("clockface: %s, %s", f.style, f.machine)
}

// Start reads the time source and schedules the greeting. A source whose
// error wraps clock.ErrTimeLost is seeded with DefaultTime.
func (f *Face) Start(now time.Time) {
	s, err := f.src.Read()
	switch {
	case errors.Is(err, clock.ErrTimeLost):
		f.log.Warn().Err(err).Stringer("time", DefaultTime).Msg("time source lost its time, seeding")
		if err := f.src.Set(DefaultTime); err != nil {
			f.log.Error().Err(err).Msg("seeding time source")
		}
		s = DefaultTime
	case err != nil:
		f.log.Error().Err(err).Msg("reading time source")
		s = DefaultTime
	}
	f.state.Now = s.Clamped()
	f.light.wake(now)
	if g := Greeting(f.state.Now.Hour); g != "" {
		f.greeting = g
		f.greetUntil = now.Add(NoticeDuration)
	}
}

// State returns a copy of the state shown by the faces.
func (f *Face) State() clock.State {
	return f.state
}

// Style returns the active style.
func (f *Face) Style() style.Style {
	return f.style
}

// Editing reports whether a setup session is in progress.
func (f *Face) Editing() bool {
	return f.machine.Editing()
}

// Ringing reports whether the alarm is sounding.
func (f *Face) Ringing() bool {
	return f.ring.ringing
}

// Halt silences the alarm.
func (f *Face) Halt() error {
	if f.opts.Sounder != nil {
		return f.opts.Sounder.Stop()
	}
	return nil
}

// Tick runs one pass of the clock at now with the buttons pressed since the
// previous tick. It returns the display error of the frame, if any. Every
// other failure is logged.
func (f *Face) Tick(now time.Time, pressed buttons.Set) error {
	f.capture()
	f.sense(now)
	pressed = f.wake(now, pressed)
	switch {
	case f.busy(now):
	case f.ring.ringing:
		f.ringing(pressed)
	case f.machine.Editing():
		f.editing(now, pressed)
	default:
		f.idle(now, pressed)
	}
	if !f.machine.Editing() && f.ring.due(f.state.Alarm, f.state.Now) {
		f.ring.start(now, f.state.Now)
		f.log.Info().Stringer("alarm", f.state.Alarm).Msg("alarm ringing")
	}
	f.sound(now)
	err := f.render(now)
	f.updateBacklight(now)
	return err
}

// capture reads the time once per tick. On failure the previous snapshot is
// kept.
func (f *Face) capture() {
	s, err := f.src.Read()
	if err != nil {
		if !f.readFailed {
			f.log.Error().Err(err).Msg("reading time source")
		}
		f.readFailed = true
		return
	}
	f.readFailed = false
	f.state.Now = s.Clamped()
}

func (f *Face) sense(now time.Time) {
	if f.opts.Sensor == nil {
		return
	}
	env, err := f.opts.Sensor.Poll(now)
	if err != nil {
		f.log.Debug().Err(err).Msg("reading sensor")
	}
	f.state.Env = env.Clamped()
}

// wake lights the backlight on a button press. A press that only woke the
// display is dropped, except in setup and while the alarm rings.
func (f *Face) wake(now time.Time, pressed buttons.Set) buttons.Set {
	keys := buttons.Of(buttons.Mode, buttons.Increment, buttons.Decrement)
	if pressed&keys == 0 {
		return pressed
	}
	if f.light.wake(now) && !f.machine.Editing() && !f.ring.ringing {
		return pressed &^ keys
	}
	return pressed
}

// busy reports whether a notice is on screen. Presses are ignored meanwhile.
func (f *Face) busy(now time.Time) bool {
	return now.Before(f.greetUntil) || now.Before(f.bannerUntil) || now.Before(f.savingUntil)
}

func (f *Face) ringing(pressed buttons.Set) {
	switch {
	case pressed.Has(buttons.Decrement):
		f.silence("button")
	case pressed.Has(buttons.Tilt) && f.ring.shake():
		f.silence("shaken")
	case f.ring.expired(f.state.Alarm, f.state.Now):
		f.silence("timeout")
	}
}

func (f *Face) silence(reason string) {
	f.ring.stop()
	if f.opts.Sounder != nil {
		if err := f.opts.Sounder.Stop(); err != nil {
			f.log.Error().Err(err).Msg("stopping alarm sound")
		}
	}
	f.log.Info().Str("reason", reason).Msg("alarm silenced")
}

func (f *Face) sound(now time.Time) {
	if f.opts.Sounder == nil {
		return
	}
	if freq, ok := f.ring.tone(now); ok {
		if err := f.opts.Sounder.Tone(freq, NoteLength); err != nil {
			f.log.Error().Err(err).Msg("playing alarm sound")
		}
	}
}

// idle handles the buttons outside setup. The alarm toggle wins over the
// style cycle when both are pressed in the same tick.
func (f *Face) idle(now time.Time, pressed buttons.Set) {
	switch {
	case pressed.Has(buttons.Mode):
		f.machine.Mode(setup.Values{Time: f.state.Now, Birth: f.state.Birth, Alarm: f.state.Alarm})
		f.bannerUntil = now.Add(NoticeDuration)
		f.editDebounce(f.opts.EditDebounce)
		f.log.Info().Msg("setup started")
	case pressed.Has(buttons.Decrement):
		f.state.Alarm.Enabled = !f.state.Alarm.Enabled
		f.log.Info().Bool("enabled", f.state.Alarm.Enabled).Msg("alarm toggled")
		if err := f.store.SaveAlarmEnabled(f.state.Alarm.Enabled); err != nil {
			f.log.Error().Err(err).Msg("saving alarm")
		}
	case pressed.Has(buttons.Increment):
		f.setStyle(f.style.Next())
		if err := f.store.SaveStyle(f.style); err != nil {
			f.log.Error().Err(err).Msg("saving style")
		}
	}
}

func (f *Face) setStyle(st style.Style) {
	f.style = st
	f.renderer = f.newRenderer(st)
	f.needSetup = true
	f.log.Info().Stringer("style", st).Msg("style changed")
}

func (f *Face) newRenderer(st style.Style) style.Renderer {
	return style.New(st, style.Options{TwelveHour: f.opts.TwelveHour, Clock: f.opts.Clock})
}

func (f *Face) editing(now time.Time, pressed buttons.Set) {
	if pressed.Has(buttons.Mode) {
		if tr := f.machine.Mode(setup.Values{}); tr.Committed {
			f.commit(now, tr.Values)
		}
		return
	}
	if pressed.Has(buttons.Increment) {
		f.machine.Increment(now)
	}
	if pressed.Has(buttons.Decrement) {
		f.machine.Decrement(now)
	}
}

// commit writes the edited values to the time source and the store. Both
// are attempted even if one fails, and the in-memory state always takes
// the new values.
func (f *Face) commit(now time.Time, v setup.Values) {
	var errs []error
	if err := f.src.Set(v.Time); err != nil {
		errs = append(errs, fmt.Errorf("setting time: %w", err))
	} else if got, err := f.src.Read(); err == nil && got.Year != v.Time.Year {
		f.log.Warn().Int("year", v.Time.Year).Int("stored", got.Year).Msg("time source cannot hold the year")
	}
	if err := f.store.SaveCommit(v.Alarm, v.Birth); err != nil {
		errs = append(errs, fmt.Errorf("saving settings: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		f.log.Error().Err(err).Msg("setup commit")
	}
	f.state.Now = v.Time
	f.state.Alarm = v.Alarm
	f.state.Birth = v.Birth
	f.ring.fired = -1
	f.savingUntil = now.Add(NoticeDuration)
	f.needSetup = true
	f.editDebounce(f.opts.Debounce)
	f.log.Info().Stringer("time", v.Time).Stringer("alarm", v.Alarm).Stringer("birth", v.Birth).Msg("setup committed")
}

func (f *Face) editDebounce(d time.Duration) {
	if f.opts.Input != nil {
		f.opts.Input.SetDebounce(buttons.Increment, d)
		f.opts.Input.SetDebounce(buttons.Decrement, d)
	}
}

// render draws exactly one frame.
func (f *Face) render(now time.Time) error {
	switch {
	case now.Before(f.greetUntil):
		return f.show(greetingNotice, func() error { return drawGreeting(f.disp, f.greeting) })
	case now.Before(f.bannerUntil):
		return f.show(bannerNotice, func() error { return setup.Banner(f.disp) })
	case now.Before(f.savingUntil):
		return f.show(savingNotice, func() error { return setup.Saving(f.disp) })
	}
	f.drawn = noNotice
	if f.machine.Editing() {
		return f.machine.Render(f.disp)
	}
	if f.needSetup {
		p := style.NewPrinter(f.disp)
		p.Clear()
		if err := p.Err(); err != nil {
			return err
		}
		if err := f.renderer.Setup(f.disp); err != nil {
			return err
		}
		f.needSetup = false
	}
	return f.renderer.Render(f.disp, &f.state)
}

// show draws a static screen once.
func (f *Face) show(n notice, draw func() error) error {
	if f.drawn == n {
		return nil
	}
	if err := draw(); err != nil {
		return err
	}
	f.drawn = n
	f.machine.Invalidate()
	return nil
}

func (f *Face) updateBacklight(now time.Time) {
	on := f.light.lit(now) || f.machine.Editing() || f.ring.ringing
	if f.lightOK && on == f.lightOn {
		return
	}
	var i display.Intensity
	if on {
		i = 255
	}
	if err := f.disp.Backlight(i); err != nil {
		f.log.Error().Err(err).Msg("switching backlight")
		return
	}
	f.lightOn, f.lightOK = on, true
}
