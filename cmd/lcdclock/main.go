// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// lcdclock runs the character LCD alarm clock.
//
// With display.driver set to sim, no hardware is opened: the display is
// emulated on the terminal and the buttons are read from stdin, one letter
// per press followed by enter: m for mode, + and - to edit, t to shake.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/GermanBionicSystems/lcdclock/buttons"
	"github.com/GermanBionicSystems/lcdclock/clockface"
	"github.com/GermanBionicSystems/lcdclock/config"
	"github.com/GermanBionicSystems/lcdclock/settings"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// tickInterval paces the main loop.
const tickInterval = 50 * time.Millisecond

func main() {
	os.Exit(mainImpl())
}

func mainImpl() int {
	path := flag.String("config", "", "YAML configuration file")
	flag.Parse()

	conf, err := config.Load(afero.NewOsFs(), *path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lcdclock: %s\n", err)
		return 1
	}
	log, err := config.NewLogger(conf.Logger, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lcdclock: %s\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, conf, log); err != nil {
		log.Error().Err(err).Msg("lcdclock failed")
		return 1
	}
	log.Info().Msg("lcdclock stopped")
	return 0
}

func run(ctx context.Context, conf *config.Config, log zerolog.Logger) error {
	hw, err := openHardware(conf, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := hw.Close(); err != nil {
			log.Error().Err(err).Msg("closing hardware")
		}
	}()

	store := settings.New(afero.NewOsFs(), conf.Settings.Path)
	saved, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Stringer("store", store).Msg("loading settings, using defaults")
	}
	mode, err := clockface.ParseBacklightMode(conf.Backlight.Mode)
	if err != nil {
		return err
	}

	opts := clockface.Opts{
		Style:            saved.Style,
		Alarm:            saved.Alarm,
		Birth:            saved.Birth,
		TwelveHour:       conf.Clock.TwelveHour,
		Debounce:         conf.Buttons.Debounce,
		EditDebounce:     conf.Buttons.EditDebounce,
		Backlight:        mode,
		BacklightTimeout: conf.Backlight.Timeout,
		Logger:           log,
	}
	if hw.buttons != nil {
		opts.Input = hw.buttons
	}
	if hw.buzzer != nil {
		opts.Sounder = hw.buzzer
	}
	if hw.sensor != nil {
		opts.Sensor = hw.sensor
	}
	face := clockface.New(hw.display, hw.time, store, &opts)
	defer func() {
		if err := face.Halt(); err != nil {
			log.Error().Err(err).Msg("halting")
		}
	}()

	log.Info().
		Stringer("display", hw.display).
		Stringer("time", hw.time).
		Stringer("style", saved.Style).
		Stringer("alarm", saved.Alarm).
		Msg("lcdclock started")

	var keys <-chan buttons.Button
	if hw.sim != nil {
		keys = readKeys(ctx, os.Stdin)
	}

	t := time.NewTicker(tickInterval)
	defer t.Stop()
	face.Start(time.Now())
	var lastErr string
	for {
		var pressed buttons.Set
		select {
		case <-ctx.Done():
			return nil
		case b, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			pressed = buttons.Of(b)
		case <-t.C:
		}
		now := time.Now()
		if hw.buttons != nil {
			pressed |= hw.buttons.Poll(now)
		}
		err := face.Tick(now, pressed)
		if msg := errString(err); msg != lastErr {
			if err != nil {
				log.Error().Err(err).Msg("drawing")
			}
			lastErr = msg
		}
		if hw.sim != nil {
			if err := hw.sim.show(now); err != nil {
				log.Error().Err(err).Msg("simulator")
			}
		}
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
