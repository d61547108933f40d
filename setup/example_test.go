// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package setup_test

import (
	"fmt"
	"time"

	"github.com/GermanBionicSystems/lcdclock/clock"
	"github.com/GermanBionicSystems/lcdclock/setup"
)

func Example() {
	m := setup.New(setup.DefaultEditInterval)
	m.Mode(setup.Values{Time: clock.Snapshot{Hour: 23, Minute: 59, Day: 31, Month: 12, Year: 2999}})

	// Step the hour past 23, then move on to the minute.
	now := time.Now()
	m.Increment(now)
	m.Mode(setup.Values{})
	m.Decrement(now.Add(time.Second))

	var tr setup.Transition
	for m.Editing() {
		tr = m.Mode(setup.Values{})
	}
	fmt.Println(tr.Committed, tr.Values.Time)
	// Output: true 2999-12-31 00:58:00
}
