// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// Package siginfo calls a function each time the user asks for status,
// ^T (SIGINFO) on the BSDs and macOS, SIGUSR1 elsewhere.
package siginfo

import (
	"os"
	"os/signal"
)

// SetHandler arranges for f to be called on its own goroutine for every
// status signal. The returned function stops delivery.
func SetHandler(f func()) (stop func()) {
	if len(infoSignals) == 0 {
		return func() {}
	}
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, infoSignals...)

	go func() {
		for {
			select {
			case <-ch:
				f()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
