// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package siginfo

import (
	"os"
	"syscall"
)

var infoSignals = []os.Signal{syscall.SIGINFO}
