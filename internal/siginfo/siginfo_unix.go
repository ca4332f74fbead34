// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build unix && !(darwin || dragonfly || freebsd || netbsd || openbsd)

package siginfo

import (
	"os"
	"syscall"
)

// no SIGINFO here; 29 is SIGIO on linux
var infoSignals = []os.Signal{syscall.SIGUSR1}
