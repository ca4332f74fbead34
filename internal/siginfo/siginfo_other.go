// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

//go:build !unix

package siginfo

import "os"

var infoSignals []os.Signal
