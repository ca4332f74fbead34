// Copyright © 2014 Lawrence E. Bakst. All rights reserved.
package main

import (
	"bytes"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/zap/zaptest"

	"leb.io/lookup3/jenkins3"
)

// set in the environment of a child process that should run main
const (
	envRunMain   = "LOOKUP3_SELFTEST_RUN_MAIN"
	envBadVector = "LOOKUP3_SELFTEST_BAD_VECTOR"
)

var badVector = jenkins3.Vector{Key: "Hello, Jenkins!", Seed: 0, Hash: 2484708165}

func TestTrials(t *testing.T) {
	var done atomic.Int64
	require.NoError(t, trials(zaptest.NewLogger(t), jenkins3.Vectors, 3, &done))
	assert.Equal(t, int64(3), done.Load())
}

func TestTrialsMismatch(t *testing.T) {
	var done atomic.Int64
	vs := append(append([]jenkins3.Vector{}, jenkins3.Vectors[:2]...), badVector)
	err := trials(zaptest.NewLogger(t), vs, 3, &done)
	require.Error(t, err)

	var me *jenkins3.MismatchError
	require.True(t, errors.As(err, &me), "%T", err)
	assert.Equal(t, badVector, me.Vector)
	assert.Equal(t, uint32(2484708164), me.Got)
	assert.Equal(t, int64(0), done.Load())
}

// runMain runs main in a copy of the test binary and returns its output and exit code.
func runMain(t *testing.T, env ...string) (stdout, stderr string, code int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^TestProgram$")
	cmd.Env = append(append(os.Environ(), envRunMain+"=1"), env...)
	var outb, errb bytes.Buffer
	cmd.Stdout = &outb
	cmd.Stderr = &errb
	err := cmd.Run()
	if err != nil {
		var ee *exec.ExitError
		require.True(t, errors.As(err, &ee), "%v", err)
		code = ee.ExitCode()
	}
	return outb.String(), errb.String(), code
}

func TestProgram(t *testing.T) {
	if os.Getenv(envRunMain) == "1" {
		if os.Getenv(envBadVector) == "1" {
			jenkins3.Vectors = []jenkins3.Vector{badVector}
		}
		os.Args = []string{"selftest"}
		main()
		os.Exit(0)
	}

	stdout, stderr, code := runMain(t)
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, "Test passed.\n", stdout)

	stdout, stderr, code = runMain(t, envBadVector+"=1")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "self-test failed")
	assert.Contains(t, stderr, "Hello, Jenkins!")
}

func TestBench(t *testing.T) {
	for _, name := range []string{"j332", "j332b", "m332"} {
		r, err := bench(name, 64, 10*time.Millisecond)
		require.NoError(t, err, name)
		assert.GreaterOrEqual(t, r.ops, 1024, name)
		assert.GreaterOrEqual(t, r.elapsed, 10*time.Millisecond, name)
	}
	_, err := bench("j264", 64, time.Millisecond)
	assert.Error(t, err)
	_, err = bench("j332", 0, time.Millisecond)
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	for _, v := range []bool{false, true} {
		logger, err := newLogger(v)
		require.NoError(t, err)
		assert.Equal(t, v, logger.Core().Enabled(-1))
	}
}
