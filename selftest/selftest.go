// Copyright © 2014 Lawrence E. Bakst. All rights reserved.

// This program checks the lookup3 hash against its known answers.
// It prints "Test passed." and exits 0, or logs the vector that failed and
// exits 1. Optionally it then measures how fast the hash runs.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"leb.io/hrff"

	"leb.io/lookup3"
	"leb.io/lookup3/internal/siginfo"
	"leb.io/lookup3/jenkins3"
)

var verbose = flag.Bool("v", false, "verbose, log each vector")
var ntrials = flag.Int("n", 1, "number of trials")
var benchSize = flag.Int("bench", 0, "after the self-test hash a buffer of this many bytes, 0 to skip")
var benchTime = flag.Duration("bt", time.Second, "how long -bench runs")
var hashName = flag.String("h", lookup3.J332, "name of hash function for -bench {j332, j332b, m332}")

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// trials checks every vector in vs n times, counting finished trials in done.
func trials(logger *zap.Logger, vs []jenkins3.Vector, n int, done *atomic.Int64) error {
	for i := 0; i < n; i++ {
		for _, v := range vs {
			if err := jenkins3.Check([]jenkins3.Vector{v}); err != nil {
				return err
			}
			if i == 0 {
				logger.Debug("vector ok", zap.String("key", v.Key), zap.Uint32("seed", v.Seed), zap.Uint32("hash", v.Hash))
			}
		}
		done.Inc()
	}
	return nil
}

type benchResult struct {
	ops     int
	elapsed time.Duration
}

// bench hashes a size byte buffer with the named hash function for about d.
func bench(hashName string, size int, d time.Duration) (benchResult, error) {
	var r benchResult
	hf, err := lookup3.GetHash(hashName)
	if err != nil {
		return r, err
	}
	if size <= 0 {
		return r, errors.Errorf("bench: size must be > 0, got %d", size)
	}
	// no zero bytes so j332 hashes the whole buffer
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = byte(i%255) + 1
	}

	var sink uint32
	start := time.Now()
	for r.elapsed < d {
		for j := 0; j < 1024; j++ {
			sink += hf(buf, sink)
		}
		r.ops += 1024
		r.elapsed = time.Since(start)
	}
	return r, nil
}

func main() {
	flag.Parse()
	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "selftest: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var done atomic.Int64
	stop := siginfo.SetHandler(func() {
		logger.Info("progress", zap.Int64("trials", done.Load()), zap.Int("of", *ntrials))
	})
	defer stop()

	if err := trials(logger, jenkins3.Vectors, *ntrials, &done); err != nil {
		var me *jenkins3.MismatchError
		if errors.As(err, &me) {
			logger.Fatal("self-test failed",
				zap.String("key", me.Key), zap.Uint32("seed", me.Seed),
				zap.Uint32("want", me.Hash), zap.Uint32("got", me.Got))
		}
		logger.Fatal("self-test failed", zap.Error(err))
	}
	fmt.Printf("Test passed.\n")

	if *benchSize > 0 {
		r, err := bench(*hashName, *benchSize, *benchTime)
		if err != nil {
			logger.Fatal("bench", zap.Error(err))
		}
		secs := r.elapsed.Seconds()
		f1 := hrff.Float64{float64(r.ops) / secs, "ops/sec"}
		f2 := hrff.Float64{float64(r.ops) * float64(*benchSize) / secs, "B/sec"}
		fmt.Printf("%s: %d bytes, %h, %h\n", *hashName, *benchSize, f1, f2)
	}
}
