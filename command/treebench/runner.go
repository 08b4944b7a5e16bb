// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/schollz/progressbar/v3"

	"github.com/bitmark-inc/ordtree/fault"
	"github.com/bitmark-inc/ordtree/tree"
)

// engine names accepted in the configuration
const (
	engineAVL      = "avl"
	engineRedBlack = "redblack"
)

// Container - the part of a tree that the benchmarks exercise
type Container interface {
	Insert(key uint64, value uint64) (uint64, bool)
	Remove(key uint64) (uint64, uint64, bool)
	Find(key uint64) (uint64, bool)
	Count() int
	Check() error
}

// engine constructors
var engines = map[string]func() Container{
	engineAVL: func() Container {
		return tree.NewAVL[uint64, uint64](tree.Compare[uint64])
	},
	engineRedBlack: func() Container {
		return tree.NewRedBlack[uint64, uint64](tree.Compare[uint64])
	},
}

type benchmark int

const (
	benchSearch benchmark = iota
	benchInsert
	benchDelete
)

var benchmarks = []benchmark{benchSearch, benchInsert, benchDelete}

func (b benchmark) String() string {
	switch b {
	case benchSearch:
		return "search"
	case benchInsert:
		return "insert"
	case benchDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// timing - summary over all rounds of one benchmark
type timing struct {
	average time.Duration
	minimum time.Duration
	maximum time.Duration
}

type runner struct {
	log          *logger.L
	out          io.Writer
	config       *Configuration
	newContainer func(engine string) Container
	showProgress bool
	bar          *progressbar.ProgressBar
}

func newRunner(config *Configuration, out io.Writer, showProgress bool) *runner {
	return &runner{
		log:    logger.New("runner"),
		out:    out,
		config: config,
		newContainer: func(engine string) Container {
			return engines[engine]()
		},
		showProgress: showProgress,
	}
}

// run every benchmark for every node count and engine
func (r *runner) run() error {

	if r.showProgress {
		rounds := len(r.config.NodeCounts) * len(r.config.Engines) * len(benchmarks) * r.config.Iterations
		r.bar = progressbar.NewOptions(rounds,
			progressbar.OptionSetDescription("running benchmarks"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
		)
	}

	for _, n := range r.config.NodeCounts {
		keys := makeKeys(n, r.config.Order, r.config.Seed)
		r.log.Debugf("node count: %d  order: %s", n, r.config.Order)

		for _, b := range benchmarks {
			for _, engine := range r.config.Engines {
				t, err := r.measure(b, engine, keys)
				if nil != err {
					r.log.Errorf("%s %s %d: error: %s", b, engine, n, err)
					return err
				}
				fmt.Fprintf(r.out, "%-6s  %-8s  %8d nodes  avg: %10.1f µs  min: %10.1f µs  max: %10.1f µs\n",
					b, engine, n, microseconds(t.average), microseconds(t.minimum), microseconds(t.maximum))
				r.log.Infof("%s %s %d: avg: %d µs  min: %d µs  max: %d µs",
					b, engine, n, t.average.Microseconds(), t.minimum.Microseconds(), t.maximum.Microseconds())
			}
		}
	}

	if nil != r.bar {
		_ = r.bar.Finish()
	}
	return nil
}

// repeat one benchmark for the configured number of iterations
func (r *runner) measure(b benchmark, engine string, keys []uint64) (timing, error) {
	result := timing{
		minimum: math.MaxInt64,
	}
	total := time.Duration(0)
	for i := 0; i < r.config.Iterations; i += 1 {
		d, err := r.round(b, engine, keys)
		if nil != err {
			return timing{}, err
		}
		total += d
		if d < result.minimum {
			result.minimum = d
		}
		if d > result.maximum {
			result.maximum = d
		}
		if nil != r.bar {
			_ = r.bar.Add(1)
		}
	}
	result.average = total / time.Duration(r.config.Iterations)
	return result, nil
}

// one timed pass over all keys using a fresh tree
func (r *runner) round(b benchmark, engine string, keys []uint64) (time.Duration, error) {
	c := r.newContainer(engine)

	if benchInsert != b {
		if failed := build(c, keys); failed > 0 {
			r.log.Errorf("%s: build: %d keys already present", engine, failed)
			return 0, fault.ErrVerifyFailed
		}
		if err := r.verify(c, engine); nil != err {
			return 0, err
		}
	}

	failed := 0
	start := time.Now()
	switch b {
	case benchSearch:
		for _, k := range keys {
			if v, ok := c.Find(k); !ok || v != k {
				failed += 1
			}
		}
	case benchInsert:
		failed = build(c, keys)
	case benchDelete:
		for _, k := range keys {
			if _, v, ok := c.Remove(k); !ok || v != k {
				failed += 1
			}
		}
	}
	elapsed := time.Since(start)

	if failed > 0 {
		r.log.Errorf("%s: %s: %d keys failed", engine, b, failed)
		return 0, fault.ErrVerifyFailed
	}
	if benchDelete == b && 0 != c.Count() {
		r.log.Errorf("%s: %s: %d nodes remain", engine, b, c.Count())
		return 0, fault.ErrVerifyFailed
	}
	if benchSearch != b {
		if err := r.verify(c, engine); nil != err {
			return 0, err
		}
	}
	return elapsed, nil
}

// run the invariant check if enabled
func (r *runner) verify(c Container, engine string) error {
	if !r.config.Verify {
		return nil
	}
	if err := c.Check(); nil != err {
		fault.Criticalf("%s: check failed: %s", engine, err)
		return err
	}
	return nil
}

// insert every key, returns the number that were already present
func build(c Container, keys []uint64) int {
	failed := 0
	for _, k := range keys {
		if _, replaced := c.Insert(k, k); replaced {
			failed += 1
		}
	}
	return failed
}

// distinct keys 0…n-1 in the requested order
func makeKeys(n int, order string, seed int64) []uint64 {
	keys := make([]uint64, n)
	switch order {
	case orderRandom:
		r := rand.New(rand.NewSource(seed))
		for i, k := range r.Perm(n) {
			keys[i] = uint64(k)
		}
	default:
		for i := range keys {
			keys[i] = uint64(i)
		}
	}
	return keys
}

func microseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
