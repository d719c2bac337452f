// SPDX-License-Identifier: MIT

package batch

import (
	"fmt"
	"runtime"
)

// DefaultWorkers returns the worker limit used when WithWorkers is not given.
func DefaultWorkers() int { return runtime.GOMAXPROCS(0) }

// Option configures a batch call.
type Option func(*Options)

// Options holds the resolved batch configuration.
type Options struct {
	workers int
}

// WithWorkers caps the number of goroutines working at once.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("batch: WithWorkers(%d): n must be >= 1", n))
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies opts over defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{workers: DefaultWorkers()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Workers reports the resolved worker limit.
func (o Options) Workers() int { return o.workers }
