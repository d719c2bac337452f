// Package batch runs core matrix and vector operations over many independent
// values in parallel.
//
// Each call fans out on a golang.org/x/sync/errgroup bounded by WithWorkers
// (default runtime.GOMAXPROCS(0)). Results keep input order. The first
// failing item cancels the rest and its error is returned wrapped with the
// item index, so errors.Is still matches the core sentinels.
//
// The core itself holds no shared state; batch only parallelizes across
// values, never within one.
package batch
