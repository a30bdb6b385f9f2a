// Package benchmark measures terrain difficulty and accumulates per-agent
// search statistics.
//
// WCF (weighted complexity factor) scores terrain roughness with a Sobel
// filter over cell weights. For every traversable cell the weights of its
// traversable 3×3 neighbours are convolved with the X and Y Sobel kernels;
// a non-zero gradient magnitude g contributes 1 − 0.01·log2(g). The sum is
// divided by the number of traversable cells. Flat regions contribute
// nothing.
//
// PathData keeps five equal-length sequences (WCF, memory delta, elapsed
// time, effort, path cost), one sample per iteration. Averages and totals
// are recomputed from the whole sequence on each call.
//
// MemoryProbe abstracts the allocation counter read around a search.
// RuntimeProbe reads runtime.MemStats and therefore also counts allocations
// made by other goroutines during the search window; NopProbe reads zero.
package benchmark
