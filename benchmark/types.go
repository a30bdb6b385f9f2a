package benchmark

import (
	"runtime"
	"time"
)

// Sample is one agent's measurement for one iteration.
type Sample struct {
	WCF      float64
	Memory   uint64
	Elapsed  time.Duration
	Steps    int
	PathCost int
}

// MemoryProbe reports a monotonically growing allocation counter in bytes.
// Callers read it before and after a search and record the difference.
type MemoryProbe interface {
	Allocated() uint64
}

// RuntimeProbe reads runtime.MemStats.TotalAlloc.
type RuntimeProbe struct{}

// Allocated implements MemoryProbe.
func (RuntimeProbe) Allocated() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.TotalAlloc
}

// NopProbe always reads zero, so every recorded delta is zero.
type NopProbe struct{}

// Allocated implements MemoryProbe.
func (NopProbe) Allocated() uint64 { return 0 }

// Delta returns after − before, or 0 if the counter went backwards.
func Delta(before, after uint64) uint64 {
	if after < before {
		return 0
	}
	return after - before
}

// Record is the persisted form of PathData: raw sequences plus derived
// averages and totals. Times are nanoseconds.
type Record struct {
	WCF      []float64 `json:"wcf"`
	Memory   []uint64  `json:"memory"`
	Time     []int64   `json:"time"`
	Steps    []int     `json:"steps"`
	PathCost []int     `json:"path_cost"`

	AvgWCF      float64 `json:"avg_wcf"`
	AvgMemory   float64 `json:"avg_memory"`
	AvgTime     float64 `json:"avg_time"`
	AvgSteps    float64 `json:"avg_steps"`
	AvgPathCost float64 `json:"avg_path_cost"`

	TotalMemory   uint64 `json:"total_memory"`
	TotalTime     int64  `json:"total_time"`
	TotalSteps    int    `json:"total_steps"`
	TotalPathCost int    `json:"total_path_cost"`
}
