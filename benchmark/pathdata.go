package benchmark

import (
	"encoding/json"
	"time"
)

// PathData accumulates one agent's samples. The zero value is ready to use.
// It is not safe for concurrent mutation.
type PathData struct {
	wcf      []float64
	memory   []uint64
	elapsed  []time.Duration
	steps    []int
	pathCost []int
}

// Append adds one sample to every sequence.
func (d *PathData) Append(s Sample) {
	d.wcf = append(d.wcf, s.WCF)
	d.memory = append(d.memory, s.Memory)
	d.elapsed = append(d.elapsed, s.Elapsed)
	d.steps = append(d.steps, s.Steps)
	d.pathCost = append(d.pathCost, s.PathCost)
}

// Len returns the number of samples.
func (d *PathData) Len() int { return len(d.wcf) }

// Sample returns the i-th sample.
func (d *PathData) Sample(i int) Sample {
	return Sample{
		WCF:      d.wcf[i],
		Memory:   d.memory[i],
		Elapsed:  d.elapsed[i],
		Steps:    d.steps[i],
		PathCost: d.pathCost[i],
	}
}

// TotalMemory sums memory deltas.
func (d *PathData) TotalMemory() uint64 {
	var t uint64
	for _, v := range d.memory {
		t += v
	}
	return t
}

// TotalTime sums elapsed times.
func (d *PathData) TotalTime() time.Duration {
	var t time.Duration
	for _, v := range d.elapsed {
		t += v
	}
	return t
}

// TotalSteps sums effort counters.
func (d *PathData) TotalSteps() int { return sumInts(d.steps) }

// TotalPathCost sums path costs.
func (d *PathData) TotalPathCost() int { return sumInts(d.pathCost) }

// AvgWCF averages WCF samples; 0 when empty.
func (d *PathData) AvgWCF() float64 {
	t := 0.0
	for _, v := range d.wcf {
		t += v
	}
	return d.avg(t)
}

// AvgMemory averages memory deltas; 0 when empty.
func (d *PathData) AvgMemory() float64 { return d.avg(float64(d.TotalMemory())) }

// AvgTime averages elapsed times; 0 when empty.
func (d *PathData) AvgTime() time.Duration {
	if d.Len() == 0 {
		return 0
	}
	return d.TotalTime() / time.Duration(d.Len())
}

// AvgSteps averages effort counters; 0 when empty.
func (d *PathData) AvgSteps() float64 { return d.avg(float64(d.TotalSteps())) }

// AvgPathCost averages path costs; 0 when empty.
func (d *PathData) AvgPathCost() float64 { return d.avg(float64(d.TotalPathCost())) }

func (d *PathData) avg(total float64) float64 {
	if d.Len() == 0 {
		return 0
	}
	return total / float64(d.Len())
}

// Record snapshots the sequences and derived fields.
func (d *PathData) Record() Record {
	r := Record{
		WCF:      append([]float64{}, d.wcf...),
		Memory:   append([]uint64{}, d.memory...),
		Time:     make([]int64, len(d.elapsed)),
		Steps:    append([]int{}, d.steps...),
		PathCost: append([]int{}, d.pathCost...),

		AvgWCF:      d.AvgWCF(),
		AvgMemory:   d.AvgMemory(),
		AvgSteps:    d.AvgSteps(),
		AvgPathCost: d.AvgPathCost(),

		TotalMemory:   d.TotalMemory(),
		TotalTime:     d.TotalTime().Nanoseconds(),
		TotalSteps:    d.TotalSteps(),
		TotalPathCost: d.TotalPathCost(),
	}
	for i, e := range d.elapsed {
		r.Time[i] = e.Nanoseconds()
	}
	r.AvgTime = d.avg(float64(r.TotalTime))

	return r
}

// FromRecord rebuilds PathData from its raw sequences. Derived fields are
// ignored; sequences are truncated to the shortest one.
func FromRecord(r Record) *PathData {
	n := minLen(len(r.WCF), len(r.Memory), len(r.Time), len(r.Steps), len(r.PathCost))
	d := &PathData{}
	for i := 0; i < n; i++ {
		d.Append(Sample{
			WCF:      r.WCF[i],
			Memory:   r.Memory[i],
			Elapsed:  time.Duration(r.Time[i]),
			Steps:    r.Steps[i],
			PathCost: r.PathCost[i],
		})
	}
	return d
}

// MarshalJSON encodes the Record form.
func (d *PathData) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Record())
}

// UnmarshalJSON decodes the Record form.
func (d *PathData) UnmarshalJSON(b []byte) error {
	var r Record
	if err := json.Unmarshal(b, &r); err != nil {
		return err
	}
	*d = *FromRecord(r)
	return nil
}

func sumInts(vs []int) int {
	t := 0
	for _, v := range vs {
		t += v
	}
	return t
}

func minLen(ns ...int) int {
	m := ns[0]
	for _, n := range ns[1:] {
		if n < m {
			m = n
		}
	}
	return m
}
