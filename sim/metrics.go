// Aggregates the snapshot series into end-of-run statistics.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// RunSummary holds the headline numbers for one completed run.
type RunSummary struct {
	Minutes          int     // snapshots recorded
	Completed        int     // final completed-units total
	ThroughputPerMin float64 // completed units per simulated minute
	FinalBuffer1     int
	FinalBuffer2     int
	MeanBuffer1      float64
	MeanBuffer2      float64
	PeakBuffer1      int
	PeakBuffer2      int
}

// Summarize reduces a snapshot series to a RunSummary. An empty series yields
// the zero summary.
func Summarize(records []Snapshot) RunSummary {
	if len(records) == 0 {
		return RunSummary{}
	}

	b1 := make([]float64, len(records))
	b2 := make([]float64, len(records))
	peak1, peak2 := 0, 0
	for i, r := range records {
		b1[i] = float64(r.Buffer1Len)
		b2[i] = float64(r.Buffer2Len)
		peak1 = max(peak1, r.Buffer1Len)
		peak2 = max(peak2, r.Buffer2Len)
	}

	last := records[len(records)-1]
	return RunSummary{
		Minutes:          len(records),
		Completed:        last.Completed,
		ThroughputPerMin: float64(last.Completed) / float64(len(records)),
		FinalBuffer1:     last.Buffer1Len,
		FinalBuffer2:     last.Buffer2Len,
		MeanBuffer1:      stat.Mean(b1, nil),
		MeanBuffer2:      stat.Mean(b2, nil),
		PeakBuffer1:      peak1,
		PeakBuffer2:      peak2,
	}
}

// Print displays the summary at the end of a run.
func (s RunSummary) Print() {
	fmt.Println("=== Simulation Summary ===")
	fmt.Printf("Minutes simulated    : %d\n", s.Minutes)
	fmt.Printf("Units completed      : %d\n", s.Completed)
	fmt.Printf("Throughput           : %.2f units/min\n", s.ThroughputPerMin)
	fmt.Printf("Final WIP1 / WIP2    : %d / %d\n", s.FinalBuffer1, s.FinalBuffer2)
	fmt.Printf("Mean WIP1 / WIP2     : %.2f / %.2f\n", s.MeanBuffer1, s.MeanBuffer2)
	fmt.Printf("Peak WIP1 / WIP2     : %d / %d\n", s.PeakBuffer1, s.PeakBuffer2)
}
