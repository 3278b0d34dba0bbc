// sim/snapshot.go
package sim

// Snapshot is one per-minute observation of the line. The monitor appends
// records in strictly increasing minute order starting at 0, and a record is
// never mutated once appended.
type Snapshot struct {
	Minute     int // floor of the virtual time at observation
	Buffer1Len int // units waiting between Station A and B
	Buffer2Len int // units waiting between Station B and the terminal fleet
	Completed  int // cumulative units finished by the terminal fleet
}

// Series splits a snapshot sequence into independent columns, which is the
// shape charting layers consume. The core produces its result independently
// of how it is displayed.
type Series struct {
	Minutes   []int
	Buffer1   []int
	Buffer2   []int
	Completed []int
}

// NewSeries builds the column view of records.
func NewSeries(records []Snapshot) Series {
	s := Series{
		Minutes:   make([]int, len(records)),
		Buffer1:   make([]int, len(records)),
		Buffer2:   make([]int, len(records)),
		Completed: make([]int, len(records)),
	}
	for i, r := range records {
		s.Minutes[i] = r.Minute
		s.Buffer1[i] = r.Buffer1Len
		s.Buffer2[i] = r.Buffer2Len
		s.Completed[i] = r.Completed
	}
	return s
}
