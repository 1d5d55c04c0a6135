package stats

import "gonum.org/v1/gonum/stat"

// Summary describes how evenly records are spread across groups.
type Summary struct {
	Groups int
	Mean   float64
	StdDev float64
	Min    int
	Max    int
}

// Balance computes the group-size distribution of a table. StdDev is the
// population standard deviation; a perfectly balanced partition reports 0.
func (t Table) Balance() Summary {
	s := Summary{Groups: len(t.Rows)}
	if len(t.Rows) == 0 {
		return s
	}
	sizes := make([]float64, len(t.Rows))
	s.Min = t.Rows[0].Total
	for i, r := range t.Rows {
		sizes[i] = float64(r.Total)
		if r.Total < s.Min {
			s.Min = r.Total
		}
		if r.Total > s.Max {
			s.Max = r.Total
		}
	}
	s.Mean = stat.Mean(sizes, nil)
	s.StdDev = stat.PopStdDev(sizes, nil)
	return s
}
